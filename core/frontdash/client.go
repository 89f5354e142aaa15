// Package frontdash holds the transport adapters for the FrontDash REST
// backend: one method per resource operation, exactly one outbound request
// per call, mapping wire field names into the domain models.
package frontdash

import (
	"github.com/frontdash/partner-desktop/core/httpclient"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.frontdash.example.com"

// Client wraps the REST API. All methods are safe for concurrent use.
type Client struct {
	http    *httpclient.Client
	logger  httpclient.Logger
	baseURL string
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient injects a custom httpclient.Client.
func WithHTTPClient(cli *httpclient.Client) Option {
	return func(c *Client) {
		if cli != nil {
			c.http = cli
		}
	}
}

// WithLogger injects the logger.
func WithLogger(logger httpclient.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
			if c.http != nil {
				c.http.Logger = logger
			}
		}
	}
}

// WithBaseURL replaces the default API endpoint.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// NewClient creates a client with defaults.
func NewClient(opts ...Option) *Client {
	cli := &Client{
		http:    httpclient.NewClient(),
		logger:  httpclient.NopLogger{},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cli)
		}
	}
	if cli.http == nil {
		cli.http = httpclient.NewClient()
	}
	if cli.logger == nil {
		cli.logger = httpclient.NopLogger{}
	}
	cli.http.Logger = cli.logger
	return cli
}

// BaseURL reports the configured endpoint, used to absolutise upload URLs.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}
