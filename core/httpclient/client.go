package httpclient

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// Logger is injected from the outside so the core stays silent by default.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is the default no-output implementation.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Errorf(string, ...any) {}

// Client is the unified HTTP wrapper used by every transport adapter. Each
// Do issues exactly one attempt: no retries and no backoff, a failed call is
// reported to the caller as-is.
type Client struct {
	HTTP    *http.Client
	Prepare PrepareChain
	Limiter RateLimiter
	Logger  Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.HTTP = httpClient
	}
}

// WithRateLimiter sets the outbound rate limiter.
func WithRateLimiter(limiter RateLimiter) Option {
	return func(c *Client) {
		c.Limiter = limiter
	}
}

// WithLogger injects the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.Logger = logger
	}
}

// WithMiddlewares appends request middlewares.
func WithMiddlewares(mw ...Middleware) Option {
	return func(c *Client) {
		c.Prepare = append(c.Prepare, mw...)
	}
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.HTTP != nil && d > 0 {
			c.HTTP.Timeout = d
		}
	}
}

// NewClient creates a client with defaults.
func NewClient(opts ...Option) *Client {
	client := &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Prepare: PrepareChain{},
		Logger:  NopLogger{},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.HTTP == nil {
		client.HTTP = &http.Client{Timeout: 30 * time.Second}
	}
	if client.Logger == nil {
		client.Logger = NopLogger{}
	}
	return client
}

// Use appends middlewares after construction.
func (c *Client) Use(mw ...Middleware) {
	c.Prepare = append(c.Prepare, mw...)
}

// Do sends the request once, applying middlewares and the rate limiter, and
// decodes a JSON body into out when out is non-nil.
func (c *Client) Do(req *http.Request, out any) error {
	if req == nil {
		return errors.New("httpclient: nil request")
	}
	if c.HTTP == nil {
		return errors.New("httpclient: http.Client not configured")
	}
	if c.Prepare != nil {
		if err := c.Prepare.Apply(req); err != nil {
			return err
		}
	}
	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context(), req); err != nil {
			return err
		}
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Errorf("request %s %s failed: %v", req.Method, req.URL.Path, err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := bodyToErr(resp.StatusCode, body)
		c.Logger.Debugf("request %s %s -> %d: %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.Message)
		return apiErr
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // keep numeric precision
	if decodeErr := dec.Decode(out); decodeErr != nil {
		if decodeErr == io.EOF {
			// empty body on success is fine
			return nil
		}
		return &DecodeError{Status: resp.StatusCode, Err: decodeErr}
	}
	return nil
}
