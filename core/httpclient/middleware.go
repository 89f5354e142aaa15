package httpclient

import "net/http"

// Middleware is a request preparation hook, used to inject auth headers,
// user agent, content type and the like.
type Middleware func(req *http.Request) error

// PrepareChain runs middlewares in order.
type PrepareChain []Middleware

// Apply executes the chain, stopping on the first error.
func (c PrepareChain) Apply(req *http.Request) error {
	for _, mw := range c {
		if mw == nil {
			continue
		}
		if err := mw(req); err != nil {
			return err
		}
	}
	return nil
}

// WithHeader sets a request header.
func WithHeader(key, value string) Middleware {
	return func(req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Middleware {
	return WithHeader("User-Agent", ua)
}

// WithBearerToken injects the Authorization header, reading the token on
// every request so a refreshed session is picked up immediately.
func WithBearerToken(token func() string) Middleware {
	return func(req *http.Request) error {
		if token == nil {
			return nil
		}
		if t := token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
		return nil
	}
}
