package frontdash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FlexString tolerates JSON fields that arrive as either string or number;
// the backend is inconsistent about id types.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	return nil
}

// String returns the underlying value.
func (f FlexString) String() string {
	return string(f)
}

// jsonRequest builds a request with an optional JSON body and bearer token.
// token == "" leaves the Authorization header unset (login, registration,
// upload).
func jsonRequest(ctx context.Context, method, base, path, token string, payload any) (*http.Request, error) {
	var body io.Reader
	var raw []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("frontdash: encode payload: %w", err)
		}
		raw = encoded
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, joinURL(base, path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(raw)), nil
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func joinURL(base, path string) string {
	if base == "" {
		return path
	}
	base = strings.TrimSuffix(base, "/")
	if path == "" {
		return base
	}
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}

// absoluteURL resolves a possibly-relative upload URL against the base.
func absoluteURL(base, raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return joinURL(base, raw)
}
