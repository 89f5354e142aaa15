package httpclient

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError carries a non-2xx response: HTTP status plus whatever code and
// message the backend put in the body.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("http status %d", e.Status)
	}
}

// NetworkError wraps transport-level failures (DNS, refused, reset).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError marks a body that arrived but could not be decoded.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed (status=%d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// bodyToErr turns an error body into an APIError. Backends are inconsistent
// about the envelope, so message extraction is best effort: a JSON `message`
// or `error` field wins, then raw text, then the status text.
func bodyToErr(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if gjson.ValidBytes(body) {
		root := gjson.ParseBytes(body)
		if msg := root.Get("message"); msg.Exists() && msg.String() != "" {
			apiErr.Message = msg.String()
		} else if msg := root.Get("error"); msg.Exists() && msg.String() != "" {
			apiErr.Message = msg.String()
		}
		if code := root.Get("code"); code.Exists() {
			apiErr.Code = code.String()
		}
	}
	if apiErr.Message == "" {
		if text := trimmedText(body); text != "" {
			apiErr.Message = text
		} else {
			apiErr.Message = http.StatusText(status)
		}
	}
	return apiErr
}

func trimmedText(body []byte) string {
	const max = 256
	s := string(body)
	if len(s) > max {
		s = s[:max]
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		out = append(out, r)
	}
	// collapse to a single line without leading/trailing spaces
	start, end := 0, len(out)
	for start < end && out[start] == ' ' {
		start++
	}
	for end > start && out[end-1] == ' ' {
		end--
	}
	return string(out[start:end])
}
