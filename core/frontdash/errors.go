package frontdash

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/frontdash/partner-desktop/core/httpclient"
)

const (
	ErrCodeUnknown = iota
	ErrCodeInvalidToken
	ErrCodeUnauthorized
	ErrCodeForbidden
	ErrCodeNotFound
	ErrCodeInvalidRequest
	ErrCodeRateLimited
	ErrCodeServer
)

// PortalError is the classified backend error returned by every adapter.
type PortalError struct {
	Code       int
	Message    string
	HTTPStatus int
	Raw        error
}

func (e *PortalError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Code != 0 && e.Message != "":
		return fmt.Sprintf("frontdash: [%d] %s", e.Code, e.Message)
	case e.Message != "":
		return e.Message
	case e.Code != 0:
		return fmt.Sprintf("frontdash: code=%d", e.Code)
	case e.Raw != nil:
		return e.Raw.Error()
	default:
		return "frontdash: unknown error"
	}
}

// Unwrap lets errors.Is/As reach the underlying error.
func (e *PortalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Raw
}

// NewPortalError creates a plain PortalError.
func NewPortalError(code int, message string) *PortalError {
	return &PortalError{Code: code, Message: message}
}

// wrapErr classifies a transport error into a PortalError, preferring the
// server's message over fallback, the per-operation default.
func wrapErr(fallback string, raw error) *PortalError {
	var apiErr *httpclient.APIError
	if errors.As(raw, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		return &PortalError{
			Code:       classify(apiErr),
			Message:    msg,
			HTTPStatus: apiErr.Status,
			Raw:        raw,
		}
	}
	return &PortalError{Code: ErrCodeUnknown, Message: fallback, Raw: raw}
}

func classify(apiErr *httpclient.APIError) int {
	if apiErr == nil {
		return ErrCodeUnknown
	}
	upper := strings.ToUpper(apiErr.Code)
	switch {
	case strings.Contains(upper, "TOKEN"),
		strings.Contains(upper, "SESSION"):
		return ErrCodeInvalidToken
	case strings.Contains(upper, "UNAUTHORIZED"),
		strings.Contains(upper, "NOT_LOGIN"):
		return ErrCodeUnauthorized
	case strings.Contains(upper, "FORBIDDEN"),
		strings.Contains(upper, "PERMISSION"):
		return ErrCodeForbidden
	case strings.Contains(upper, "NOT_FOUND"),
		strings.Contains(upper, "NOT_EXIST"):
		return ErrCodeNotFound
	case strings.Contains(upper, "PARAM"),
		strings.Contains(upper, "BAD_REQUEST"),
		strings.Contains(upper, "VALIDATION"):
		return ErrCodeInvalidRequest
	}

	switch apiErr.Status {
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusTooManyRequests:
		return ErrCodeRateLimited
	}
	if apiErr.Status >= http.StatusInternalServerError && apiErr.Status < 600 {
		return ErrCodeServer
	}
	return ErrCodeUnknown
}

// IsAuthError reports whether the error means the session is no longer
// valid and the user must log in again.
func IsAuthError(err error) bool {
	var pe *PortalError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrCodeInvalidToken || pe.Code == ErrCodeUnauthorized
}
