package errors

import "fmt"

// Code classifies core-level failures.
type Code string

const (
	// ErrCodeUnknown marks unclassified errors.
	ErrCodeUnknown Code = "UNKNOWN"
	// ErrCodeNotFound marks a missing target.
	ErrCodeNotFound Code = "NOT_FOUND"
	// ErrCodeInvalidArgument marks missing or malformed input.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	// ErrCodeInvalidConfig marks an unconfigured dependency.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// ErrCodeInvalidState marks a flow or response that is out of shape.
	ErrCodeInvalidState Code = "INVALID_STATE"
	// ErrCodeUnauthenticated marks an action attempted without a session.
	ErrCodeUnauthenticated Code = "UNAUTHENTICATED"
	// ErrCodeValidation marks client-side validation failures.
	ErrCodeValidation Code = "VALIDATION"
)

// CoreError is the structured error shared by all core packages.
type CoreError struct {
	Code    Code
	Message string
	Raw     error
}

func (e *CoreError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("core: [%s] %s", e.Code, e.Message)
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return fmt.Sprintf("core: code=%s", e.Code)
	case e.Raw != nil:
		return e.Raw.Error()
	default:
		return "core: unknown error"
	}
}

// Unwrap lets errors.Is/As see the underlying error.
func (e *CoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Raw
}

// Is matches on identity or on equal codes, so CoreErrors work as sentinels.
func (e *CoreError) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	if e == target {
		return true
	}
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a plain CoreError.
func New(code Code, message string) *CoreError {
	return &CoreError{Code: code, Message: message}
}

// Wrap builds a CoreError while keeping the underlying error.
func Wrap(code Code, message string, raw error) *CoreError {
	if message == "" && raw != nil {
		message = raw.Error()
	}
	return &CoreError{
		Code:    code,
		Message: message,
		Raw:     raw,
	}
}
