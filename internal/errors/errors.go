package errors

import "fmt"

// ErrorCode represents a docketfold error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // bad CLI input or config
	ErrCaseNotFound    ErrorCode = "CASE_NOT_FOUND"   // requested slug has no directory
	ErrMetadataInvalid ErrorCode = "METADATA_INVALID" // content page exists but cannot be parsed
	ErrUnsafePath      ErrorCode = "UNSAFE_PATH"      // symlink where a regular file is required
	ErrInternal        ErrorCode = "INTERNAL"         // filesystem or other unexpected failure
)

// Error is a structured docketfold error with a code and optional details.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for stdlib errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewInvalidRequest creates an error for invalid CLI input.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewCaseNotFound creates an error for a requested slug with no case directory.
func NewCaseNotFound(slug string) *Error {
	return &Error{
		Code:    ErrCaseNotFound,
		Message: fmt.Sprintf("case not found: %s", slug),
		Details: map[string]any{"slug": slug},
	}
}

// NewMetadataInvalid creates an error for an unparsable case content page.
// Callers treat this as non-fatal and fall back to heuristic derivation.
func NewMetadataInvalid(path string, cause error) *Error {
	return &Error{
		Code:    ErrMetadataInvalid,
		Message: fmt.Sprintf("cannot parse case metadata at %s: %v", path, cause),
		Details: map[string]any{"path": path},
		cause:   cause,
	}
}

// NewUnsafePath creates an error for a destination that is a symlink.
func NewUnsafePath(path string) *Error {
	return &Error{
		Code:    ErrUnsafePath,
		Message: fmt.Sprintf("refusing to write through symlink: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewInternal wraps an unexpected filesystem or runtime failure.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Message: msg,
		cause:   err,
	}
}

// Is checks if an error is a docketfold Error with the given code.
func Is(err error, code ErrorCode) bool {
	if dErr, ok := err.(*Error); ok {
		return dErr.Code == code
	}
	return false
}
