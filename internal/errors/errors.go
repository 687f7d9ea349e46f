package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is malformed or missing input.
	KindValidation
	// KindAuthentication is bad credentials or an invalid, expired or absent token.
	KindAuthentication
	// KindNotFound is a reference to something that does not exist.
	KindNotFound
	// KindInvalidState is an internal precondition violation.
	KindInvalidState
	// KindCorruptCache is an unreadable local token cache.
	KindCorruptCache
	// KindConfiguration is an unusable local configuration.
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindCorruptCache:
		return "corrupt_cache"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error is the application error type. Msg is user-facing.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error     { return New(KindValidation, msg) }
func Authentication(msg string) *Error { return New(KindAuthentication, msg) }
func NotFound(msg string) *Error       { return New(KindNotFound, msg) }
func InvalidState(msg string) *Error   { return New(KindInvalidState, msg) }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
}

// MessageResponse is the body of successful routes that only report a message.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: true,
		Msg:   e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Client-side kinds become
// 400; anything else is reported as a generic 500 without internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor")
	}
	switch appErr.Kind {
	case KindValidation, KindAuthentication, KindNotFound:
		return NewHTTPError(http.StatusBadRequest, appErr.Msg)
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor")
	}
}
