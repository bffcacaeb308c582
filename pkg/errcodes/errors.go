package errcodes

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// IsNotFound reports whether err is (or wraps) a 404 error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.HTTPCode == http.StatusNotFound
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

// Conflict returns a 409 error with the given message.
func Conflict(msg string) error {
	return &Error{
		http.StatusConflict,
		msg,
		"conflict",
	}
}

// StoreUnavailable indicates that the durable store can't be opened at all.
// Nothing works without it, so callers treat this as fatal.
func StoreUnavailable(reason string) error {
	return &Error{
		http.StatusServiceUnavailable,
		"Persistent storage is unavailable: " + reason,
		"store_unavailable",
	}
}

// StoreBlocked indicates the store is held by another process at an
// incompatible schema version. Surfaced so the operator can close the other
// instance instead of retrying silently.
func StoreBlocked() error {
	return &Error{
		http.StatusConflict,
		"Persistent storage is locked by another instance.",
		"store_blocked",
	}
}

// FetchFailed returns a 502 error for an upstream content fetch that did not
// succeed. Unlike the metadata index, book content failures are propagated.
func FetchFailed(resource string, status int) error {
	return &Error{
		http.StatusBadGateway,
		fmt.Sprintf("Failed to fetch %s (upstream status %d).", resource, status),
		"fetch_failed",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
