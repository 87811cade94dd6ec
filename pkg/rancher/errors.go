package rancher

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrIDRequired     = errors.New("resource id is required")
	ErrBodyRequired   = errors.New("request body is required")
	ErrEmptyBody      = errors.New("response body is empty")
	ErrNotJSON        = errors.New("response body is not JSON")
	ErrMissingField   = errors.New("field missing from response")
	ErrEmptyWorkflow  = errors.New("workflow has no steps")
	ErrNoRequest      = errors.New("workflow step built no request")
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	// KindNone means the error is not a call failure (or err is nil).
	KindNone ErrorKind = iota
	// KindTransport means no interpretable response was received.
	KindTransport
	// KindHTTP means a response was received with a status outside [200, 300).
	KindHTTP
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "TransportError"
	case KindHTTP:
		return "HttpError"
	case KindNone:
		return "None"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigurationError is returned by client construction when required
// settings are missing or malformed.
type ConfigurationError struct {
	Fields []string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", strings.Join(e.Fields, ", "), e.Reason)
}

// TransportError means the call never reached a server or never received an
// interpretable response.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.URL, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// HTTPError means a response was received with a status code outside [200, 300).
// Body holds the raw response body; it is never parsed.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: invalid response code: %d %s",
		e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// KindOf reports which kind of call failure err carries.
func KindOf(err error) ErrorKind {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return KindHTTP
	}

	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return KindTransport
	}

	return KindNone
}

// StatusCode returns the HTTP status code carried by err, if any.
func StatusCode(err error) (int, bool) {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}

	return 0, false
}

func hasStatus(err error, code int) bool {
	status, ok := StatusCode(err)

	return ok && status == code
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConflict checks if the error is a 409 response.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}
