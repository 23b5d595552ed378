package transport

import (
	"errors"
	"fmt"
)

// MalformedURIError reports that the configuration or sub-path produced an
// invalid request URI. It is fatal to the call and never retried.
type MalformedURIError struct {
	// Value is the string that failed to parse as a URI.
	Value string
	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *MalformedURIError) Error() string {
	return fmt.Sprintf("transport: malformed request URI %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedURIError) Unwrap() error {
	return e.Err
}

// RequestFailedError reports a non-2xx HTTP response that was not (or no
// longer) recoverable by the lock-retry policy. Body carries the decoded
// UTF-8 response body so callers can distinguish sub-cases.
type RequestFailedError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status line (e.g. "403 Forbidden").
	Status string
	// Body is the response body decoded as UTF-8.
	Body string
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("transport: request failed with status %s: %s", e.Status, e.Body)
}

// ConnError reports an I/O-level failure: connection refused, DNS failure,
// TLS failure, or a timeout. It is distinct from RequestFailedError (the
// server never produced a status) and is not retried by this layer.
type ConnError struct {
	// Timeout is true when the failure was a connect or read timeout.
	Timeout bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConnError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("transport: request timed out: %v", e.Err)
	}
	return fmt.Sprintf("transport: connection failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnError) Unwrap() error {
	return e.Err
}

// IsMalformedURI checks if an error is a URI composition error.
func IsMalformedURI(err error) bool {
	var e *MalformedURIError
	return errors.As(err, &e)
}

// IsRequestFailed checks if an error is a non-2xx HTTP response.
func IsRequestFailed(err error) bool {
	var e *RequestFailedError
	return errors.As(err, &e)
}

// IsConnError checks if an error is an I/O-level failure.
func IsConnError(err error) bool {
	var e *ConnError
	return errors.As(err, &e)
}

// IsTimeout checks if an error is a connect or read timeout.
func IsTimeout(err error) bool {
	var e *ConnError
	return errors.As(err, &e) && e.Timeout
}
