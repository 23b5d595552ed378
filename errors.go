package dataverse

import (
	"errors"
	"fmt"
)

// DecodeError reports that an HTTP-successful response body could not be
// interpreted as the expected envelope or payload shape. It is deliberately
// distinct from transport.RequestFailedError: the server accepted the
// request, the client just could not understand the reply.
type DecodeError struct {
	// Msg describes what failed to decode.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataverse: decode: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("dataverse: decode: %s", e.Msg)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if an error is a response decoding error.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
