package dataverse

import (
	"encoding/json"
	"sync"

	"github.com/dans-knaw/go-dataverse/transport"
)

// Response wraps a raw transport response together with the payload type T
// the endpoint is documented to return. All derived views are computed
// lazily from the buffered body and cached; nothing is re-fetched.
type Response[T any] struct {
	raw *transport.Response

	envOnce sync.Once
	env     *Envelope
	envErr  error

	dataOnce sync.Once
	data     T
	dataErr  error
}

// NewResponse wraps a raw transport response for payload type T. Endpoint
// wrappers construct these; it is exported for callers that dispatch
// through the transport directly.
func NewResponse[T any](raw *transport.Response) *Response[T] {
	return &Response[T]{raw: raw}
}

// Raw returns the underlying transport response.
func (r *Response[T]) Raw() *transport.Response {
	return r.raw
}

// StatusCode returns the HTTP status code.
func (r *Response[T]) StatusCode() int {
	return r.raw.StatusCode
}

// String returns the response body decoded as UTF-8 text.
func (r *Response[T]) String() string {
	return string(r.raw.Body)
}

// JSON parses the response body as a generic JSON value.
func (r *Response[T]) JSON() (any, error) {
	var v any
	if err := json.Unmarshal(r.raw.Body, &v); err != nil {
		return nil, &DecodeError{Msg: "response body is not valid JSON", Err: err}
	}
	return v, nil
}

// Envelope parses the response body as the API's status envelope.
func (r *Response[T]) Envelope() (*Envelope, error) {
	r.envOnce.Do(func() {
		r.env, r.envErr = decodeEnvelope(r.raw.Body)
	})
	return r.env, r.envErr
}

// Data decodes the envelope's data field into T. An envelope without data
// yields a DecodeError; endpoints that only return an informational message
// are read through Message instead.
func (r *Response[T]) Data() (T, error) {
	r.dataOnce.Do(func() {
		env, err := r.Envelope()
		if err != nil {
			r.dataErr = err
			return
		}
		if !env.HasData() {
			r.dataErr = &DecodeError{Msg: "envelope has no data field"}
			return
		}
		if err := json.Unmarshal(env.Data, &r.data); err != nil {
			r.dataErr = &DecodeError{Msg: "envelope data does not match the expected payload shape", Err: err}
		}
	})
	return r.data, r.dataErr
}

// Message returns the envelope's message field, or the empty string when
// the endpoint did not populate it.
func (r *Response[T]) Message() (string, error) {
	env, err := r.Envelope()
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
