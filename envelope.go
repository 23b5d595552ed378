package dataverse

import (
	"bytes"
	"encoding/json"
)

// Envelope statuses used by the API.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Envelope is the API's standard JSON wrapper: {"status": "OK"|"ERROR",
// "data": <any|absent>, "message": <string|absent>}. Data is kept raw so a
// caller-selected payload type can be decoded from it.
//
// The server is not consistent about whether informational text lands in
// data or in message; both are exposed and each endpoint wrapper documents
// which one applies.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HasData reports whether the envelope carries a data payload.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && !bytes.Equal(e.Data, []byte("null"))
}

// decodeEnvelope parses raw response bytes as an Envelope.
func decodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Msg: "response body is not a status envelope", Err: err}
	}
	return &env, nil
}
