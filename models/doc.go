// Package models holds the payload types returned by the Dataverse API's
// status envelope. Only the fields the client reads are mapped; the API
// returns more, and unknown fields are ignored on decode.
package models
