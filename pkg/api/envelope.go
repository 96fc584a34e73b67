// Package api contains the wire types shared by the function gateway and its clients.
package api

import "encoding/json"

const (
	// APIKeyHeader carries the anon key on every gateway call
	APIKeyHeader = "apikey"
	// IdempotencyHeader carries the client-generated key of an order creation
	IdempotencyHeader = "Idempotency-Key"
)

// Envelope is the uniform response body of every gateway endpoint.
// Callers must check Success before trusting Data.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// RawEnvelope is the client-side view of Envelope with Data left undecoded.
type RawEnvelope struct {
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Success bool            `json:"success"`
}

// Reason returns the most specific failure text the server supplied.
func (e RawEnvelope) Reason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// OK wraps data into a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope carrying msg.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}
