package json

import (
	stdjson "encoding/json"

	"github.com/bytedance/sonic"
)

// RawMessage is a raw encoded JSON value, decoded lazily by whoever
// knows its shape.
type RawMessage = stdjson.RawMessage

var (
	// Marshal serializes v to JSON using sonic.
	Marshal = sonic.Marshal

	// Unmarshal deserializes JSON data into v using sonic.
	Unmarshal = sonic.Unmarshal

	// MarshalIndent serializes v to indented JSON.
	MarshalIndent = sonic.MarshalIndent
)

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return sonic.Valid(data)
}
