// Package jsonutil provides thin wrappers around sonic for encoding and
// decoding JSON. The wrappers use sonic's encoding/json-compatible
// configuration so output (including map key ordering) matches the standard
// library while keeping sonic's throughput.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal serialises v into a JSON document.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent serialises v into an indented JSON document.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses a JSON document into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Encode writes v to w as a JSON document followed by a newline.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode reads a JSON document from r into v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}
