// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"

	"github.com/goccy/go-json"
)

// Marshal encodes v to JSON with encoding/json semantics: struct
// fields in declaration order, embedded structs flattened, omitempty
// honored. Same logical data always produces identical bytes, which
// the token identifier hash depends on.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent encodes v to indented JSON for human-facing output
// (CLI inspection). Never used for token segments — indentation would
// change the signed bytes.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes JSON data into v. Unknown fields are silently
// ignored for forward compatibility with newer claim revisions.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// RawMessage is a raw encoded JSON value. It delays decoding of a
// sub-document (structural probing of union shapes) or passes encoded
// JSON through untouched.
type RawMessage = json.RawMessage

// Encoder is a JSON stream encoder. Type alias so consumers import
// only lib/codec, not the JSON library directly.
type Encoder = json.Encoder

// Decoder is a JSON stream decoder. Type alias so consumers import
// only lib/codec, not the JSON library directly.
type Decoder = json.Decoder

// NewEncoder returns a JSON encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return json.NewEncoder(w)
}

// NewDecoder returns a JSON decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return json.NewDecoder(r)
}
