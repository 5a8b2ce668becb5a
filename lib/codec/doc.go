// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard JSON encoding
// configuration.
//
// Token segments are JSON: the claims envelope, the header, and every
// payload shape serialize through this package. Centralizing the codec
// keeps the JSON library an implementation detail — no other package
// imports it directly, and swapping the implementation is a one-file
// change.
//
// Serialization must be canonical in the sense the token format
// requires: struct fields emit in declaration order, absent optionals
// are omitted (not emitted as null) unless a field deliberately drops
// omitempty, and embedded structs flatten into the enclosing object.
// These are the encoding/json semantics; goccy/go-json implements them
// byte-compatibly with better throughput.
//
// For buffer-oriented operations (tokens, claim files):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
package codec
