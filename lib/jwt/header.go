// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "fmt"

const (
	// TokenTypeJWT is the fixed value of the header's typ field.
	TokenTypeJWT = "JWT"

	// AlgorithmNkey is the fixed value of the header's alg field. The
	// signature scheme is Ed25519 over the raw segment bytes, with key
	// material in nkey encoding.
	AlgorithmNkey = "ed25519-nkey"
)

// Header is the first token segment. Both fields are constants; a
// header is either exactly {"typ":"JWT","alg":"ed25519-nkey"} or the
// token is rejected.
type Header struct {
	TokenType string `json:"typ"`
	Algorithm string `json:"alg"`
}

// parseHeader decodes the header segment and enforces the fixed type
// and algorithm.
func parseHeader(segment string) (Header, error) {
	var header Header
	if err := decodeSegment(segment, &header); err != nil {
		return Header{}, err
	}
	if header.TokenType != TokenTypeJWT {
		return Header{}, fmt.Errorf("%w: type %q", ErrUnsupportedHeader, header.TokenType)
	}
	if header.Algorithm != AlgorithmNkey {
		return Header{}, fmt.Errorf("%w: algorithm %q", ErrUnsupportedHeader, header.Algorithm)
	}
	return header, nil
}
