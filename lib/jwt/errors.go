// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "errors"

// Errors returned by Encode, Decode, and ActivationHash. All failures
// are deterministic functions of their inputs; nothing here is
// retryable with the same input.
var (
	// ErrInvalidTokenFormat reports malformed base64, a wrong segment
	// count, or JSON that does not match the expected shape.
	ErrInvalidTokenFormat = errors.New("jwt: invalid token format")

	// ErrUnsupportedHeader reports a token whose header names a type
	// or algorithm other than the fixed constants. The token may be a
	// perfectly valid JWT of some other system; it is not one of ours.
	ErrUnsupportedHeader = errors.New("jwt: unsupported token header")

	// ErrSignatureInvalid reports a signature that does not verify
	// against the issuer key embedded in the envelope, including a
	// malformed issuer key. The payload must be discarded.
	ErrSignatureInvalid = errors.New("jwt: signature verification failed")

	// ErrMissingData reports an activation hash request with an empty
	// issuer, subject, or import subject.
	ErrMissingData = errors.New("jwt: not enough data in the claim")

	// ErrSigning reports a failure of the underlying key capability
	// during Encode (unusable or public-only key material).
	ErrSigning = errors.New("jwt: signing failed")
)
