// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nkeys"

	"github.com/bureau-foundation/natsjwt/lib/codec"
)

// base32Encoding renders content hashes. Standard alphabet, no
// padding — the jti and activation hash values are fixed-width
// already, and padding characters are not URL-safe.
var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Claim is implemented by every payload shape carried in the nats
// field of the envelope.
type Claim interface {
	// ClaimType returns the payload's discriminant.
	ClaimType() ClaimType

	// Validate runs the payload's validation rules against the
	// enclosing envelope, accumulating findings into vr. No payload
	// defines rules yet; every implementation in this package is
	// intentionally empty.
	Validate(now time.Time, ctx ClaimContext, vr *ValidationResults)
}

// ClaimContext carries the envelope fields visible to payload
// validation, so future rules (expiry windows, issuer cross-checks,
// signing-key scope consistency) can see the envelope without the
// payload reaching back into it.
type ClaimContext struct {
	Issuer    string
	Subject   string
	IssuedAt  int64
	Expires   *int64
	NotBefore *int64
}

// Claims is the signed-token envelope around a payload. Field
// declaration order is the canonical serialization order; the jti
// content hash is computed over exactly this layout, so reordering
// fields changes every token identifier.
//
// Issuer and TokenID are authoritative only after encoding: Encode
// overwrites them from the signing key and the content hash, and
// Decode trusts them only once the signature verifies.
type Claims[T Claim] struct {
	// Audience is the intended recipient, when the claim has one
	// (authorization requests address a specific consumer).
	Audience string `json:"aud,omitempty"`

	// Expires is the expiry as Unix seconds. Nil means the claim does
	// not expire.
	Expires *int64 `json:"exp,omitempty"`

	// IssuedAt is set by Encode to the signing time in Unix seconds.
	IssuedAt int64 `json:"iat"`

	// ID is an optional caller-assigned identifier, distinct from the
	// computed TokenID.
	ID string `json:"id,omitempty"`

	// Issuer is the public key that signed the token. Set by Encode;
	// trustworthy only after Decode verifies the signature against it.
	Issuer string `json:"iss"`

	// TokenID (jti) is the deterministic content hash of the
	// envelope, computed at encode time. Serialized even when empty:
	// the hash input includes the blanked field.
	TokenID string `json:"jti"`

	// Name is a human-readable label for the claim.
	Name string `json:"name,omitempty"`

	// Nats is the typed payload.
	Nats T `json:"nats"`

	// NotBefore is the earliest validity as Unix seconds, when set.
	NotBefore *int64 `json:"nbf,omitempty"`

	// Subject is the public key this claim is about.
	Subject string `json:"sub,omitempty"`
}

// newClaims wraps a payload in an empty envelope.
func newClaims[T Claim](payload T) *Claims[T] {
	return &Claims[T]{Nats: payload}
}

// Payload returns the embedded payload.
func (c *Claims[T]) Payload() *T {
	return &c.Nats
}

// Validate runs the payload's validation hook against the envelope
// and returns the collected results. Callers decide blocking-ness via
// [ValidationResults.IsBlocking].
func (c *Claims[T]) Validate(now time.Time) *ValidationResults {
	results := NewValidationResults()
	c.Nats.Validate(now, ClaimContext{
		Issuer:    c.Issuer,
		Subject:   c.Subject,
		IssuedAt:  c.IssuedAt,
		Expires:   c.Expires,
		NotBefore: c.NotBefore,
	}, results)
	return results
}

// Encode signs the claims with pair and returns the token string. The
// receiver is not mutated: the encoded copy gets the current time as
// iat, the pair's public key as iss, and a recomputed jti. Re-encoding
// the same envelope therefore refreshes iat, iss, and jti.
func (c *Claims[T]) Encode(pair nkeys.KeyPair) (string, error) {
	return c.EncodeAt(pair, time.Now())
}

// EncodeAt is like Encode with an explicit issue time. This supports
// deterministic testing; production callers use Encode.
func (c *Claims[T]) EncodeAt(pair nkeys.KeyPair, now time.Time) (string, error) {
	issuer, err := pair.PublicKey()
	if err != nil {
		return "", fmt.Errorf("%w: reading public key: %w", ErrSigning, err)
	}

	encodedHeader, err := encodeSegment(Header{TokenType: TokenTypeJWT, Algorithm: AlgorithmNkey})
	if err != nil {
		return "", err
	}

	// The jti is a hash of the envelope with the jti field itself
	// blanked. Serialize once to compute it, then again with it set.
	claims := *c
	claims.IssuedAt = now.Unix()
	claims.Issuer = issuer
	claims.TokenID = ""

	canonical, err := codec.Marshal(&claims)
	if err != nil {
		return "", fmt.Errorf("jwt: encoding claims: %w", err)
	}
	claims.TokenID = digestBase32(canonical)

	encodedClaims, err := encodeSegment(&claims)
	if err != nil {
		return "", err
	}

	signingInput := encodedHeader + "." + encodedClaims
	signature, err := pair.Sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// Decode parses a token, verifies its signature against the issuer
// key embedded in the envelope, and returns the verified claims. The
// payload type is the caller's assertion about what the token should
// contain; a token carrying a different (but structurally compatible)
// payload decodes with zero values for the missing fields, and the
// payload's type discriminant says what was actually issued.
//
// Verification covers the exact transmitted header and payload
// segments. A token whose signature does not verify is never
// returned, whatever else is right about it.
func Decode[T Claim](token string) (*Claims[T], error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, found %d", ErrInvalidTokenFormat, len(parts))
	}

	if _, err := parseHeader(parts[0]); err != nil {
		return nil, err
	}

	var claims Claims[T]
	if err := decodeSegment(parts[1], &claims); err != nil {
		return nil, err
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: decoding signature: %v", ErrInvalidTokenFormat, err)
	}

	issuer, err := nkeys.FromPublicKey(claims.Issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: issuer key %q: %v", ErrSignatureInvalid, claims.Issuer, err)
	}

	// Verify over the transmitted bytes of header.payload, never a
	// re-serialized copy: the issuer key is inside the signed payload,
	// so any re-encoding before verification would open a gap between
	// the bytes checked and the bytes received.
	signingInput := token[:len(parts[0])+1+len(parts[1])]
	if err := issuer.Verify([]byte(signingInput), signature); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	return &claims, nil
}

// encodeSegment serializes v to canonical JSON and wraps it in
// unpadded base64url.
func encodeSegment(v any) (string, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("jwt: encoding segment: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// decodeSegment reverses encodeSegment into v. No padding, no
// alternate alphabets, no leniency.
func decodeSegment(segment string, v any) error {
	data, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return fmt.Errorf("%w: decoding segment: %v", ErrInvalidTokenFormat, err)
	}
	if err := codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing segment: %v", ErrInvalidTokenFormat, err)
	}
	return nil
}

// digestBase32 is the canonical content hash: SHA-512/256 over data,
// rendered as unpadded base32. Both the jti and the activation hash
// use it, and both must match independent implementations of the same
// primitives byte for byte.
func digestBase32(data []byte) string {
	digest := sha512.Sum512_256(data)
	return base32Encoding.EncodeToString(digest[:])
}
