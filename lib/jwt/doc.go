// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jwt implements the self-certifying signed-claims token
// format used by NATS-style messaging deployments: operators trust
// accounts, accounts trust users and other accounts, and every link in
// that chain is a signed token that verifies without contacting the
// issuer.
//
// A token carries a claims envelope (aud/exp/iat/iss/jti/name/nbf/sub)
// around one of six payload shapes: [Operator], [Account], [User],
// [Activation], [AuthorizationRequest], or [AuthorizationResponse].
// The envelope is generic over the payload, so a decoded token is
// typed end to end:
//
//	claims, err := jwt.Decode[jwt.User](token)
//
// # Wire format
//
// A token is three unpadded base64url segments joined by dots:
//
//	base64url(JSON header) . base64url(JSON envelope) . base64url(signature)
//
// The header is fixed: {"typ":"JWT","alg":"ed25519-nkey"}. Any other
// type or algorithm is rejected outright — the algorithm is pinned,
// never negotiated. The signature covers the exact transmitted bytes
// of the first two segments, and verification uses those transmitted
// bytes rather than a re-serialized copy: the issuer key lives inside
// the signed envelope (self-certifying), so re-encoding before
// verification would let an attacker vary serialization without
// invalidating the signature.
//
// The jti is a content hash: SHA-512/256 over the envelope's canonical
// JSON (with jti itself blanked), rendered as unpadded base32. Two
// encodes of an identical envelope produce the same jti.
//
// # Trust boundary
//
// Decode parses the untrusted envelope, reads the issuer key from it,
// and verifies the signature before returning anything. A payload that
// fails verification is never returned — there is no "parsed but
// unverified" result from Decode. Callers needing to display the
// contents of an arbitrary token without trusting it must decode the
// segments themselves.
//
// # Dependencies
//
// Key material is handled entirely by github.com/nats-io/nkeys (the
// keypair capability for this key encoding); JSON goes through
// lib/codec. The hash and base32/base64 primitives are pinned by the
// wire format and come from the standard library.
package jwt
