// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// UserPermissionLimits is the full permission and limit surface of a
// user credential. It doubles as the template type of a signing-key
// [UserScope], so the same shape governs a single user or every user
// a scoped key issues.
type UserPermissionLimits struct {
	Permissions
	Limits

	// BearerToken lets the credential authenticate without proving
	// possession of the subject key.
	BearerToken *bool `json:"bearer_token,omitempty"`

	// AllowedConnectionTypes restricts the connection kinds
	// (STANDARD, WEBSOCKET, LEAFNODE, MQTT, ...) this user may use.
	AllowedConnectionTypes []string `json:"allowed_connection_types,omitempty"`
}

// User is the payload of a user credential.
type User struct {
	// IssuerAccount is the account public key when the token was
	// signed by an account signing key rather than the account
	// identity key. A verifier cross-checks that the envelope issuer
	// is one of that account's signing keys.
	IssuerAccount string `json:"issuer_account,omitempty"`

	UserPermissionLimits
	GenericFields
}

// NewUser returns a user payload with its discriminant and version
// fixed.
func NewUser() User {
	return User{GenericFields: GenericFields{Type: UserClaim, Version: ClaimsVersion}}
}

// NewUserClaims wraps a fresh user payload in an envelope with name
// and subject set.
func NewUserClaims(name, subject string) *Claims[User] {
	claims := newClaims(NewUser())
	claims.Name = name
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (User) ClaimType() ClaimType { return UserClaim }

// Validate implements [Claim]. No user rules are defined yet.
func (User) Validate(time.Time, ClaimContext, *ValidationResults) {}
