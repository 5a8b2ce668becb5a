// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// Operator is the root-of-trust payload. Operator tokens are
// self-signed; everything else in a deployment chains back to one.
type Operator struct {
	// SigningKeys lists additional operator keys whose signatures are
	// as good as the identity key's.
	SigningKeys []string `json:"signing_keys,omitempty"`

	// AccountServerURL is where servers fetch account tokens.
	AccountServerURL string `json:"account_server_url,omitempty"`

	// OperatorServiceURLs lists the operator's NATS service
	// endpoints.
	OperatorServiceURLs []string `json:"operator_service_urls,omitempty"`

	// SystemAccount is the public key of the designated system
	// account.
	SystemAccount string `json:"system_account,omitempty"`

	// AssertServerVersion refuses servers older than this version.
	AssertServerVersion string `json:"assert_server_version,omitempty"`

	// StrictSigningKeyUsage forbids the identity key from signing
	// anything but the operator token itself.
	StrictSigningKeyUsage *bool `json:"strict_signing_key_usage,omitempty"`

	GenericFields
}

// NewOperator returns an operator payload with its discriminant and
// version fixed.
func NewOperator() Operator {
	return Operator{GenericFields: GenericFields{Type: OperatorClaim, Version: ClaimsVersion}}
}

// NewOperatorClaims wraps a fresh operator payload in an envelope with
// name and subject set.
func NewOperatorClaims(name, subject string) *Claims[Operator] {
	claims := newClaims(NewOperator())
	claims.Name = name
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (Operator) ClaimType() ClaimType { return OperatorClaim }

// Validate implements [Claim]. No operator rules are defined yet.
func (Operator) Validate(time.Time, ClaimContext, *ValidationResults) {}
