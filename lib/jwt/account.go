// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// WeightedMapping is one destination of a subject rewrite: the target
// subject, an optional traffic share (percent; absent means the
// remainder), and an optional cluster restriction.
type WeightedMapping struct {
	Subject string `json:"subject"`
	Weight  *uint8 `json:"weight,omitempty"`
	Cluster string `json:"cluster,omitempty"`
}

// Mapping rewrites published subjects to weighted destinations.
type Mapping map[string][]WeightedMapping

// ExternalAuthorization delegates connection authorization to auth
// callout users instead of static user credentials.
type ExternalAuthorization struct {
	// AuthUsers lists user public keys allowed to answer callouts.
	AuthUsers []string `json:"auth_users,omitempty"`

	// AllowedAccounts lists accounts the callout may place users
	// into.
	AllowedAccounts []string `json:"allowed_accounts,omitempty"`

	// XKey encrypts callout requests to this curve key.
	XKey string `json:"xkey,omitempty"`
}

// MsgTrace configures message tracing for the account.
type MsgTrace struct {
	// Destination receives trace events.
	Destination string `json:"dest,omitempty"`

	// Sampling is the percentage of messages traced.
	Sampling *int `json:"sampling,omitempty"`
}

// Account is the payload of an account token: what the account may
// import and export, the operator-imposed limits, its delegated
// signing keys, and the defaults its users inherit.
type Account struct {
	Imports []Import `json:"imports,omitempty"`
	Exports []Export `json:"exports,omitempty"`

	// Limits are operator-imposed. A fresh account starts explicitly
	// unlimited (see defaultOperatorLimits), not inheriting.
	Limits *OperatorLimits `json:"limits,omitempty"`

	SigningKeys SigningKeys `json:"signing_keys,omitempty"`

	// Revocations invalidates user credentials by subject key and
	// issue-time cutoff.
	Revocations RevocationList `json:"revocations,omitempty"`

	// DefaultPermissions apply to users that carry none of their own.
	DefaultPermissions *Permissions `json:"default_permissions,omitempty"`

	Mappings      Mapping                `json:"mappings,omitempty"`
	Authorization *ExternalAuthorization `json:"authorization,omitempty"`
	Trace         *MsgTrace              `json:"trace,omitempty"`

	// Info is always serialized, as explicit null when unset. The
	// wire format is deliberate about this one field.
	Info *Info `json:"info"`

	GenericFields
}

// NewAccount returns an account payload with its discriminant fixed
// and the documented defaults: unlimited connection and account caps,
// wildcard exports allowed, empty default permissions present.
func NewAccount() Account {
	return Account{
		Limits:             defaultOperatorLimits(),
		DefaultPermissions: &Permissions{},
		GenericFields:      GenericFields{Type: AccountClaim, Version: ClaimsVersion},
	}
}

// NewAccountClaims wraps a fresh account payload in an envelope with
// name and subject set.
func NewAccountClaims(name, subject string) *Claims[Account] {
	claims := newClaims(NewAccount())
	claims.Name = name
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (Account) ClaimType() ClaimType { return AccountClaim }

// Validate implements [Claim]. No account rules are defined yet.
func (Account) Validate(time.Time, ClaimContext, *ValidationResults) {}
