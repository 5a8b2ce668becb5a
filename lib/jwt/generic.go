// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// GenericPayload is an untyped payload for callers that need the
// envelope without asserting a concrete claim shape — inspection and
// verification tooling mostly. The discriminant is read from the
// decoded object when present.
type GenericPayload map[string]any

// ClaimType implements [Claim], returning the decoded discriminant
// when one is present and valid.
func (p GenericPayload) ClaimType() ClaimType {
	value, ok := p["type"].(string)
	if !ok {
		return GenericClaimType
	}
	switch ClaimType(value) {
	case OperatorClaim, AccountClaim, UserClaim, ActivationClaim,
		AuthorizationRequestClaim, AuthorizationResponseClaim:
		return ClaimType(value)
	}
	return GenericClaimType
}

// Validate implements [Claim]. An untyped payload has no rules.
func (GenericPayload) Validate(time.Time, ClaimContext, *ValidationResults) {}
