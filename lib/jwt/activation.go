// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"fmt"
	"strings"
	"time"
)

// Activation authorizes one account (the envelope subject) to import
// a subject exported by another (IssuerAccount).
type Activation struct {
	// ImportSubject is the exported subject being granted.
	ImportSubject string `json:"import_subject,omitempty"`

	// ImportType is the kind of the export being activated.
	ImportType ExportType `json:"import_type,omitempty"`

	// IssuerAccount is the exporting account's public key.
	IssuerAccount string `json:"issuer_account,omitempty"`

	GenericFields
}

// NewActivation returns an activation payload with its discriminant
// and version fixed.
func NewActivation() Activation {
	return Activation{GenericFields: GenericFields{Type: ActivationClaim, Version: ClaimsVersion}}
}

// NewActivationClaims wraps a fresh activation payload in an envelope
// with name and subject set. The subject is the importing account's
// public key.
func NewActivationClaims(name, subject string) *Claims[Activation] {
	claims := newClaims(NewActivation())
	claims.Name = name
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (Activation) ClaimType() ClaimType { return ActivationClaim }

// Validate implements [Claim]. No activation rules are defined yet.
func (Activation) Validate(time.Time, ClaimContext, *ValidationResults) {}

// ActivationHash is the stable identifier of an (issuer, importing
// account, subject prefix) triple: the canonical hash of the three
// strings concatenated without separators, with the import subject
// reduced to its wildcard-free prefix. It correlates an activation to
// the import it authorizes without either side re-deriving the full
// wildcarded subject.
//
// All three inputs must be non-empty; no hashing happens otherwise.
func ActivationHash(issuer, subject, importSubject string) (string, error) {
	if issuer == "" || subject == "" || importSubject == "" {
		return "", fmt.Errorf("%w: activation hash needs issuer, subject, and import subject", ErrMissingData)
	}
	return digestBase32([]byte(issuer + subject + cleanSubject(importSubject))), nil
}

// HashID computes the activation hash of a populated activation
// claim. The claim must have been encoded (or had its issuer set)
// first.
func HashID(claims *Claims[Activation]) (string, error) {
	return ActivationHash(claims.Issuer, claims.Subject, claims.Nats.ImportSubject)
}

// cleanSubject reduces a subject pattern to its deterministic
// wildcard-free prefix: tokens are scanned left to right and the
// subject is truncated at the first `*` or `>` token. A leading
// wildcard reduces to the literal placeholder `_`; a subject with no
// wildcards is returned unchanged.
func cleanSubject(subject string) string {
	tokens := strings.Split(subject, ".")
	for i, token := range tokens {
		if token != "*" && token != ">" {
			continue
		}
		if i == 0 {
			return "_"
		}
		return strings.Join(tokens[:i], ".")
	}
	return subject
}
