// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/natsjwt/lib/codec"
)

// ClaimType is the payload discriminant embedded in every payload's
// generic fields. The set is closed: decoding an unknown value fails.
type ClaimType string

const (
	OperatorClaim              ClaimType = "operator"
	AccountClaim               ClaimType = "account"
	UserClaim                  ClaimType = "user"
	ActivationClaim            ClaimType = "activation"
	AuthorizationRequestClaim  ClaimType = "authorization_request"
	AuthorizationResponseClaim ClaimType = "authorization_response"
	GenericClaimType           ClaimType = "generic"
)

// UnmarshalJSON enforces the closed set.
func (t *ClaimType) UnmarshalJSON(data []byte) error {
	var value string
	if err := codec.Unmarshal(data, &value); err != nil {
		return err
	}
	switch ClaimType(value) {
	case OperatorClaim, AccountClaim, UserClaim, ActivationClaim,
		AuthorizationRequestClaim, AuthorizationResponseClaim, GenericClaimType:
		*t = ClaimType(value)
		return nil
	}
	return fmt.Errorf("unknown claim type %q", value)
}

// ClaimsVersion is the schema version stamped into freshly
// constructed payloads.
const ClaimsVersion = 2

// GenericFields is the substructure shared by every payload: free-form
// tags, the discriminant, and the schema version.
type GenericFields struct {
	Tags    []string  `json:"tags,omitempty"`
	Type    ClaimType `json:"type"`
	Version int       `json:"version"`
}

// ExportType describes what kind of subject space an export (or the
// import consuming it) covers.
type ExportType string

const (
	UnknownExport ExportType = "unknown"
	StreamExport  ExportType = "stream"
	ServiceExport ExportType = "service"
)

// UnmarshalJSON enforces the closed set.
func (t *ExportType) UnmarshalJSON(data []byte) error {
	var value string
	if err := codec.Unmarshal(data, &value); err != nil {
		return err
	}
	switch ExportType(value) {
	case UnknownExport, StreamExport, ServiceExport:
		*t = ExportType(value)
		return nil
	}
	return fmt.Errorf("unknown export type %q", value)
}

// ResponseType describes the reply pattern of a service export. The
// values are capitalized on the wire.
type ResponseType string

const (
	ResponseTypeSingleton ResponseType = "Singleton"
	ResponseTypeStream    ResponseType = "Stream"
	ResponseTypeChunked   ResponseType = "Chunked"
)

// UnmarshalJSON enforces the closed set.
func (t *ResponseType) UnmarshalJSON(data []byte) error {
	var value string
	if err := codec.Unmarshal(data, &value); err != nil {
		return err
	}
	switch ResponseType(value) {
	case ResponseTypeSingleton, ResponseTypeStream, ResponseTypeChunked:
		*t = ResponseType(value)
		return nil
	}
	return fmt.Errorf("unknown response type %q", value)
}

// ServiceLatency configures latency sampling for a service export.
type ServiceLatency struct {
	Results string `json:"results"`
}

// Info is a human-facing description attached to exports and accounts.
type Info struct {
	Description string `json:"description,omitempty"`
	InfoURL     string `json:"info_url,omitempty"`
}

// RevocationList maps a subject public key to an epoch cutoff.
// Credentials issued at or before the cutoff for a matching entry are
// considered revoked; later reissues are clean.
type RevocationList map[string]int64

// Revoke records key as revoked for anything issued at or before
// cutoff. An existing later cutoff is kept.
func (r RevocationList) Revoke(key string, cutoff time.Time) {
	if existing, ok := r[key]; ok && existing >= cutoff.Unix() {
		return
	}
	r[key] = cutoff.Unix()
}

// ClearRevocation removes the entry for key.
func (r RevocationList) ClearRevocation(key string) {
	delete(r, key)
}

// IsRevoked reports whether a credential for key issued at issuedAt
// falls under a revocation entry.
func (r RevocationList) IsRevoked(key string, issuedAt time.Time) bool {
	cutoff, ok := r[key]
	return ok && issuedAt.Unix() <= cutoff
}

// Import describes a subject an account pulls in from another
// account's export.
type Import struct {
	Name    string `json:"name,omitempty"`
	Subject string `json:"subject,omitempty"`

	// Account is the public key of the exporting account.
	Account string `json:"account,omitempty"`

	// Token is the activation token authorizing this import, when the
	// export requires one.
	Token string `json:"token,omitempty"`

	// To remaps the imported subject into the importing account's
	// namespace. Superseded by LocalSubject.
	To string `json:"to,omitempty"`

	LocalSubject string     `json:"local_subject,omitempty"`
	Type         ExportType `json:"type,omitempty"`
	Share        *bool      `json:"share,omitempty"`
	AllowTrace   *bool      `json:"allow_trace,omitempty"`
}

// Export describes a subject an account makes available to importers.
type Export struct {
	Name    string     `json:"name,omitempty"`
	Subject string     `json:"subject,omitempty"`
	Type    ExportType `json:"type,omitempty"`

	// TokenReq requires importers to present an activation token.
	TokenReq *bool `json:"token_req,omitempty"`

	// Revocations invalidates previously issued activations by
	// importing-account key and issue-time cutoff.
	Revocations RevocationList `json:"revocations,omitempty"`

	ResponseType      ResponseType  `json:"response_type,omitempty"`
	ResponseThreshold time.Duration `json:"response_threshold,omitempty"`

	Latency *ServiceLatency `json:"latency,omitempty"`

	// AccountTokenPosition is the wildcard position carrying the
	// importing account's key in position-scoped exports.
	AccountTokenPosition *uint64 `json:"account_token_position,omitempty"`

	Advertise  *bool `json:"advertise,omitempty"`
	AllowTrace *bool `json:"allow_trace,omitempty"`

	Info
}
