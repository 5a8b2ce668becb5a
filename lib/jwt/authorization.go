// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// ServerID identifies the server that originated an authorization
// request.
type ServerID struct {
	Name    string   `json:"name"`
	Host    string   `json:"host"`
	ID      string   `json:"id"`
	Version string   `json:"version,omitempty"`
	Cluster string   `json:"cluster,omitempty"`
	Tags    []string `json:"tags,omitempty"`

	// XKey is the server's curve key for encrypting the response.
	XKey string `json:"xkey,omitempty"`
}

// ClientInformation describes the connecting client as the server
// sees it. The name, tags, and mqtt fields serialize as explicit null
// when unset — the wire format keeps them present.
type ClientInformation struct {
	Host    string   `json:"host"`
	ID      uint64   `json:"id"`
	User    string   `json:"user"`
	Name    *string  `json:"name"`
	Tags    []string `json:"tags"`
	NameTag string   `json:"name_tag"`
	Kind    string   `json:"kind"`
	Type    string   `json:"type"`
	MQTT    *string  `json:"mqtt"`
	Nonce   string   `json:"nonce"`
}

// ConnectOptions is the raw CONNECT payload the client presented.
// Unset fields serialize as explicit null, mirroring how the server
// forwards them.
type ConnectOptions struct {
	JWT       *string `json:"jwt"`
	Nkey      *string `json:"nkey"`
	Signature *string `json:"sig"`
	AuthToken *string `json:"auth_token"`
	User      *string `json:"user"`
	Pass      *string `json:"pass"`
	Name      *string `json:"name"`
	Lang      *string `json:"lang"`
	Version   *string `json:"version"`
	Protocol  int     `json:"protocol"`
}

// ClientTLS summarizes the client's TLS session when one exists.
type ClientTLS struct {
	Version        string     `json:"version"`
	Cipher         string     `json:"cipher"`
	Certs          []string   `json:"certs"`
	VerifiedChains [][]string `json:"verified_chains"`
}

// AuthorizationRequest is the payload a server sends to an external
// authorization service when a client connects: who is asking, from
// where, and with what presented credentials.
type AuthorizationRequest struct {
	Server ServerID `json:"server_id"`

	// UserNkey is the ephemeral user public key the server assigned
	// for this connection; the response's user JWT must be issued to
	// it.
	UserNkey string `json:"user_nkey"`

	ClientInformation ClientInformation `json:"client_info"`
	ConnectOptions    ConnectOptions    `json:"connect_opts"`

	TLS *ClientTLS `json:"client_tls,omitempty"`

	// RequestNonce must be echoed in the response when present.
	RequestNonce string `json:"request_nonce,omitempty"`

	GenericFields
}

// NewAuthorizationRequest returns a request payload with its
// discriminant and version fixed.
func NewAuthorizationRequest() AuthorizationRequest {
	return AuthorizationRequest{GenericFields: GenericFields{Type: AuthorizationRequestClaim, Version: ClaimsVersion}}
}

// NewAuthorizationRequestClaims wraps a fresh request payload in an
// envelope with the subject (the global account) set.
func NewAuthorizationRequestClaims(subject string) *Claims[AuthorizationRequest] {
	claims := newClaims(NewAuthorizationRequest())
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (AuthorizationRequest) ClaimType() ClaimType { return AuthorizationRequestClaim }

// Validate implements [Claim]. No request rules are defined yet.
func (AuthorizationRequest) Validate(time.Time, ClaimContext, *ValidationResults) {}

// AuthorizationResponse is the verdict an external authorization
// service returns: a user JWT admitting the connection, or an error
// refusing it. Exactly one of the two is meaningful.
type AuthorizationResponse struct {
	// Jwt is the issued user JWT authorizing the connection.
	Jwt string `json:"jwt"`

	// Error is the refusal reason; non-empty means denied.
	Error string `json:"error,omitempty"`

	// IssuerAccount is the account public key when the response was
	// signed by an account signing key rather than the identity key.
	IssuerAccount string `json:"issuer_account,omitempty"`

	GenericFields
}

// NewAuthorizationResponse returns a response payload with its
// discriminant and version fixed.
func NewAuthorizationResponse() AuthorizationResponse {
	return AuthorizationResponse{GenericFields: GenericFields{Type: AuthorizationResponseClaim, Version: ClaimsVersion}}
}

// NewAuthorizationResponseClaims wraps a fresh response payload in an
// envelope with the subject (the requesting server's user nkey) set.
func NewAuthorizationResponseClaims(subject string) *Claims[AuthorizationResponse] {
	claims := newClaims(NewAuthorizationResponse())
	claims.Subject = subject
	return claims
}

// ClaimType implements [Claim].
func (AuthorizationResponse) ClaimType() ClaimType { return AuthorizationResponseClaim }

// Validate implements [Claim]. No response rules are defined yet.
func (AuthorizationResponse) Validate(time.Time, ClaimContext, *ValidationResults) {}
