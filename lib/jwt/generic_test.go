// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"testing"

	"github.com/nats-io/nkeys"
)

func TestGenericPayloadDecodesAnyClaim(t *testing.T) {
	operator := testKey(t, nkeys.CreateOperator)
	accountKey := testKey(t, nkeys.CreateAccount)

	claims := NewAccountClaims("acme", publicKey(t, accountKey))
	token, err := claims.Encode(operator)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode[GenericPayload](token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := decoded.Nats.ClaimType(); got != AccountClaim {
		t.Errorf("ClaimType = %q, want %q", got, AccountClaim)
	}
	if decoded.Subject != publicKey(t, accountKey) {
		t.Errorf("Subject = %q, want the account key", decoded.Subject)
	}
}

func TestGenericPayloadClaimType(t *testing.T) {
	tests := []struct {
		name    string
		payload GenericPayload
		want    ClaimType
	}{
		{"user", GenericPayload{"type": "user"}, UserClaim},
		{"operator", GenericPayload{"type": "operator"}, OperatorClaim},
		{"unknown string", GenericPayload{"type": "mystery"}, GenericClaimType},
		{"non-string", GenericPayload{"type": 7}, GenericClaimType},
		{"absent", GenericPayload{}, GenericClaimType},
	}
	for _, test := range tests {
		if got := test.payload.ClaimType(); got != test.want {
			t.Errorf("%s: ClaimType = %q, want %q", test.name, got, test.want)
		}
	}
}
