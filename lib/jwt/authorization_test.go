// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"strings"
	"testing"

	"github.com/nats-io/nkeys"

	"github.com/bureau-foundation/natsjwt/lib/codec"
)

// Captured from a live server's auth callout request. Exercises the
// explicit-null conventions and the flattened generic fields.
const sampleAuthorizationRequest = `
{
    "aud": "nats-authorization-request",
    "exp": 1724095784,
    "iat": 1724095782,
    "iss": "NCLH2BAHSW2ASMRX7IIVUPQRUDTC556SMEY5L7PWNHZUJYQ7UDV7C7BA",
    "jti": "ZSNBV24DRMSOCNSGUR45P6S3MGJQ4GRHQXNO6VAPIIKLNV6PYRCA",
    "nats": {
        "client_info": {
            "host": "127.0.0.1",
            "id": 21,
            "kind": "Client",
            "name": "NATS CLI Version development",
            "name_tag": "wasmCloud User Auth-registration",
            "nonce": "6KZMq4gzqULs8Cw",
            "type": "nats",
            "user": "UCB7G4JWCLUIJE7552IRU3EUCPYHSDGIEBANNQ2DLPS4GHKNFOQZORUA"
        },
        "connect_opts": {
            "auth_token": "test",
            "lang": "go",
            "name": "NATS CLI Version development",
            "protocol": 1,
            "sig": "cM53BpZmXibyMbtOJtPYpcMjYdWb33dAt0XOhCjay1aapoSUEx27lbE08MMHFzJAuuR7bxD4cH1iyeglh5KcBw",
            "version": "1.33.1"
        },
        "server_id": {
            "host": "0.0.0.0",
            "id": "NCLH2BAHSW2ASMRX7IIVUPQRUDTC556SMEY5L7PWNHZUJYQ7UDV7C7BA",
            "name": "NCLH2BAHSW2ASMRX7IIVUPQRUDTC556SMEY5L7PWNHZUJYQ7UDV7C7BA",
            "version": "2.10.18",
            "xkey": "XAVESR4X4YVIJJ7VHJWAIQYRU7TMIZCYD36HYSYBYWJWB5GKHDFHETUU"
        },
        "type": "authorization_request",
        "user_nkey": "UCN6UGLQZQB5GXHQOQOSMXYKN4PRMB7PSXVVEDIAWAFNBO25NOUK6DCU",
        "version": 2
    },
    "sub": "ACVUKSAVDJV65AZLNRPSKFJPY22WNRZIXFUORXXKVY2LHXM2JMKL7G4F"
}`

func TestAuthorizationRequestParsesServerCapture(t *testing.T) {
	var claims Claims[AuthorizationRequest]
	if err := codec.Unmarshal([]byte(sampleAuthorizationRequest), &claims); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if claims.Audience != "nats-authorization-request" {
		t.Errorf("Audience = %q", claims.Audience)
	}
	if claims.Expires == nil || *claims.Expires != 1724095784 {
		t.Errorf("Expires = %v, want 1724095784", claims.Expires)
	}
	request := claims.Payload()
	if request.ClientInformation.User == "" {
		t.Error("client user empty")
	}
	if request.ClientInformation.ID != 21 {
		t.Errorf("client ID = %d, want 21", request.ClientInformation.ID)
	}
	if request.ClientInformation.Name == nil || *request.ClientInformation.Name != "NATS CLI Version development" {
		t.Errorf("client name = %v", request.ClientInformation.Name)
	}
	if request.ConnectOptions.AuthToken == nil || *request.ConnectOptions.AuthToken != "test" {
		t.Errorf("auth_token = %v", request.ConnectOptions.AuthToken)
	}
	if request.ConnectOptions.Nkey != nil {
		t.Errorf("absent nkey decoded as %q", *request.ConnectOptions.Nkey)
	}
	if request.Server.XKey == "" {
		t.Error("server xkey empty")
	}
	if request.UserNkey == "" {
		t.Error("user_nkey empty")
	}
	if request.Type != AuthorizationRequestClaim {
		t.Errorf("Type = %q, want %q", request.Type, AuthorizationRequestClaim)
	}
}

func TestConnectOptionsExplicitNulls(t *testing.T) {
	data, err := codec.Marshal(ConnectOptions{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	serialized := string(data)
	for _, field := range []string{`"jwt":null`, `"nkey":null`, `"sig":null`, `"auth_token":null`, `"user":null`, `"pass":null`} {
		if !strings.Contains(serialized, field) {
			t.Errorf("missing %s in %s", field, serialized)
		}
	}
}

func TestClientInformationExplicitNulls(t *testing.T) {
	data, err := codec.Marshal(ClientInformation{Host: "127.0.0.1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	serialized := string(data)
	for _, field := range []string{`"name":null`, `"tags":null`, `"mqtt":null`} {
		if !strings.Contains(serialized, field) {
			t.Errorf("missing %s in %s", field, serialized)
		}
	}
}

func TestAuthorizationResponseRoundtrip(t *testing.T) {
	account := testKey(t, nkeys.CreateAccount)
	userNkey := testKey(t, nkeys.CreateUser)
	server := testKey(t, nkeys.CreateServer)

	user := NewUserClaims("callout user", publicKey(t, userNkey))
	userToken, err := user.Encode(account)
	if err != nil {
		t.Fatalf("Encode user: %v", err)
	}

	response := NewAuthorizationResponseClaims(publicKey(t, userNkey))
	response.Audience = publicKey(t, server)
	response.Nats.Jwt = userToken

	token, err := response.Encode(account)
	if err != nil {
		t.Fatalf("Encode response: %v", err)
	}
	decoded, err := Decode[AuthorizationResponse](token)
	if err != nil {
		t.Fatalf("Decode response: %v", err)
	}

	if decoded.Nats.Error != "" {
		t.Errorf("Error = %q, want empty", decoded.Nats.Error)
	}
	if decoded.Nats.Type != AuthorizationResponseClaim {
		t.Errorf("Type = %q, want %q", decoded.Nats.Type, AuthorizationResponseClaim)
	}

	// The carried user JWT must itself verify.
	embedded, err := Decode[User](decoded.Nats.Jwt)
	if err != nil {
		t.Fatalf("Decode embedded user: %v", err)
	}
	if embedded.Subject != publicKey(t, userNkey) {
		t.Errorf("embedded subject = %q, want the callout user key", embedded.Subject)
	}
}
