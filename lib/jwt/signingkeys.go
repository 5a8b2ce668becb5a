// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"bytes"

	"github.com/bureau-foundation/natsjwt/lib/codec"
)

// ScopeType discriminates signing-key scopes. Only one kind exists.
type ScopeType string

// UserScopeType is the kind marker of a [UserScope].
const UserScopeType ScopeType = "user_scope"

// UserScope restricts what users signed with a particular account
// signing key may do. The template's permissions and limits are
// applied to every user credential the scoped key issues.
type UserScope struct {
	Kind        ScopeType             `json:"kind"`
	Key         string                `json:"key"`
	Role        string                `json:"role,omitempty"`
	Template    *UserPermissionLimits `json:"template,omitempty"`
	Description string                `json:"description,omitempty"`
}

// NewUserScope returns a scope for key with the kind marker set.
func NewUserScope(key string) *UserScope {
	return &UserScope{Kind: UserScopeType, Key: key}
}

// SigningKey is an additional key an account may sign with: either a
// bare public key, or a key bound to a [UserScope]. On the wire the
// two are indistinguishable by tag — a bare key serializes as a JSON
// string, a scoped key as the scope object — so decoding
// discriminates structurally.
type SigningKey struct {
	Key   string
	Scope *UserScope
}

// MarshalJSON emits the bare string or the scope object.
func (k SigningKey) MarshalJSON() ([]byte, error) {
	if k.Scope == nil {
		return codec.Marshal(k.Key)
	}
	scope := *k.Scope
	if scope.Key == "" {
		scope.Key = k.Key
	}
	return codec.Marshal(&scope)
}

// UnmarshalJSON probes the shape: an object is a scope, anything else
// must parse as a bare key string.
func (k *SigningKey) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var scope UserScope
		if err := codec.Unmarshal(trimmed, &scope); err != nil {
			return err
		}
		k.Key = scope.Key
		k.Scope = &scope
		return nil
	}
	k.Scope = nil
	return codec.Unmarshal(trimmed, &k.Key)
}

// SigningKeys is the ordered set of an account's additional signing
// keys.
type SigningKeys []SigningKey

// Add appends bare keys, skipping ones already present.
func (s SigningKeys) Add(keys ...string) SigningKeys {
	for _, key := range keys {
		if s.Contains(key) {
			continue
		}
		s = append(s, SigningKey{Key: key})
	}
	return s
}

// AddScoped appends a scoped key, replacing any existing entry for the
// same key.
func (s SigningKeys) AddScoped(scope *UserScope) SigningKeys {
	for i := range s {
		if s[i].Key == scope.Key {
			s[i].Scope = scope
			return s
		}
	}
	return append(s, SigningKey{Key: scope.Key, Scope: scope})
}

// Contains reports whether key is present, scoped or bare.
func (s SigningKeys) Contains(key string) bool {
	for i := range s {
		if s[i].Key == key {
			return true
		}
	}
	return false
}

// GetScope returns the scope for key. The second result is false when
// the key is absent entirely; a present bare key returns (nil, true).
func (s SigningKeys) GetScope(key string) (*UserScope, bool) {
	for i := range s {
		if s[i].Key == key {
			return s[i].Scope, true
		}
	}
	return nil, false
}
