// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "time"

// Permission is an allow/deny pair of subject patterns.
type Permission struct {
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

// ResponsePermission grants a subscriber the right to publish replies
// to request subjects it would otherwise be denied.
type ResponsePermission struct {
	// MaxMessages caps how many reply messages may be sent per
	// request.
	MaxMessages int64 `json:"max"`

	// TTL bounds how long after the request replies are allowed.
	// Serialized as nanoseconds.
	TTL time.Duration `json:"ttl,omitempty"`
}

// Permissions is the publish/subscribe policy attached to users,
// account defaults, and signing-key scope templates. Pub and Sub are
// always serialized, empty or not.
type Permissions struct {
	Pub  Permission          `json:"pub"`
	Sub  Permission          `json:"sub"`
	Resp *ResponsePermission `json:"resp,omitempty"`
}
