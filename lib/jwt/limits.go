// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

// NoLimit marks a limit field as explicitly unbounded. Distinct from
// leaving the field unset (nil), which means "inherit the system
// default" — the two must never be conflated, so limit fields are
// pointers: nil (inherit), &NoLimit (unlimited), or a bound.
const NoLimit int64 = -1

// Limit returns a pointer to v for populating limit fields.
func Limit(v int64) *int64 {
	return &v
}

// Bool returns a pointer to v for populating optional flag fields.
func Bool(v bool) *bool {
	return &v
}

// NatsLimits caps a connection's core resource usage.
type NatsLimits struct {
	// Subs caps concurrent subscriptions.
	Subs *int64 `json:"subs,omitempty"`

	// Data caps bytes a connection may send.
	Data *int64 `json:"data,omitempty"`

	// Payload caps the size of a single message payload.
	Payload *int64 `json:"payload,omitempty"`
}

// unlimitedNatsLimits is the default for fresh accounts: everything
// explicitly unbounded, not inherited.
func unlimitedNatsLimits() NatsLimits {
	return NatsLimits{Subs: Limit(NoLimit), Data: Limit(NoLimit), Payload: Limit(NoLimit)}
}

// AccountLimits caps account-level structure: how many imports,
// exports, connections, and leaf nodes the account may have.
type AccountLimits struct {
	Imports *int64 `json:"imports,omitempty"`
	Exports *int64 `json:"exports,omitempty"`

	// WildcardExports permits exports with wildcard subjects.
	WildcardExports *bool `json:"wildcards,omitempty"`

	// DisallowBearer forbids bearer-token users under this account.
	DisallowBearer *bool `json:"disallow_bearer,omitempty"`

	// Conn caps client connections; Leaf caps leaf-node connections.
	Conn *int64 `json:"conn,omitempty"`
	Leaf *int64 `json:"leaf,omitempty"`
}

func unlimitedAccountLimits() AccountLimits {
	return AccountLimits{
		Imports:         Limit(NoLimit),
		Exports:         Limit(NoLimit),
		WildcardExports: Bool(true),
		Conn:            Limit(NoLimit),
		Leaf:            Limit(NoLimit),
	}
}

// JetStreamLimits caps an account's JetStream resource usage.
type JetStreamLimits struct {
	MemoryStorage        *int64 `json:"mem_storage,omitempty"`
	DiskStorage          *int64 `json:"disk_storage,omitempty"`
	Streams              *int64 `json:"streams,omitempty"`
	Consumer             *int64 `json:"consumer,omitempty"`
	MaxAckPending        *int64 `json:"max_ack_pending,omitempty"`
	MemoryMaxStreamBytes *int64 `json:"mem_max_stream_bytes,omitempty"`
	DiskMaxStreamBytes   *int64 `json:"disk_max_stream_bytes,omitempty"`
	MaxBytesRequired     *bool  `json:"max_bytes_required,omitempty"`
}

// OperatorLimits is the full operator-imposed limit set on an account.
// The connection, account, and JetStream groups flatten into one JSON
// object; tiered JetStream limits sit under their own key, mapping
// replication-tier name to that tier's limits.
type OperatorLimits struct {
	NatsLimits
	AccountLimits
	JetStreamLimits
	TieredLimits map[string]JetStreamLimits `json:"tiered_limits,omitempty"`
}

// defaultOperatorLimits is the limit set stamped onto fresh accounts:
// connection and account caps explicitly unlimited, no JetStream.
func defaultOperatorLimits() *OperatorLimits {
	return &OperatorLimits{
		NatsLimits:    unlimitedNatsLimits(),
		AccountLimits: unlimitedAccountLimits(),
	}
}

// TimeRange is a daily validity window in HH:MM:SS.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserLimits restricts where and when a user credential works.
type UserLimits struct {
	// Src lists CIDR blocks the connection must originate from.
	Src []string `json:"src,omitempty"`

	// Times lists daily windows during which the credential is valid.
	Times []TimeRange `json:"times,omitempty"`

	// Locale is the IANA time zone the Times are evaluated in.
	Locale string `json:"locale,omitempty"`
}

// Limits is the user-level combination of connection restrictions and
// resource caps, flattened together on the wire.
type Limits struct {
	UserLimits
	NatsLimits
}
