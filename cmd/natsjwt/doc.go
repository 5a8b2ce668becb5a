// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Natsjwt mints, inspects, and verifies ed25519-nkey signed claims
// tokens. Keypairs are nkeys seeds; claims are authored as JSONC files
// and signed with a seed read from a file or an interactive prompt.
// Subcommands: keygen, mint, inspect, verify.
package main
