// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the natsjwt
// binary: nested subcommand dispatch, pflag flag parsing, structured
// help output, and typo suggestions for unknown commands and flags.
package cli
