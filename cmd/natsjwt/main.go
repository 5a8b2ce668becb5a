// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/natsjwt/cmd/natsjwt/cli"
)

func main() {
	root := &cli.Command{
		Name:    "natsjwt",
		Summary: "mint, inspect, and verify ed25519-nkey signed claims",
		Subcommands: []*cli.Command{
			keygenCommand(),
			mintCommand(),
			inspectCommand(),
			verifyCommand(),
		},
	}

	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
