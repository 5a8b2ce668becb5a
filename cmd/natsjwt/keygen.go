// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/nats-io/nkeys"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/natsjwt/cmd/natsjwt/cli"
)

// keyCreators maps the --type flag to the nkeys constructor for that
// key role.
var keyCreators = map[string]func() (nkeys.KeyPair, error){
	"operator": nkeys.CreateOperator,
	"account":  nkeys.CreateAccount,
	"user":     nkeys.CreateUser,
	"server":   nkeys.CreateServer,
	"cluster":  nkeys.CreateCluster,
}

func keygenCommand() *cli.Command {
	var keyType string
	var seedFile string

	return &cli.Command{
		Name:    "keygen",
		Summary: "generate an nkeys keypair",
		Description: `Keygen generates a fresh nkeys keypair. The public key goes to
stdout for embedding in claims; the seed goes to --seed-file, or to
stderr when no file is given.`,
		Usage: "natsjwt keygen --type <role> [--seed-file path]",
		Examples: []cli.Example{
			{Description: "generate an account keypair", Command: "natsjwt keygen --type account --seed-file account.nk"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
			flags.StringVar(&keyType, "type", "user", "key role: operator, account, user, server, cluster")
			flags.StringVar(&seedFile, "seed-file", "", "write the seed to this file instead of stderr")
			return flags
		},
		Run: func(args []string) error {
			create, ok := keyCreators[keyType]
			if !ok {
				return fmt.Errorf("unknown key type %q", keyType)
			}

			pair, err := create()
			if err != nil {
				return fmt.Errorf("generating %s keypair: %w", keyType, err)
			}
			seed, err := pair.Seed()
			if err != nil {
				return fmt.Errorf("extracting seed: %w", err)
			}
			public, err := pair.PublicKey()
			if err != nil {
				return fmt.Errorf("extracting public key: %w", err)
			}

			if seedFile != "" {
				if err := os.WriteFile(seedFile, append(seed, '\n'), 0o600); err != nil {
					return fmt.Errorf("writing seed file: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Seed written to %s\n", seedFile)
			} else {
				fmt.Fprintf(os.Stderr, "# Seed (keep this secret):\n%s\n", seed)
			}
			fmt.Fprintf(os.Stdout, "%s\n", public)
			return nil
		},
	}
}
