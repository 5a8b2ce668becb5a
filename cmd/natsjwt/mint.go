// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nats-io/nkeys"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"golang.org/x/term"

	"github.com/bureau-foundation/natsjwt/cmd/natsjwt/cli"
	"github.com/bureau-foundation/natsjwt/lib/codec"
	"github.com/bureau-foundation/natsjwt/lib/jwt"
)

func mintCommand() *cli.Command {
	var claimsType string
	var seedFile string

	return &cli.Command{
		Name:    "mint",
		Summary: "sign a claims file into a token",
		Description: `Mint reads a claims envelope from a JSONC file (JSON with comments
and trailing commas), signs it with an nkeys seed, and prints the
token to stdout. The issue time, issuer, and token ID fields are
computed at signing time; values in the file are ignored.

The seed comes from --seed-file, or from an interactive no-echo
prompt when stdin is a terminal.`,
		Usage: "natsjwt mint <claims.jsonc> --type <claim> [--seed-file path]",
		Examples: []cli.Example{
			{Description: "mint a user token", Command: "natsjwt mint user.jsonc --type user --seed-file account.nk"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("mint", pflag.ContinueOnError)
			flags.StringVar(&claimsType, "type", "", "claim payload type: operator, account, user, activation, authorization-request, authorization-response")
			flags.StringVar(&seedFile, "seed-file", "", "file holding the signing seed")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one claims file required")
			}
			if claimsType == "" {
				return fmt.Errorf("--type is required")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading claims file: %w", err)
			}
			data := jsonc.ToJSON(raw)

			pair, err := signingKeyPair(seedFile)
			if err != nil {
				return err
			}

			token, err := mintToken(claimsType, data, pair)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}
}

// mintToken parses data as the envelope shape named by claimsType and
// signs it.
func mintToken(claimsType string, data []byte, pair nkeys.KeyPair) (string, error) {
	switch claimsType {
	case "operator":
		return mintAs[jwt.Operator](data, pair)
	case "account":
		return mintAs[jwt.Account](data, pair)
	case "user":
		return mintAs[jwt.User](data, pair)
	case "activation":
		return mintAs[jwt.Activation](data, pair)
	case "authorization-request":
		return mintAs[jwt.AuthorizationRequest](data, pair)
	case "authorization-response":
		return mintAs[jwt.AuthorizationResponse](data, pair)
	}
	return "", fmt.Errorf("unknown claims type %q", claimsType)
}

func mintAs[T jwt.Claim](data []byte, pair nkeys.KeyPair) (string, error) {
	var claims jwt.Claims[T]
	if err := codec.Unmarshal(data, &claims); err != nil {
		return "", fmt.Errorf("parsing claims: %w", err)
	}
	return claims.Encode(pair)
}

// signingKeyPair loads the seed from seedFile, or prompts for it on
// the terminal with echo disabled.
func signingKeyPair(seedFile string) (nkeys.KeyPair, error) {
	var seed []byte
	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
		seed = bytes.TrimSpace(data)
	} else {
		stdin := int(os.Stdin.Fd())
		if !term.IsTerminal(stdin) {
			return nil, fmt.Errorf("no terminal available for seed prompt (use --seed-file)")
		}
		fmt.Fprint(os.Stderr, "Seed: ")
		entered, err := term.ReadPassword(stdin)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading seed: %w", err)
		}
		seed = bytes.TrimSpace(entered)
	}

	pair, err := nkeys.FromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return pair, nil
}
