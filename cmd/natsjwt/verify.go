// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/natsjwt/cmd/natsjwt/cli"
	"github.com/bureau-foundation/natsjwt/lib/jwt"
)

func verifyCommand() *cli.Command {
	var expectedIssuer string
	var expectedSubject string

	return &cli.Command{
		Name:    "verify",
		Summary: "verify a token's signature",
		Description: `Verify checks a token's signature against the issuer key embedded
in its claims and prints a summary. The exit status is non-zero when
the signature does not verify or the issuer or subject does not match
the expected key.`,
		Usage: "natsjwt verify [token-file] [--issuer key] [--subject key]",
		Examples: []cli.Example{
			{Description: "require a specific signer", Command: "natsjwt verify user.jwt --issuer OABC..."},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("verify", pflag.ContinueOnError)
			flags.StringVar(&expectedIssuer, "issuer", "", "require this issuer public key")
			flags.StringVar(&expectedSubject, "subject", "", "require this subject public key")
			return flags
		},
		Run: func(args []string) error {
			token, err := readToken(args)
			if err != nil {
				return err
			}

			claims, err := jwt.Decode[jwt.GenericPayload](token)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			if expectedIssuer != "" && claims.Issuer != expectedIssuer {
				return fmt.Errorf("issuer mismatch: token signed by %s", claims.Issuer)
			}
			if expectedSubject != "" && claims.Subject != expectedSubject {
				return fmt.Errorf("subject mismatch: token is about %s", claims.Subject)
			}
			if claims.Expires != nil && time.Now().Unix() > *claims.Expires {
				return fmt.Errorf("token expired at %s", time.Unix(*claims.Expires, 0).UTC().Format(time.RFC3339))
			}

			fmt.Fprintf(os.Stderr, "Signature: valid\n")
			fmt.Fprintf(os.Stderr, "  Type:    %s\n", claims.Nats.ClaimType())
			fmt.Fprintf(os.Stderr, "  Issuer:  %s\n", claims.Issuer)
			if claims.Subject != "" {
				fmt.Fprintf(os.Stderr, "  Subject: %s\n", claims.Subject)
			}
			if claims.Name != "" {
				fmt.Fprintf(os.Stderr, "  Name:    %s\n", claims.Name)
			}
			fmt.Fprintf(os.Stderr, "  ID:      %s\n", claims.TokenID)
			if claims.Expires != nil {
				fmt.Fprintf(os.Stderr, "  Expires: %s\n", time.Unix(*claims.Expires, 0).UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}
