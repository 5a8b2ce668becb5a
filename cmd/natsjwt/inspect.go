// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/natsjwt/cmd/natsjwt/cli"
	"github.com/bureau-foundation/natsjwt/lib/codec"
	"github.com/bureau-foundation/natsjwt/lib/jwt"
)

func inspectCommand() *cli.Command {
	var output string
	var noVerify bool

	return &cli.Command{
		Name:    "inspect",
		Summary: "decode a token and print its contents",
		Description: `Inspect decodes a token and prints the header and claims. The
signature is verified against the issuer key embedded in the claims
unless --no-verify is given; an unverified dump is marked as such.

The token is read from the file argument, or from stdin when the
argument is absent or "-".`,
		Usage: "natsjwt inspect [token-file] [--output json|yaml] [--no-verify]",
		Examples: []cli.Example{
			{Description: "inspect a token from stdin as YAML", Command: "natsjwt inspect --output yaml < user.jwt"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flags.StringVar(&output, "output", "json", "output format: json or yaml")
			flags.BoolVar(&noVerify, "no-verify", false, "decode without verifying the signature")
			return flags
		},
		Run: func(args []string) error {
			token, err := readToken(args)
			if err != nil {
				return err
			}

			dump, err := tokenContents(token, noVerify)
			if err != nil {
				return err
			}

			switch output {
			case "json":
				rendered, err := codec.MarshalIndent(dump, "", "  ")
				if err != nil {
					return fmt.Errorf("rendering: %w", err)
				}
				fmt.Fprintf(os.Stdout, "%s\n", rendered)
			case "yaml":
				rendered, err := yaml.Marshal(dump)
				if err != nil {
					return fmt.Errorf("rendering: %w", err)
				}
				fmt.Fprintf(os.Stdout, "%s", rendered)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
			return nil
		},
	}
}

// tokenContents decodes the token into a displayable structure. With
// verification the claims come from jwt.Decode; without, the segments
// are unpacked directly and the dump is flagged unverified.
func tokenContents(token string, noVerify bool) (map[string]any, error) {
	if !noVerify {
		claims, err := jwt.Decode[jwt.GenericPayload](token)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"verified": true,
			"type":     claims.Nats.ClaimType(),
			"claims":   claims,
		}, nil
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 token segments, found %d", len(parts))
	}

	var header map[string]any
	if err := decodeTokenSegment(parts[0], &header); err != nil {
		return nil, fmt.Errorf("decoding header: %w", err)
	}
	var claims map[string]any
	if err := decodeTokenSegment(parts[1], &claims); err != nil {
		return nil, fmt.Errorf("decoding claims: %w", err)
	}

	return map[string]any{
		"verified": false,
		"header":   header,
		"claims":   claims,
	}, nil
}

func decodeTokenSegment(segment string, v any) error {
	data, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return err
	}
	return codec.Unmarshal(data, v)
}

// readToken reads the token from the named file, or stdin for "-" or
// no argument. Surrounding whitespace is trimmed.
func readToken(args []string) (string, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	token := string(bytes.TrimSpace(data))
	if token == "" {
		return "", fmt.Errorf("no token provided")
	}
	return token, nil
}
