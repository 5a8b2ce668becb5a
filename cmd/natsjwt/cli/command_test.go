// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "natsjwt",
		Subcommands: []*Command{
			{
				Name: "keygen",
				Run: func(args []string) error {
					called = "keygen"
					return nil
				},
			},
			{
				Name: "inspect",
				Run: func(args []string) error {
					called = "inspect"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"inspect"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "inspect" {
		t.Errorf("dispatched to %q, want %q", called, "inspect")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var seedFile string
	var target string

	command := &Command{
		Name: "mint",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("mint", pflag.ContinueOnError)
			flagSet.StringVar(&seedFile, "seed-file", "", "signing seed file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--seed-file", "/tmp/op.nk", "claims.jsonc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if seedFile != "/tmp/op.nk" {
		t.Errorf("seedFile = %q, want /tmp/op.nk", seedFile)
	}
	if target != "claims.jsonc" {
		t.Errorf("target = %q, want claims.jsonc", target)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "natsjwt",
		Subcommands: []*Command{
			{Name: "keygen", Run: func(args []string) error { return nil }},
			{Name: "verify", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"verfy"})
	if err == nil {
		t.Fatal("Execute() accepted an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "verify"`) {
		t.Errorf("error %q does not suggest verify", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "inspect",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flagSet.String("output", "json", "output format")
			flagSet.Bool("no-verify", false, "skip signature verification")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--ouput", "yaml"})
	if err == nil {
		t.Fatal("Execute() accepted an unknown flag")
	}
	if !strings.Contains(err.Error(), "--output") {
		t.Errorf("error %q does not suggest --output", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "natsjwt",
		Subcommands: []*Command{{Name: "keygen", Run: func(args []string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("Execute() with no args succeeded on a branch command")
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "natsjwt",
		Summary: "mint and inspect signed claims",
		Subcommands: []*Command{
			{Name: "keygen", Summary: "generate a keypair"},
			{Name: "mint", Summary: "sign a claims file"},
		},
		Examples: []Example{
			{Description: "generate an operator key", Command: "natsjwt keygen --type operator"},
		},
	}

	var help bytes.Buffer
	root.PrintHelp(&help)
	output := help.String()

	for _, want := range []string{"keygen", "generate a keypair", "mint", "natsjwt keygen --type operator"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"keygen", "keygen", 0},
		{"verfy", "verify", 1},
		{"inspct", "inspect", 1},
		{"mint", "verify", 6},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
