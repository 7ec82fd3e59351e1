package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunRootInvocations verifies exit codes and output streams for the root command.
func TestRunRootInvocations(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		code       int
		stdoutHas  string
		stderrHas  string
		quietOut   bool
		quietError bool
	}{
		{name: "help flag", args: []string{"--help"}, code: ExitOK, stdoutHas: "trivia <command>", quietError: true},
		{name: "help word", args: []string{"help"}, code: ExitOK, stdoutHas: "validate", quietError: true},
		{name: "no args", args: nil, code: ExitUsage, stdoutHas: "Usage:"},
		{name: "unknown", args: []string{"nope"}, code: ExitUsage, stderrHas: "Unknown command: nope", quietOut: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := Run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("expected exit %d, got %d", tc.code, code)
			}
			if !strings.Contains(stdout.String(), tc.stdoutHas) {
				t.Fatalf("expected stdout to contain %q, got %q", tc.stdoutHas, stdout.String())
			}
			if !strings.Contains(stderr.String(), tc.stderrHas) {
				t.Fatalf("expected stderr to contain %q, got %q", tc.stderrHas, stderr.String())
			}
			if tc.quietOut && stdout.Len() != 0 {
				t.Fatalf("expected empty stdout, got %q", stdout.String())
			}
			if tc.quietError && stderr.Len() != 0 {
				t.Fatalf("expected empty stderr, got %q", stderr.String())
			}
		})
	}
}

// TestRootHelpListsCommands verifies every command is summarized.
func TestRootHelpListsCommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	Run([]string{"--help"}, &stdout, &stderr)
	for _, cmd := range commands {
		if !strings.Contains(stdout.String(), cmd.Summary) {
			t.Fatalf("expected summary for %s in %q", cmd.Name, stdout.String())
		}
	}
}

// TestCommandHelp verifies each command prints its usage lines on stdout.
func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		for _, flag := range []string{"--help", "-h"} {
			var stdout, stderr bytes.Buffer
			if code := Run([]string{cmd.Name, flag}, &stdout, &stderr); code != ExitOK {
				t.Fatalf("%s %s: expected exit %d, got %d", cmd.Name, flag, ExitOK, code)
			}
			if stderr.Len() != 0 {
				t.Fatalf("%s %s: unexpected stderr %q", cmd.Name, flag, stderr.String())
			}
			for _, line := range cmd.Usage {
				if !strings.Contains(stdout.String(), line) {
					t.Fatalf("%s: expected usage line %q", cmd.Name, line)
				}
			}
		}
	}
}

// TestUnknownFlag verifies bad flags are usage errors reported on stderr.
func TestUnknownFlag(t *testing.T) {
	for _, cmd := range commands {
		var stdout, stderr bytes.Buffer
		if code := Run([]string{cmd.Name, "--bogus"}, &stdout, &stderr); code != ExitUsage {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitUsage, code)
		}
		if !strings.Contains(stderr.String(), "invalid arguments") {
			t.Fatalf("%s: expected invalid arguments, got %q", cmd.Name, stderr.String())
		}
	}
}
