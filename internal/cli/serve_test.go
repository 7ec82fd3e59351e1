package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"trivia/internal/webui"
)

// TestServeCommandPassesConfig verifies serve forwards config and flags to the web host.
func TestServeCommandPassesConfig(t *testing.T) {
	stubSource(t, fakeSource{records: booleanRecords(3)})
	var gotConfig webui.Config
	var gotState string
	original := serveWeb
	serveWeb = func(_ context.Context, cfg webui.Config, ctl webui.QuizController) error {
		gotConfig = cfg
		gotState = ctl.Snapshot().State.String()
		return nil
	}
	t.Cleanup(func() { serveWeb = original })

	path := writeConfigFile(t, "web:\n  addr: \"127.0.0.1:7000\"\n  cors_origins: [\"http://localhost:3000\"]\n")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--config", path, "--addr", "127.0.0.1:5050"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if gotConfig.Addr != "127.0.0.1:5050" {
		t.Fatalf("expected flag to override addr, got %s", gotConfig.Addr)
	}
	if len(gotConfig.CORSOrigins) != 1 || gotConfig.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins %v", gotConfig.CORSOrigins)
	}
	if gotConfig.Logger == nil {
		t.Fatalf("expected logger to be passed")
	}
	if gotState != "loading" && gotState != "loaded" {
		t.Fatalf("expected the first quiz to be requested, got %s", gotState)
	}
	if !strings.Contains(stdout.String(), "http://127.0.0.1:5050") {
		t.Fatalf("expected serving banner, got %q", stdout.String())
	}
}

// TestServeCommandRejectsArgs verifies positional arguments are rejected.
func TestServeCommandRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"serve", "extra"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
