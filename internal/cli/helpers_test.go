package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"trivia/internal/config"
	"trivia/internal/opentdb"
	"trivia/internal/quiz"
)

type fakeSource struct {
	records []opentdb.Record
	err     error
}

func (s fakeSource) Fetch(context.Context) ([]opentdb.Record, error) {
	return s.records, s.err
}

func booleanRecords(n int) []opentdb.Record {
	records := make([]opentdb.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, opentdb.Record{
			Type:             opentdb.TypeBoolean,
			Question:         "The sky is blue.",
			CorrectAnswer:    "True",
			IncorrectAnswers: []string{"False"},
		})
	}
	return records
}

// stubSource swaps the question source for the duration of a test.
func stubSource(t *testing.T, source quiz.Source) *config.Config {
	t.Helper()
	var seen config.Config
	original := newSource
	newSource = func(cfg config.Config) quiz.Source {
		seen = cfg
		return source
	}
	t.Cleanup(func() { newSource = original })
	return &seen
}

// stubStdin swaps interactive input for the duration of a test.
func stubStdin(t *testing.T, in io.Reader) {
	t.Helper()
	original := stdin
	stdin = in
	t.Cleanup(func() { stdin = original })
}

func writeConfigFile(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
