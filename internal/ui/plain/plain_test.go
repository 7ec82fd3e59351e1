package plain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"trivia/internal/opentdb"
	"trivia/internal/quiz"
	"trivia/internal/testutil"
)

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Fetch(context.Context) ([]opentdb.Record, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	records := make([]opentdb.Record, 0, 2)
	for i := 0; i < 2; i++ {
		records = append(records, opentdb.Record{
			Type:             opentdb.TypeBoolean,
			Question:         fmt.Sprintf("Statement %d is &quot;true&quot;.", i+1),
			CorrectAnswer:    "True",
			IncorrectAnswers: []string{"False"},
		})
	}
	return records, nil
}

func runHost(t *testing.T, source *countingSource, input string, opts Options) string {
	t.Helper()
	ctl, err := quiz.NewController(quiz.Options{Source: source})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	t.Cleanup(ctl.Close)
	var out bytes.Buffer
	host := NewHost(ctl, strings.NewReader(input), &out, opts)
	ctl.AddObserver(host)
	if err := host.Run(testutil.Context(t, 2*time.Second)); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

// TestRunScoresAnswers verifies letters select answers and the score is printed.
func TestRunScoresAnswers(t *testing.T) {
	source := &countingSource{}
	out := runHost(t, source, "a\nb\nq\n", Options{})
	if !strings.Contains(out, "Loading...") {
		t.Fatalf("expected loading message, got %q", out)
	}
	if !strings.Contains(out, `Statement 1 is "true".`) {
		t.Fatalf("expected decoded prompt, got %q", out)
	}
	if !strings.Contains(out, "You scored 1 out of 2") {
		t.Fatalf("expected score 1 of 2, got %q", out)
	}
	if source.calls != 1 {
		t.Fatalf("expected one fetch, got %d", source.calls)
	}
}

// TestRunRejectsBadLetters verifies invalid input re-prompts.
func TestRunRejectsBadLetters(t *testing.T) {
	out := runHost(t, &countingSource{}, "z\na\n\nq\n", Options{})
	if !strings.Contains(out, "Please type a letter between A-B.") {
		t.Fatalf("expected re-prompt, got %q", out)
	}
	if !strings.Contains(out, "You scored 1 out of 2") {
		t.Fatalf("expected skipped question to score zero, got %q", out)
	}
}

// TestRunNewQuizAndReview verifies n fetches again and r prints marks.
func TestRunNewQuizAndReview(t *testing.T) {
	source := &countingSource{}
	out := runHost(t, source, "a\na\nr\nn\nb\nb\nq\n", Options{})
	if source.calls != 2 {
		t.Fatalf("expected two fetches, got %d", source.calls)
	}
	if !strings.Contains(out, "(correct)  <- your answer") {
		t.Fatalf("expected review marks, got %q", out)
	}
	if !strings.Contains(out, "You scored 2 out of 2") || !strings.Contains(out, "You scored 0 out of 2") {
		t.Fatalf("expected both scores, got %q", out)
	}
}

// TestRunFailureShowsMessage verifies failures print the static message and offer a retry.
func TestRunFailureShowsMessage(t *testing.T) {
	source := &countingSource{err: fmt.Errorf("%w: refused", opentdb.ErrNetwork)}
	out := runHost(t, source, "n\nq\n", Options{Verbose: true})
	if strings.Count(out, quiz.FailureMessage) != 2 {
		t.Fatalf("expected failure message twice, got %q", out)
	}
	if !strings.Contains(out, "refused") {
		t.Fatalf("expected verbose detail, got %q", out)
	}
	if source.calls != 2 {
		t.Fatalf("expected retry fetch, got %d", source.calls)
	}
}

// TestRunEndOfInput verifies EOF ends the session cleanly.
func TestRunEndOfInput(t *testing.T) {
	out := runHost(t, &countingSource{}, "", Options{})
	if !strings.Contains(out, "Question 1 of 2") {
		t.Fatalf("expected first question, got %q", out)
	}
}

// TestLetterIndex verifies letter parsing bounds.
func TestLetterIndex(t *testing.T) {
	if idx, ok := letterIndex("c", 4); !ok || idx != 2 {
		t.Fatalf("expected c -> 2, got %d %v", idx, ok)
	}
	for _, bad := range []string{"e", "ab", "1"} {
		if _, ok := letterIndex(bad, 4); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
	if errors.Is(quitOrErr(errQuit), errQuit) {
		t.Fatalf("expected quit to map to nil")
	}
}
