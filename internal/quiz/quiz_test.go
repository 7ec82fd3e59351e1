package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"trivia/internal/opentdb"
)

func records(n int) []opentdb.Record {
	out := make([]opentdb.Record, 0, n)
	for i := 0; i < n; i++ {
		rec := multipleRecord()
		rec.Question = fmt.Sprintf("Question %d?", i+1)
		if i%2 == 1 {
			rec = booleanRecord("False")
			rec.Question = fmt.Sprintf("Statement %d.", i+1)
		}
		out = append(out, rec)
	}
	return out
}

// TestBuildKeepsResponseOrder verifies question ids and order follow the records.
func TestBuildKeepsResponseOrder(t *testing.T) {
	z, err := Build(records(10), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if z.Len() != 10 {
		t.Fatalf("expected 10 questions, got %d", z.Len())
	}
	if _, err := uuid.Parse(z.ID()); err != nil {
		t.Fatalf("expected uuid quiz id, got %q", z.ID())
	}
	for i, q := range z.Questions() {
		if q.ID() != fmt.Sprintf("q%d", i+1) {
			t.Fatalf("expected id q%d, got %s", i+1, q.ID())
		}
	}
	if z.Questions()[1].Prompt() != "Statement 2." {
		t.Fatalf("unexpected second prompt %q", z.Questions()[1].Prompt())
	}
}

// TestBuildRejectsInvalidBatches verifies empty and invalid batches fail.
func TestBuildRejectsInvalidBatches(t *testing.T) {
	if _, err := Build(nil, nil); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected invalid record for empty batch, got %v", err)
	}
	bad := records(3)
	bad[2].Type = "essay"
	if _, err := Build(bad, nil); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected invalid record, got %v", err)
	}
}

// TestQuizGradeSumsQuestionScores verifies ten questions with six correct score six.
func TestQuizGradeSumsQuestionScores(t *testing.T) {
	z, err := Build(records(10), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, q := range z.Questions() {
		var pick *Answer
		switch {
		case i < 6:
			pick = correctAnswer(t, q)
		case i < 9:
			pick = incorrectAnswer(t, q)
		default:
			continue
		}
		if err := z.Select(q.ID(), pick.ID()); err != nil {
			t.Fatalf("select: %v", err)
		}
	}
	if z.Answered() != 9 {
		t.Fatalf("expected 9 answered, got %d", z.Answered())
	}
	if got := z.Grade(); got != 6 {
		t.Fatalf("expected score 6, got %d", got)
	}
	result := z.Result()
	if result.Score != 6 || result.Total != 10 || result.QuizID != z.ID() {
		t.Fatalf("unexpected result %+v", result)
	}
	view := z.View()
	if !view.Graded || view.Result == nil || view.Result.Score != 6 {
		t.Fatalf("unexpected view result %+v", view.Result)
	}
}

// TestQuizSelectUnknownQuestion verifies question ids are checked.
func TestQuizSelectUnknownQuestion(t *testing.T) {
	z, err := Build(records(2), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := z.Select("q3", "q3-1"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected unknown question, got %v", err)
	}
}

// TestQuizViewLookup verifies QuizView.Question finds views by id.
func TestQuizViewLookup(t *testing.T) {
	z, err := Build(records(2), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := z.Select("q2", "q2-2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	view, ok := z.View().Question("q2")
	if !ok || view.SelectedID != "q2-2" {
		t.Fatalf("expected q2 view with selection, got %+v", view)
	}
	if _, ok := z.View().Question("nope"); ok {
		t.Fatalf("expected lookup miss")
	}
}
