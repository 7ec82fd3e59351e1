package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"trivia/internal/opentdb"
)

// Quiz is one batch of questions in response order.
type Quiz struct {
	id        string
	questions []*Question
	graded    bool
	score     int
}

// Result is the outcome of grading a quiz.
type Result struct {
	QuizID string `json:"quiz_id"`
	Score  int    `json:"score"`
	Total  int    `json:"total"`
}

// Build turns fetched records into a quiz with question ids q1..qN.
func Build(records []opentdb.Record, rng *rand.Rand) (*Quiz, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInvalidRecord)
	}
	questions := make([]*Question, 0, len(records))
	for i, rec := range records {
		question, err := NewQuestion(fmt.Sprintf("q%d", i+1), rec, rng)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return &Quiz{id: uuid.NewString(), questions: questions}, nil
}

func (z *Quiz) ID() string   { return z.id }
func (z *Quiz) Len() int     { return len(z.questions) }
func (z *Quiz) Graded() bool { return z.graded }
func (z *Quiz) Score() int   { return z.score }

// Questions returns the questions in display order.
func (z *Quiz) Questions() []*Question {
	return slices.Clone(z.questions)
}

// Question looks up a question by id.
func (z *Quiz) Question(id string) (*Question, bool) {
	for _, question := range z.questions {
		if question.id == id {
			return question, true
		}
	}
	return nil, false
}

// Select records answerID as the choice for questionID.
func (z *Quiz) Select(questionID, answerID string) error {
	question, ok := z.Question(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	return question.Select(answerID)
}

// Answered counts questions with a selection.
func (z *Quiz) Answered() int {
	count := 0
	for _, question := range z.questions {
		if _, ok := question.Selection(); ok {
			count++
		}
	}
	return count
}

// Grade grades every question and returns the sum of their scores.
func (z *Quiz) Grade() int {
	score := 0
	for _, question := range z.questions {
		score += question.Grade()
	}
	z.graded = true
	z.score = score
	return score
}

// Result returns the graded outcome.
func (z *Quiz) Result() Result {
	return Result{QuizID: z.id, Score: z.score, Total: len(z.questions)}
}

// View returns a render-safe copy of the quiz.
func (z *Quiz) View() QuizView {
	questions := make([]QuestionView, 0, len(z.questions))
	for _, question := range z.questions {
		questions = append(questions, question.View())
	}
	view := QuizView{
		ID:        z.id,
		Questions: questions,
		Answered:  z.Answered(),
		Graded:    z.graded,
	}
	if z.graded {
		result := z.Result()
		view.Result = &result
	}
	return view
}
