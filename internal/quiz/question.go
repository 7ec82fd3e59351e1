package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"trivia/internal/opentdb"
)

// Fixed answer texts of true/false questions.
const (
	TrueText  = "True"
	FalseText = "False"
)

// Question groups an answer set under a prompt. Exactly one answer is
// correct and at most one is selected.
type Question struct {
	id         string
	prompt     string
	kind       string
	category   string
	difficulty string
	answers    []*Answer

	graded bool
	score  int
}

// NewQuestion builds a question from a fetched record. Boolean questions
// get True and False in that order; multiple choice answers are placed on
// shuffled slots so the correct answer lands in a uniformly random position.
func NewQuestion(id string, rec opentdb.Record, rng *rand.Rand) (*Question, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty question id", ErrInvalidRecord)
	}
	if strings.TrimSpace(rec.Question) == "" {
		return nil, fmt.Errorf("%w: %s: empty question text", ErrInvalidRecord, id)
	}
	if strings.TrimSpace(rec.CorrectAnswer) == "" {
		return nil, fmt.Errorf("%w: %s: empty correct answer", ErrInvalidRecord, id)
	}

	var answers []*Answer
	switch rec.Type {
	case opentdb.TypeBoolean:
		switch rec.CorrectAnswer {
		case TrueText, FalseText:
		default:
			return nil, fmt.Errorf("%w: %s: boolean answer %q", ErrInvalidRecord, id, rec.CorrectAnswer)
		}
		answers = []*Answer{
			newAnswer(id, 1, TrueText, rec.CorrectAnswer == TrueText),
			newAnswer(id, 2, FalseText, rec.CorrectAnswer == FalseText),
		}
	case opentdb.TypeMultiple:
		if len(rec.IncorrectAnswers) == 0 {
			return nil, fmt.Errorf("%w: %s: no incorrect answers", ErrInvalidRecord, id)
		}
		slots := make([]int, len(rec.IncorrectAnswers)+1)
		for i := range slots {
			slots[i] = i + 1
		}
		Shuffle(rng, slots)
		answers = make([]*Answer, 0, len(slots))
		answers = append(answers, newAnswer(id, slots[0], rec.CorrectAnswer, true))
		for j, text := range rec.IncorrectAnswers {
			answers = append(answers, newAnswer(id, slots[j+1], text, false))
		}
		slices.SortFunc(answers, func(a, b *Answer) int { return a.slot - b.slot })
	default:
		return nil, fmt.Errorf("%w: %s: unsupported type %q", ErrInvalidRecord, id, rec.Type)
	}

	return &Question{
		id:         id,
		prompt:     rec.Question,
		kind:       rec.Type,
		category:   rec.Category,
		difficulty: rec.Difficulty,
		answers:    answers,
	}, nil
}

func (q *Question) ID() string         { return q.id }
func (q *Question) Prompt() string     { return q.prompt }
func (q *Question) Type() string       { return q.kind }
func (q *Question) Category() string   { return q.category }
func (q *Question) Difficulty() string { return q.difficulty }
func (q *Question) Graded() bool       { return q.graded }

// Answers returns the answers in display order.
func (q *Question) Answers() []*Answer {
	return slices.Clone(q.answers)
}

// Select makes answerID the only selected answer of the question.
func (q *Question) Select(answerID string) error {
	if q.graded {
		return fmt.Errorf("%w: %s", ErrLocked, q.id)
	}
	target := q.answer(answerID)
	if target == nil {
		return fmt.Errorf("%w: %s in %s", ErrUnknownAnswer, answerID, q.id)
	}
	for _, answer := range q.answers {
		answer.selected = answer == target
	}
	return nil
}

// Selection returns the selected answer, if any.
func (q *Question) Selection() (*Answer, bool) {
	for _, answer := range q.answers {
		if answer.selected {
			return answer, true
		}
	}
	return nil, false
}

// Grade locks the answers, marks each one correct or incorrect and returns
// 1 when the selected answer is the correct one, otherwise 0. Once graded,
// later calls return the first result without touching the answers.
func (q *Question) Grade() int {
	if q.graded {
		return q.score
	}
	score := 0
	for _, answer := range q.answers {
		answer.locked = true
		if answer.correct {
			answer.mark = MarkCorrect
			if answer.selected {
				score = 1
			}
		} else {
			answer.mark = MarkIncorrect
		}
	}
	q.graded = true
	q.score = score
	return score
}

// View returns a render-safe copy of the question.
func (q *Question) View() QuestionView {
	answers := make([]AnswerView, 0, len(q.answers))
	selected := ""
	for _, answer := range q.answers {
		answers = append(answers, answer.View())
		if answer.selected {
			selected = answer.id
		}
	}
	view := QuestionView{
		ID:         q.id,
		Prompt:     q.prompt,
		Type:       q.kind,
		Category:   q.category,
		Difficulty: q.difficulty,
		Answers:    answers,
		SelectedID: selected,
		Graded:     q.graded,
	}
	if q.graded {
		score := q.score
		view.Score = &score
	}
	return view
}

func (q *Question) answer(id string) *Answer {
	for _, answer := range q.answers {
		if answer.id == id {
			return answer
		}
	}
	return nil
}
