package quiz

import "fmt"

// Mark classifies an answer for display once its question is graded.
type Mark int

const (
	// MarkNone is the state before grading.
	MarkNone Mark = iota
	// MarkCorrect flags the correct answer.
	MarkCorrect
	// MarkIncorrect flags every other answer.
	MarkIncorrect
)

// String returns the display name of a mark.
func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return ""
	}
}

// MarshalText encodes a mark by name.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mark name written by MarshalText.
func (m *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*m = MarkNone
	case "correct":
		*m = MarkCorrect
	case "incorrect":
		*m = MarkIncorrect
	default:
		return fmt.Errorf("unknown mark %q", text)
	}
	return nil
}

// Answer is one selectable choice. Correctness is fixed at construction;
// selection, lock and mark are runtime state changed by its question.
type Answer struct {
	id       string
	groupKey string
	text     string
	correct  bool
	slot     int

	selected bool
	locked   bool
	mark     Mark
}

func newAnswer(questionID string, slot int, text string, correct bool) *Answer {
	return &Answer{
		id:       fmt.Sprintf("%s-%d", questionID, slot),
		groupKey: questionID,
		text:     text,
		correct:  correct,
		slot:     slot,
	}
}

func (a *Answer) ID() string       { return a.id }
func (a *Answer) GroupKey() string { return a.groupKey }
func (a *Answer) Text() string     { return a.text }
func (a *Answer) IsCorrect() bool  { return a.correct }
func (a *Answer) Slot() int        { return a.slot }
func (a *Answer) Selected() bool   { return a.selected }
func (a *Answer) Locked() bool     { return a.locked }
func (a *Answer) Mark() Mark       { return a.mark }

// View returns a copy safe to hand to rendering code. Correctness is only
// revealed once the answer is locked.
func (a *Answer) View() AnswerView {
	view := AnswerView{
		ID:       a.id,
		GroupKey: a.groupKey,
		Text:     a.text,
		Selected: a.selected,
		Locked:   a.locked,
		Mark:     a.mark,
	}
	if a.locked {
		correct := a.correct
		view.Correct = &correct
	}
	return view
}
