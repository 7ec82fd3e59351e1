package quiz

import "html"

// AnswerView is the render-facing copy of an answer.
type AnswerView struct {
	ID       string `json:"id"`
	GroupKey string `json:"group"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	Locked   bool   `json:"locked"`
	Mark     Mark   `json:"mark,omitempty"`
	Correct  *bool  `json:"correct,omitempty"`
}

// QuestionView is the render-facing copy of a question.
type QuestionView struct {
	ID         string       `json:"id"`
	Prompt     string       `json:"prompt"`
	Type       string       `json:"type"`
	Category   string       `json:"category,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Answers    []AnswerView `json:"answers"`
	SelectedID string       `json:"selected_id,omitempty"`
	Graded     bool         `json:"graded"`
	Score      *int         `json:"score,omitempty"`
}

// QuizView is the render-facing copy of a quiz.
type QuizView struct {
	ID        string         `json:"id"`
	Questions []QuestionView `json:"questions"`
	Answered  int            `json:"answered"`
	Graded    bool           `json:"graded"`
	Result    *Result        `json:"result,omitempty"`
}

// Question returns the view of a question by id.
func (v QuizView) Question(id string) (QuestionView, bool) {
	for _, question := range v.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return QuestionView{}, false
}

// PlainText decodes the HTML entities the trivia API embeds in its text,
// for hosts that do not render markup.
func PlainText(text string) string {
	return html.UnescapeString(text)
}
