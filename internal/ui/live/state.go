package live

import "trivia/internal/quiz"

// State captures everything the live UI renders.
type State struct {
	Phase       quiz.State
	LoadingText string
	Quiz        *quiz.QuizView
	Message     string
	Detail      string
	Current     int
	Cursor      int
	Result      *quiz.Result
	ShowResults bool
	Notice      string
}

// question returns the focused question view.
func (s State) question() (quiz.QuestionView, bool) {
	if s.Quiz == nil || s.Current < 0 || s.Current >= len(s.Quiz.Questions) {
		return quiz.QuestionView{}, false
	}
	return s.Quiz.Questions[s.Current], true
}

// answer returns the answer under the cursor.
func (s State) answer() (quiz.AnswerView, bool) {
	question, ok := s.question()
	if !ok || s.Cursor < 0 || s.Cursor >= len(question.Answers) {
		return quiz.AnswerView{}, false
	}
	return question.Answers[s.Cursor], true
}
