package live

import "trivia/internal/quiz"

// Action is a user intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionPrevAnswer
	ActionNextAnswer
	ActionPrevQuestion
	ActionNextQuestion
	ActionSelect
	ActionSubmit
	ActionNewQuiz
	ActionDismiss
	ActionQuit
)

// Reduce applies a controller event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventLoadStart:
		state = State{Phase: quiz.StateLoading, LoadingText: event.Text}
	case EventLoadingText:
		if state.Phase == quiz.StateLoading {
			state.LoadingText = event.Text
		}
	case EventLoaded:
		view := event.Quiz
		state = State{Phase: quiz.StateLoaded, Quiz: &view}
	case EventLoadFailed:
		state = State{Phase: quiz.StateError, Message: quiz.FailureMessage}
		if event.Err != nil {
			state.Detail = event.Err.Error()
		}
	case EventGraded:
		if state.Result == nil || state.Result.QuizID != event.Result.QuizID {
			state.ShowResults = true
		}
		result := event.Result
		state.Result = &result
	}
	return state
}

// Sync refreshes quiz data from a controller snapshot, keeping the
// cursor when the quiz is unchanged.
func Sync(state State, snapshot quiz.Snapshot) State {
	sameQuiz := state.Quiz != nil && snapshot.Quiz != nil && state.Quiz.ID == snapshot.Quiz.ID
	state.Phase = snapshot.State
	state.LoadingText = snapshot.LoadingText
	state.Message = snapshot.Message
	state.Quiz = snapshot.Quiz
	if snapshot.Err != nil {
		state.Detail = snapshot.Err.Error()
	} else {
		state.Detail = ""
	}
	if !sameQuiz {
		state.Current = 0
		state.Cursor = 0
		state.Result = nil
		state.ShowResults = false
	}
	if state.Quiz != nil && state.Quiz.Result != nil && state.Result == nil {
		result := *state.Quiz.Result
		state.Result = &result
	}
	return clampCursor(state)
}

// Move applies a navigation action. Other actions leave the state as is.
func Move(state State, action Action) State {
	if state.Quiz == nil || len(state.Quiz.Questions) == 0 {
		return state
	}
	switch action {
	case ActionPrevAnswer:
		state.Cursor--
	case ActionNextAnswer:
		state.Cursor++
	case ActionPrevQuestion:
		state.Current--
		state.Cursor = selectedIndex(state)
	case ActionNextQuestion:
		state.Current++
		state.Cursor = selectedIndex(state)
	case ActionDismiss:
		state.ShowResults = false
	default:
		return state
	}
	return clampCursor(state)
}

func selectedIndex(state State) int {
	state = clampCursor(state)
	question, ok := state.question()
	if !ok {
		return 0
	}
	for i, answer := range question.Answers {
		if answer.ID == question.SelectedID {
			return i
		}
	}
	return 0
}

func clampCursor(state State) State {
	if state.Quiz == nil || len(state.Quiz.Questions) == 0 {
		state.Current = 0
		state.Cursor = 0
		return state
	}
	state.Current = clamp(state.Current, 0, len(state.Quiz.Questions)-1)
	answers := len(state.Quiz.Questions[state.Current].Answers)
	state.Cursor = clamp(state.Cursor, 0, max(answers-1, 0))
	return state
}

func clamp(value, lo, hi int) int {
	return min(max(value, lo), hi)
}
