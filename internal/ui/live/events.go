package live

import "trivia/internal/quiz"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventLoadStart signals that a new quiz is being fetched.
	EventLoadStart EventKind = iota
	// EventLoadingText delivers the next loading animation frame.
	EventLoadingText
	// EventLoaded delivers a freshly built quiz.
	EventLoaded
	// EventLoadFailed signals that the last fetch failed.
	EventLoadFailed
	// EventGraded delivers the submitted score.
	EventGraded
)

// Event carries a UI update payload.
type Event struct {
	Kind   EventKind
	Text   string
	Quiz   quiz.QuizView
	Err    error
	Result quiz.Result
}
