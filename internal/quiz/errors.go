package quiz

import "errors"

// ErrInvalidRecord indicates a fetched record cannot become a question.
var ErrInvalidRecord = errors.New("invalid question record")

// ErrLocked indicates the answers of a graded question can no longer change.
var ErrLocked = errors.New("question is locked")

// ErrUnknownAnswer indicates an answer id outside the question.
var ErrUnknownAnswer = errors.New("unknown answer")

// ErrUnknownQuestion indicates a question id outside the quiz.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrLoadInProgress rejects a new quiz while a fetch is outstanding.
var ErrLoadInProgress = errors.New("quiz is already loading")

// ErrNotLoaded rejects actions that need a loaded quiz.
var ErrNotLoaded = errors.New("no quiz is loaded")

// ErrAlreadySubmitted rejects a second submit of the same quiz.
var ErrAlreadySubmitted = errors.New("quiz already submitted")

// ErrClosed rejects use of a closed controller.
var ErrClosed = errors.New("quiz controller is closed")

// FailureMessage is the text hosts show when a quiz cannot be loaded.
const FailureMessage = "Sorry, something went wrong."
