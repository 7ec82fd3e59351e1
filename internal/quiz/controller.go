package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"trivia/internal/loading"
	"trivia/internal/opentdb"
)

// State is the lifecycle phase of a Controller.
type State int

const (
	// StateIdle is the phase before the first load.
	StateIdle State = iota
	// StateLoading means a fetch is outstanding.
	StateLoading
	// StateLoaded means a quiz is available.
	StateLoaded
	// StateError means the last load failed.
	StateError
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText encodes a state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source fetches a batch of question records.
type Source interface {
	Fetch(ctx context.Context) ([]opentdb.Record, error)
}

// Options configures a Controller.
type Options struct {
	Source          Source
	Rand            *rand.Rand
	Logger          *zap.Logger
	LoadingMessage  string
	LoadingInterval time.Duration
	NewTicker       loading.TickerFunc
	Observers       []Observer
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	State       State     `json:"state"`
	LoadingText string    `json:"loading_text,omitempty"`
	Quiz        *QuizView `json:"quiz,omitempty"`
	Message     string    `json:"message,omitempty"`
	Err         error     `json:"-"`
}

// Controller runs the fetch, build, render, grade lifecycle of one quiz at a time.
type Controller struct {
	mu        sync.Mutex
	source    Source
	rng       *rand.Rand
	logger    *zap.Logger
	indicator *loading.Indicator
	observers []Observer

	ctx        context.Context
	cancelAll  context.CancelFunc
	cancelLoad context.CancelFunc
	generation uint64
	closed     bool

	state       State
	quiz        *Quiz
	loadingText string
	lastErr     error
}

// NewController constructs an idle controller.
func NewController(opts Options) (*Controller, error) {
	if opts.Source == nil {
		return nil, errors.New("quiz: source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		source:    opts.Source,
		rng:       opts.Rand,
		logger:    logger,
		observers: append([]Observer(nil), opts.Observers...),
		ctx:       ctx,
		cancelAll: cancel,
	}
	c.indicator = loading.New(loading.Options{
		Message:   opts.LoadingMessage,
		Interval:  opts.LoadingInterval,
		NewTicker: opts.NewTicker,
		OnUpdate:  c.onLoadingText,
	})
	return c, nil
}

// AddObserver registers an observer for subsequent notifications.
func (c *Controller) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, observer)
}

// StartNewQuiz discards the current quiz, enters Loading and fetches a new
// batch in the background. It returns ErrLoadInProgress while a fetch is
// outstanding.
func (c *Controller) StartNewQuiz() error {
	gen, loadCtx, err := c.begin(c.ctx)
	if err != nil {
		return err
	}
	go func() {
		records, err := c.source.Fetch(loadCtx)
		c.finish(gen, records, err)
	}()
	return nil
}

// Load is the blocking form of StartNewQuiz. It returns the load failure,
// if any, after the controller has entered Loaded or Error.
func (c *Controller) Load(ctx context.Context) error {
	gen, loadCtx, err := c.begin(ctx)
	if err != nil {
		return err
	}
	records, err := c.source.Fetch(loadCtx)
	return c.finish(gen, records, err)
}

func (c *Controller) begin(parent context.Context) (uint64, context.Context, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0, nil, ErrClosed
	}
	if c.state == StateLoading {
		c.mu.Unlock()
		return 0, nil, ErrLoadInProgress
	}
	c.generation++
	gen := c.generation
	loadCtx, cancel := context.WithCancel(parent)
	c.cancelLoad = cancel
	c.state = StateLoading
	c.quiz = nil
	c.lastErr = nil
	c.indicator.Start()
	c.loadingText = c.indicator.Text()
	text := c.loadingText
	observers := c.observersLocked()
	c.mu.Unlock()

	c.logger.Debug("quiz load started", zap.Uint64("generation", gen))
	for _, observer := range observers {
		observer.OnLoadStart(text)
	}
	return gen, loadCtx, nil
}

// finish applies a fetch outcome unless a newer load or Close superseded it.
func (c *Controller) finish(gen uint64, records []opentdb.Record, fetchErr error) error {
	c.mu.Lock()
	if gen != c.generation || c.state != StateLoading {
		c.mu.Unlock()
		c.logger.Debug("discarding stale quiz load", zap.Uint64("generation", gen))
		if fetchErr != nil {
			return fetchErr
		}
		return context.Canceled
	}
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.indicator.Stop()
	c.loadingText = ""

	err := fetchErr
	var built *Quiz
	if err == nil {
		built, err = Build(records, c.rng)
	}
	if err != nil {
		c.state = StateError
		c.lastErr = err
	} else {
		c.state = StateLoaded
		c.quiz = built
	}
	var view QuizView
	if built != nil {
		view = built.View()
	}
	observers := c.observersLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("quiz load failed", zap.Uint64("generation", gen), zap.Error(err))
		for _, observer := range observers {
			observer.OnLoadFailed(err)
		}
		return err
	}
	c.logger.Info("quiz loaded",
		zap.String("quiz_id", view.ID),
		zap.Int("questions", len(view.Questions)),
	)
	for _, observer := range observers {
		observer.OnLoaded(view)
	}
	return nil
}

// SelectAnswer records a choice on the loaded quiz.
func (c *Controller) SelectAnswer(questionID, answerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoaded || c.quiz == nil {
		return ErrNotLoaded
	}
	return c.quiz.Select(questionID, answerID)
}

// SubmitQuiz grades the loaded quiz once and returns the total.
func (c *Controller) SubmitQuiz() (Result, error) {
	c.mu.Lock()
	if c.state != StateLoaded || c.quiz == nil {
		c.mu.Unlock()
		return Result{}, ErrNotLoaded
	}
	if c.quiz.Graded() {
		c.mu.Unlock()
		return Result{}, ErrAlreadySubmitted
	}
	c.quiz.Grade()
	result := c.quiz.Result()
	observers := c.observersLocked()
	c.mu.Unlock()

	c.logger.Info("quiz graded",
		zap.String("quiz_id", result.QuizID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)
	for _, observer := range observers {
		observer.OnGraded(result)
	}
	return result, nil
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a consistent copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := Snapshot{State: c.state, Err: c.lastErr}
	switch c.state {
	case StateLoading:
		snapshot.LoadingText = c.loadingText
	case StateError:
		snapshot.Message = FailureMessage
	}
	if c.quiz != nil {
		view := c.quiz.View()
		snapshot.Quiz = &view
	}
	return snapshot
}

// LoadingActive reports whether the loading animation timer is running.
func (c *Controller) LoadingActive() bool {
	return c.indicator.Running()
}

// Close cancels any outstanding fetch, stops the loading animation and
// rejects further loads. Late fetch results are discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.cancelAll()
	c.indicator.Stop()
	if c.state == StateLoading {
		c.state = StateIdle
		c.loadingText = ""
	}
}

func (c *Controller) onLoadingText(text string) {
	c.mu.Lock()
	if c.state != StateLoading {
		c.mu.Unlock()
		return
	}
	c.loadingText = text
	observers := c.observersLocked()
	c.mu.Unlock()

	for _, observer := range observers {
		observer.OnLoadingText(text)
	}
}

func (c *Controller) observersLocked() []Observer {
	return append([]Observer(nil), c.observers...)
}
