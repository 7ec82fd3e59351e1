package live

import (
	"context"
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"trivia/internal/quiz"
)

var _ quiz.Observer = (*Host)(nil)

// Host runs the live UI and implements quiz.Observer.
type Host struct {
	ctl       QuizController
	opts      Options
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewHost builds a host for ctl. Register it with the controller as an
// observer before calling Run.
func NewHost(ctl QuizController, opts Options) *Host {
	return &Host{
		ctl:    ctl,
		opts:   opts,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	defer h.Close()
	model := NewModel(h.ctl, h.events, h.done, h.opts)
	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		options = append(options, tea.WithInput(in))
	}
	if out != nil {
		options = append(options, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(model, options...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Close stops event delivery and ends a running program.
func (h *Host) Close() {
	if h == nil {
		return
	}
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// OnLoadStart forwards load start events to the UI.
func (h *Host) OnLoadStart(text string) {
	h.send(Event{Kind: EventLoadStart, Text: text})
}

// OnLoadingText forwards loading animation frames to the UI.
func (h *Host) OnLoadingText(text string) {
	h.send(Event{Kind: EventLoadingText, Text: text})
}

// OnLoaded forwards a built quiz to the UI.
func (h *Host) OnLoaded(view quiz.QuizView) {
	h.send(Event{Kind: EventLoaded, Quiz: view})
}

// OnLoadFailed forwards a load failure to the UI.
func (h *Host) OnLoadFailed(err error) {
	h.send(Event{Kind: EventLoadFailed, Err: err})
}

// OnGraded forwards the score to the UI.
func (h *Host) OnGraded(result quiz.Result) {
	h.send(Event{Kind: EventGraded, Result: result})
}

// send delivers an event unless the host has closed. Animation frames
// are dropped when the queue is full.
func (h *Host) send(event Event) {
	if h == nil {
		return
	}
	select {
	case <-h.done:
		return
	default:
	}
	if event.Kind == EventLoadingText {
		select {
		case h.events <- event:
		default:
		}
		return
	}
	select {
	case h.events <- event:
	case <-h.done:
	}
}
