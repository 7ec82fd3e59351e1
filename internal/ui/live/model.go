package live

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/quiz"
)

// QuizController is the part of quiz.Controller the live UI drives.
type QuizController interface {
	StartNewQuiz() error
	SelectAnswer(questionID, answerID string) error
	SubmitQuiz() (quiz.Result, error)
	Snapshot() quiz.Snapshot
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
	Verbose bool
	// AutoStart requests a quiz as soon as the program starts.
	AutoStart bool
}

// Model renders the quiz using Bubble Tea.
type Model struct {
	state     State
	ctl       QuizController
	events    <-chan Event
	done      <-chan struct{}
	keys      keyMap
	help      help.Model
	table     table.Model
	noColor   bool
	verbose   bool
	autoStart bool
}

// NewModel constructs a live UI model for an event stream.
func NewModel(ctl QuizController, events <-chan Event, done <-chan struct{}, opts Options) Model {
	t := table.New(
		table.WithColumns(progressColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		ctl:       ctl,
		events:    events,
		done:      done,
		keys:      defaultKeyMap(),
		help:      help.New(),
		table:     t,
		noColor:   opts.NoColor,
		verbose:   opts.Verbose,
		autoStart: opts.AutoStart,
	}
	if ctl != nil {
		m.state = Sync(m.state, ctl.Snapshot())
	}
	return m.refresh()
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init waits for the first event and optionally starts a quiz.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.events, m.done)}
	if m.autoStart {
		cmds = append(cmds, startQuiz(m.ctl))
	}
	return tea.Batch(cmds...)
}

// Update consumes controller events and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case EventMsg:
		m.state = Reduce(m.state, typed.Event)
		return m.refresh(), waitForEvent(m.events, m.done)
	case actionErrMsg:
		m.state.Notice = noticeFor(typed.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleAction(m.keys.actionFor(typed))
	}
	return m, nil
}

func (m Model) handleAction(action Action) (tea.Model, tea.Cmd) {
	m.state.Notice = ""
	switch action {
	case ActionQuit:
		return m, tea.Quit
	case ActionNewQuiz:
		return m, startQuiz(m.ctl)
	case ActionSelect:
		question, okQuestion := m.state.question()
		answer, okAnswer := m.state.answer()
		if m.state.Phase != quiz.StateLoaded || !okQuestion || !okAnswer || m.state.ShowResults {
			return m, nil
		}
		if err := m.ctl.SelectAnswer(question.ID, answer.ID); err != nil {
			m.state.Notice = noticeFor(err)
			return m.refresh(), nil
		}
		m.state = Sync(m.state, m.ctl.Snapshot())
	case ActionSubmit:
		if m.state.Phase != quiz.StateLoaded {
			return m, nil
		}
		result, err := m.ctl.SubmitQuiz()
		if err != nil {
			m.state.Notice = noticeFor(err)
			return m.refresh(), nil
		}
		m.state = Sync(m.state, m.ctl.Snapshot())
		m.state = Reduce(m.state, Event{Kind: EventGraded, Result: result})
	default:
		m.state = Move(m.state, action)
	}
	return m.refresh(), nil
}

// refresh copies state into the overview table.
func (m Model) refresh() Model {
	if !m.verbose {
		m.state.Detail = ""
	}
	rows := rowsForState(m.state)
	m.table.SetRows(rows)
	m.table.SetHeight(max(len(rows), 1))
	m.table.SetCursor(m.state.Current)
	return m
}

// View renders the live UI.
func (m Model) View() string {
	sections := []string{renderHeader(m.state, m.noColor), ""}
	switch {
	case m.state.ShowResults && m.state.Result != nil:
		sections = append(sections, renderResults(*m.state.Result, m.noColor))
	case m.state.Phase == quiz.StateLoaded:
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			m.table.View(),
			lipgloss.NewStyle().PaddingLeft(3).Render(renderBody(m.state, m.noColor)),
		))
	default:
		sections = append(sections, renderBody(m.state, m.noColor))
	}
	if notice := renderNotice(m.state, m.noColor); notice != "" {
		sections = append(sections, "", notice)
	}
	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// actionErrMsg reports a rejected background action.
type actionErrMsg struct {
	err error
}

// waitForEvent blocks until a UI event is available or the host closes.
func waitForEvent(events <-chan Event, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		select {
		case <-done:
			return tea.Quit()
		default:
		}
		select {
		case event := <-events:
			return EventMsg{Event: event}
		case <-done:
			return tea.Quit()
		}
	}
}

// startQuiz asks the controller for a new quiz.
func startQuiz(ctl QuizController) tea.Cmd {
	return func() tea.Msg {
		if err := ctl.StartNewQuiz(); err != nil {
			return actionErrMsg{err: err}
		}
		return nil
	}
}

// noticeFor turns a rejected action into a short message.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, quiz.ErrLoadInProgress):
		return "A quiz is already loading."
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		return "This quiz was already submitted. Press n for a new one."
	case errors.Is(err, quiz.ErrLocked):
		return "Answers are locked after submitting."
	case errors.Is(err, quiz.ErrNotLoaded):
		return "No quiz is loaded."
	default:
		return err.Error()
	}
}
