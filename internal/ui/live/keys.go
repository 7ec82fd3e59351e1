package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds keys to quiz actions.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Submit  key.Binding
	New     key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev answer")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next answer")),
		Left:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev question")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next question")),
		Select:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Submit:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new quiz")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "review")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Submit, k.New, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Submit, k.New, k.Dismiss, k.Quit},
	}
}

// actionFor decodes a key press.
func (k keyMap) actionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Up):
		return ActionPrevAnswer
	case key.Matches(msg, k.Down):
		return ActionNextAnswer
	case key.Matches(msg, k.Left):
		return ActionPrevQuestion
	case key.Matches(msg, k.Right):
		return ActionNextQuestion
	case key.Matches(msg, k.Select):
		return ActionSelect
	case key.Matches(msg, k.Submit):
		return ActionSubmit
	case key.Matches(msg, k.New):
		return ActionNewQuiz
	case key.Matches(msg, k.Dismiss):
		return ActionDismiss
	}
	return ActionNone
}
