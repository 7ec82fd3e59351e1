package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/quiz"
)

// progressColumns returns the question overview columns.
func progressColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Status", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts the quiz into overview rows.
func rowsForState(state State) []table.Row {
	if state.Quiz == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(state.Quiz.Questions))
	for i, question := range state.Quiz.Questions {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), questionStatus(question)})
	}
	return rows
}

// questionStatus summarizes one question for the overview.
func questionStatus(question quiz.QuestionView) string {
	switch {
	case question.Graded && question.Score != nil && *question.Score > 0:
		return "correct"
	case question.Graded && question.SelectedID == "":
		return "skipped"
	case question.Graded:
		return "wrong"
	case question.SelectedID != "":
		return "answered"
	default:
		return "-"
	}
}
