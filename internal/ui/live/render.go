package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trivia/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorCursor  = lipgloss.Color("212")
	colorNotice  = lipgloss.Color("220")
)

// renderHeader renders the title line with quiz progress.
func renderHeader(state State, noColor bool) string {
	line := "Trivia"
	if state.Quiz != nil {
		line += fmt.Sprintf(" | Answered: %d/%d", state.Quiz.Answered, len(state.Quiz.Questions))
	}
	if state.Result != nil {
		line += fmt.Sprintf(" | Score: %d/%d", state.Result.Score, state.Result.Total)
	}
	return stylize(line, noColor, lipgloss.NewStyle().Bold(true).Foreground(colorTitle))
}

// renderBody renders the phase-specific content.
func renderBody(state State, noColor bool) string {
	switch state.Phase {
	case quiz.StateIdle:
		return stylize("Press n to start a quiz.", noColor, lipgloss.NewStyle().Foreground(colorMuted))
	case quiz.StateLoading:
		return state.LoadingText
	case quiz.StateError:
		lines := []string{stylize(state.Message, noColor, lipgloss.NewStyle().Foreground(colorWrong))}
		if state.Detail != "" {
			lines = append(lines, stylize(state.Detail, noColor, lipgloss.NewStyle().Foreground(colorMuted)))
		}
		lines = append(lines, "Press n to try a new quiz.")
		return strings.Join(lines, "\n")
	}
	return renderQuestion(state, noColor)
}

// renderQuestion renders the focused question and its answers.
func renderQuestion(state State, noColor bool) string {
	question, ok := state.question()
	if !ok {
		return ""
	}
	meta := fmt.Sprintf("Question %d of %d", state.Current+1, len(state.Quiz.Questions))
	if question.Category != "" {
		meta += " | " + quiz.PlainText(question.Category)
	}
	if question.Difficulty != "" {
		meta += " | " + question.Difficulty
	}
	lines := []string{
		stylize(meta, noColor, lipgloss.NewStyle().Foreground(colorMuted)),
		"",
		stylize(quiz.PlainText(question.Prompt), noColor, lipgloss.NewStyle().Bold(true)),
		"",
	}
	for i, answer := range question.Answers {
		lines = append(lines, renderAnswer(answer, i == state.Cursor, noColor))
	}
	return strings.Join(lines, "\n")
}

// renderAnswer renders one answer line with cursor, selection and mark.
func renderAnswer(answer quiz.AnswerView, focused bool, noColor bool) string {
	cursor := "  "
	if focused {
		cursor = "> "
	}
	box := "( )"
	if answer.Selected {
		box = "(•)"
	}
	line := cursor + box + " " + quiz.PlainText(answer.Text)
	switch answer.Mark {
	case quiz.MarkCorrect:
		return stylize(line+"  ✓", noColor, lipgloss.NewStyle().Foreground(colorCorrect))
	case quiz.MarkIncorrect:
		if answer.Selected {
			return stylize(line+"  ✗", noColor, lipgloss.NewStyle().Foreground(colorWrong))
		}
	}
	if focused {
		return stylize(line, noColor, lipgloss.NewStyle().Foreground(colorCursor))
	}
	return line
}

// renderResults renders the score panel shown after submitting.
func renderResults(result quiz.Result, noColor bool) string {
	body := fmt.Sprintf("You scored %d out of %d\n\nn: new quiz   esc: review answers", result.Score, result.Total)
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	if !noColor {
		style = style.BorderForeground(colorTitle)
	}
	return style.Render(body)
}

// renderNotice renders a transient message line.
func renderNotice(state State, noColor bool) string {
	if state.Notice == "" {
		return ""
	}
	return stylize(state.Notice, noColor, lipgloss.NewStyle().Foreground(colorNotice))
}

// stylize applies optional styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor || text == "" {
		return text
	}
	return style.Render(text)
}
