// Package plain runs the quiz as a line-oriented prompt for pipes and
// terminals without full-screen support.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"trivia/internal/quiz"
)

// QuizController is the part of quiz.Controller the plain host drives.
type QuizController interface {
	Load(ctx context.Context) error
	SelectAnswer(questionID, answerID string) error
	SubmitQuiz() (quiz.Result, error)
	Snapshot() quiz.Snapshot
}

// Options configures the plain host.
type Options struct {
	Verbose bool
}

// Host prompts for answers on in and writes the quiz to out. It also
// implements quiz.Observer to echo the loading message.
type Host struct {
	quiz.NopObserver

	ctl     QuizController
	scanner *bufio.Scanner
	opts    Options

	mu  sync.Mutex
	out io.Writer
}

// errQuit ends the session at the user's request.
var errQuit = errors.New("quit")

// NewHost builds a plain host.
func NewHost(ctl QuizController, in io.Reader, out io.Writer, opts Options) *Host {
	return &Host{ctl: ctl, scanner: bufio.NewScanner(in), out: out, opts: opts}
}

// OnLoadStart prints the loading message.
func (h *Host) OnLoadStart(text string) {
	h.printf("%s...\n", strings.TrimRight(text, "."))
}

// Run plays quizzes until the user quits, input ends or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		err := h.ctl.Load(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			h.printf("%s\n", quiz.FailureMessage)
			if h.opts.Verbose {
				h.printf("  %v\n", err)
			}
		} else if err := h.play(); err != nil {
			return quitOrErr(err)
		}
		again, err := h.afterQuiz()
		if err != nil {
			return quitOrErr(err)
		}
		if !again {
			return nil
		}
	}
}

func (h *Host) play() error {
	snapshot := h.ctl.Snapshot()
	if snapshot.Quiz == nil {
		return nil
	}
	total := len(snapshot.Quiz.Questions)
	for i, question := range snapshot.Quiz.Questions {
		h.printQuestion(i, total, question)
		for {
			line, err := h.prompt(fmt.Sprintf("Answer (%s, enter to skip, q to quit): ", letterRange(len(question.Answers))))
			if err != nil {
				return err
			}
			if line == "" {
				break
			}
			index, ok := letterIndex(line, len(question.Answers))
			if !ok {
				h.printf("Please type a letter between %s.\n", letterRange(len(question.Answers)))
				continue
			}
			if err := h.ctl.SelectAnswer(question.ID, question.Answers[index].ID); err != nil {
				return err
			}
			break
		}
	}
	result, err := h.ctl.SubmitQuiz()
	if err != nil {
		return err
	}
	h.printf("\nYou scored %d out of %d\n", result.Score, result.Total)
	return nil
}

// afterQuiz offers a new quiz or a review. It reports whether to continue.
func (h *Host) afterQuiz() (bool, error) {
	for {
		graded := h.ctl.Snapshot().Quiz != nil
		question := "Press n for a new quiz or q to quit: "
		if graded {
			question = "Press n for a new quiz, r to review answers or q to quit: "
		}
		line, err := h.prompt(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "n":
			return true, nil
		case "r":
			if graded {
				h.review()
			}
		}
	}
}

func (h *Host) review() {
	snapshot := h.ctl.Snapshot()
	if snapshot.Quiz == nil {
		return
	}
	for i, question := range snapshot.Quiz.Questions {
		mark := "✗"
		if question.Score != nil && *question.Score > 0 {
			mark = "✓"
		}
		h.printf("%s %d. %s\n", mark, i+1, quiz.PlainText(question.Prompt))
		for j, answer := range question.Answers {
			note := ""
			if answer.Correct != nil && *answer.Correct {
				note = "  (correct)"
			}
			if answer.Selected {
				note += "  <- your answer"
			}
			h.printf("     %c) %s%s\n", 'A'+j, quiz.PlainText(answer.Text), note)
		}
	}
}

func (h *Host) printQuestion(index, total int, question quiz.QuestionView) {
	meta := []string{}
	if question.Category != "" {
		meta = append(meta, quiz.PlainText(question.Category))
	}
	if question.Difficulty != "" {
		meta = append(meta, question.Difficulty)
	}
	header := fmt.Sprintf("\nQuestion %d of %d", index+1, total)
	if len(meta) > 0 {
		header += " [" + strings.Join(meta, ", ") + "]"
	}
	h.printf("%s\n%s\n", header, quiz.PlainText(question.Prompt))
	for i, answer := range question.Answers {
		h.printf("  %c) %s\n", 'A'+i, quiz.PlainText(answer.Text))
	}
}

// prompt writes a question and returns the trimmed reply. End of input and
// "q" both return errQuit.
func (h *Host) prompt(text string) (string, error) {
	h.printf("%s", text)
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		h.printf("\n")
		return "", errQuit
	}
	line := strings.TrimSpace(h.scanner.Text())
	if strings.EqualFold(line, "q") {
		return "", errQuit
	}
	return line, nil
}

func (h *Host) printf(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = fmt.Fprintf(h.out, format, args...)
}

func letterIndex(line string, count int) (int, bool) {
	if len(line) != 1 {
		return 0, false
	}
	index := int(strings.ToUpper(line)[0]) - 'A'
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}

func letterRange(count int) string {
	if count <= 1 {
		return "A"
	}
	return fmt.Sprintf("A-%c", 'A'+count-1)
}

func quitOrErr(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
