package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/at-ishikawa/learncoach/internal/apperr"
	"github.com/at-ishikawa/learncoach/internal/coach"
	"github.com/at-ishikawa/learncoach/internal/store"
)

//go:generate mockgen -source=quiz.go -destination=../mocks/cli/mock_recorder.go -package=mock_cli

// AttemptRecorder stores a finished attempt.
type AttemptRecorder interface {
	RecordQuizAttempt(ctx context.Context, attempt coach.Attempt) (*coach.AttemptResult, error)
}

// QuizCLI asks the questions of one quiz in order and records the attempt
// once every question is answered. An interrupted quiz records nothing.
type QuizCLI struct {
	*InteractiveQuizCLI
	recorder  AttemptRecorder
	topic     string
	questions []store.Question
	answers   []string
	result    *coach.AttemptResult
}

// NewQuizCLI creates a quiz session for topic. Nil stdin and stdout use the terminal.
func NewQuizCLI(recorder AttemptRecorder, topic string, questions []store.Question, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return &QuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		recorder:           recorder,
		topic:              topic,
		questions:          questions,
	}
}

// Result returns the recorded attempt, or nil before the quiz is finished.
func (r *QuizCLI) Result() *coach.AttemptResult {
	return r.result
}

func (r *QuizCLI) Session(ctx context.Context) error {
	if len(r.answers) >= len(r.questions) {
		return r.finish(ctx)
	}

	index := len(r.answers)
	question := r.questions[index]
	_, _ = fmt.Fprint(r.stdoutWriter, FormatQuestion(index+1, len(r.questions), question))
	_, _ = r.bold.Fprint(r.stdoutWriter, "Your answer: ")

	line, err := r.stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("error reading input: %w", err)
	}

	selected, ok := parseAnswer(line, question.Options)
	if !ok {
		_, _ = r.yellow.Fprintf(r.stdoutWriter, "Enter a number between 1 and %d or the option text.\n\n", len(question.Options))
		return nil
	}
	r.answers = append(r.answers, selected)

	if selected == question.Answer {
		_, _ = fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = r.green.Fprintln(r.stdoutWriter, "It's correct.")
	} else {
		_, _ = fmt.Fprint(r.stdoutWriter, "❌ ")
		_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. The answer is \"%s\".\n", r.italic.Sprint(question.Answer))
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *QuizCLI) finish(ctx context.Context) error {
	outcomes, score := coach.Grade(r.questions, r.answers)
	result, err := r.recorder.RecordQuizAttempt(ctx, coach.Attempt{
		Topic:    r.topic,
		Outcomes: outcomes,
		Score:    score,
		MaxScore: float64(len(r.questions)),
	})
	r.result = result

	var seqErr *apperr.SequencingError
	switch {
	case errors.As(err, &seqErr):
		_, _ = r.yellow.Fprintf(r.stdoutWriter, "Your result was saved, but the next review could not be scheduled: %v\n", seqErr.Err)
		return err
	case err != nil:
		return fmt.Errorf("recorder.RecordQuizAttempt() > %w", err)
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "Score: %s\n", r.bold.Sprintf("%g/%d", score, len(r.questions)))
	if result.Schedule != nil {
		_, _ = fmt.Fprintf(r.stdoutWriter, "Next review of %s: %s (in %d days)\n",
			r.bold.Sprint(r.topic), result.Schedule.NextReviewDate, result.Schedule.IntervalDays)
	}
	return errEnd
}

// FormatQuestion formats a question with numbered options for display.
func FormatQuestion(number, total int, question store.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q%d/%d. %s\n", number, total, question.Question)
	for i, option := range question.Options {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, option)
	}
	return b.String()
}

// parseAnswer accepts an option number or the option text, case-insensitively.
func parseAnswer(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return "", false
		}
		return options[n-1], true
	}
	for _, option := range options {
		if strings.EqualFold(option, input) {
			return option, true
		}
	}
	return "", false
}
