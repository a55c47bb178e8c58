// Package inference defines the text collaborators the coach relies on:
// summarizing notes and generating multiple-choice questions from them.
package inference

import (
	"context"
	"strings"

	"github.com/at-ishikawa/learncoach/internal/store"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Summarizer condenses study notes.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// QuestionGenerator writes multiple-choice questions about a text.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, text string, count int) ([]store.Question, error)
}

const (
	DefaultMaxRetryAttempts = 3
	DefaultMaxSentences     = 5
	DefaultQuestionCount    = 5
)

// ValidQuestions drops questions without text, without options, or whose
// options do not contain the answer exactly once, and trims surrounding
// whitespace. At most count questions are returned when count > 0.
func ValidQuestions(questions []store.Question, count int) []store.Question {
	valid := make([]store.Question, 0, len(questions))
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		q.Question = strings.TrimSpace(q.Question)
		q.Answer = strings.TrimSpace(q.Answer)
		if q.Question == "" || q.Answer == "" || seen[q.Question] {
			continue
		}

		options := make([]string, 0, len(q.Options))
		matches := 0
		for _, option := range q.Options {
			option = strings.TrimSpace(option)
			if option == "" {
				continue
			}
			if option == q.Answer {
				matches++
			}
			options = append(options, option)
		}
		if matches != 1 || len(options) < 2 {
			continue
		}
		q.Options = options

		seen[q.Question] = true
		valid = append(valid, q)
		if count > 0 && len(valid) == count {
			break
		}
	}
	return valid
}
