package coach

import (
	"strings"

	"github.com/at-ishikawa/learncoach/internal/store"
)

// Grade compares answers with the questions in order. A missing answer counts
// as wrong. The score is the number of correct answers.
func Grade(questions []store.Question, answers []string) ([]store.QuestionOutcome, float64) {
	outcomes := make([]store.QuestionOutcome, 0, len(questions))
	var score float64
	for i, q := range questions {
		var selected string
		if i < len(answers) {
			selected = strings.TrimSpace(answers[i])
		}
		correct := selected != "" && selected == q.Answer
		if correct {
			score++
		}
		outcomes = append(outcomes, store.QuestionOutcome{
			Question:  q.Question,
			Selected:  selected,
			Correct:   q.Answer,
			IsCorrect: correct,
		})
	}
	return outcomes, score
}
