package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/learncoach/internal/store"
)

func TestGrade(t *testing.T) {
	questions := []store.Question{
		{Question: "q1", Options: []string{"a", "b"}, Answer: "a"},
		{Question: "q2", Options: []string{"a", "b"}, Answer: "b"},
		{Question: "q3", Options: []string{"a", "b"}, Answer: "a"},
	}

	outcomes, score := Grade(questions, []string{" a ", "a"})

	assert.Equal(t, 1.0, score)
	assert.Equal(t, []store.QuestionOutcome{
		{Question: "q1", Selected: "a", Correct: "a", IsCorrect: true},
		{Question: "q2", Selected: "a", Correct: "b", IsCorrect: false},
		{Question: "q3", Selected: "", Correct: "a", IsCorrect: false},
	}, outcomes)
}

func TestGrade_NoQuestions(t *testing.T) {
	outcomes, score := Grade(nil, []string{"a"})
	assert.Empty(t, outcomes)
	assert.Zero(t, score)
}
