package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/learncoach/internal/store"
)

func TestValidQuestions(t *testing.T) {
	good := store.Question{Question: "Which organelle makes ATP?", Options: []string{"Nucleus", "Mitochondria"}, Answer: "Mitochondria"}

	tests := []struct {
		name      string
		questions []store.Question
		count     int
		want      []store.Question
	}{
		{
			name:      "keeps well formed questions",
			questions: []store.Question{good},
			want:      []store.Question{good},
		},
		{
			name: "trims whitespace",
			questions: []store.Question{
				{Question: "  Which organelle makes ATP? ", Options: []string{" Nucleus", "Mitochondria ", " "}, Answer: "Mitochondria"},
			},
			want: []store.Question{good},
		},
		{
			name: "drops answer missing from options",
			questions: []store.Question{
				{Question: "q", Options: []string{"a", "b"}, Answer: "c"},
			},
			want: []store.Question{},
		},
		{
			name: "drops answer listed twice",
			questions: []store.Question{
				{Question: "q", Options: []string{"a", "a", "b"}, Answer: "a"},
			},
			want: []store.Question{},
		},
		{
			name: "drops single option and blank question",
			questions: []store.Question{
				{Question: "q", Options: []string{"a"}, Answer: "a"},
				{Question: " ", Options: []string{"a", "b"}, Answer: "a"},
			},
			want: []store.Question{},
		},
		{
			name:      "drops duplicates and honors count",
			questions: []store.Question{good, good, {Question: "q2", Options: []string{"x", "y"}, Answer: "y"}, {Question: "q3", Options: []string{"x", "y"}, Answer: "x"}},
			count:     2,
			want:      []store.Question{good, {Question: "q2", Options: []string{"x", "y"}, Answer: "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidQuestions(tt.questions, tt.count))
		})
	}
}
