package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Plants make food. Do they breathe? Yes! Version 1.5 is out")
	assert.Equal(t, []string{"Plants make food.", "Do they breathe?", "Yes!", "Version 1.5 is out"}, got)
}

func TestSummarizer_Summarize(t *testing.T) {
	text := "Photosynthesis converts light energy into chemical energy. " +
		"It happens in the chloroplast. " +
		"The weather was nice. " +
		"Chlorophyll absorbs light energy for photosynthesis in the chloroplast. " +
		"I had lunch."

	tests := []struct {
		name         string
		maxSentences int
		text         string
		want         string
	}{
		{
			name:         "empty text",
			maxSentences: 2,
			text:         "   ",
			want:         "",
		},
		{
			name:         "short text is returned unchanged",
			maxSentences: 5,
			text:         "  " + text + "\n",
			want:         text,
		},
		{
			name:         "keeps original order of picked sentences",
			maxSentences: 4,
			text:         text,
			want: "Photosynthesis converts light energy into chemical energy. " +
				"It happens in the chloroplast. " +
				"The weather was nice. " +
				"Chlorophyll absorbs light energy for photosynthesis in the chloroplast.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSummarizer(tt.maxSentences).Summarize(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizer_Summarize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSummarizer(1).Summarize(ctx, "One. Two.")
	assert.ErrorIs(t, err, context.Canceled)
}
