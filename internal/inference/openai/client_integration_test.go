//go:build integration

package openai_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/learncoach/internal/inference/openai"
)

// Run with: OPENAI_API_KEY=your-key go test -tags integration -v ./internal/inference/openai
func TestClient_Integration(t *testing.T) {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY environment variable not set, skipping integration test")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(apiKey, model, 2, 2)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	notes := "Photosynthesis is the process by which green plants convert light energy into chemical energy. " +
		"It takes place in the chloroplasts, where chlorophyll absorbs sunlight. " +
		"Carbon dioxide and water are turned into glucose, and oxygen is released as a by-product."

	summary, err := client.Summarize(ctx, notes)
	require.NoError(t, err)
	assert.NotEmpty(t, summary)

	questions, err := client.GenerateQuestions(ctx, summary, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Contains(t, q.Options, q.Answer)
	}
}
