package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/learncoach/internal/config"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestSetupTestConfig(t *testing.T) {
	unsetEnv(t, "LEARNCOACH_DB_PATH")
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(tmpDir, "reports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg, err := config.Load(got)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, filepath.Join(tmpDir, "data", "learncoach.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(tmpDir, "reports"), cfg.Report.OutputDirectory)
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	unsetEnv(t, "OPENAI_API_KEY", "OPENAI_MODEL")
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir)

	cfg, err := config.Load(got)
	require.NoError(t, err)
	assert.Equal(t, config.SummarizerOpenAI, cfg.Summarizer.Provider)
	assert.Equal(t, "fake-key-for-testing", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestOpenTestStore(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := OpenTestStore(t, func() time.Time { return now })

	ctx := context.Background()
	require.NoError(t, s.Notes.Upsert(ctx, "Cells", "raw", "summary"))
	note, err := s.Notes.FindByTopic(ctx, "Cells")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.True(t, now.Equal(note.LastUpdated))
}
