// Package testutil provides shared test helpers for config files and stores.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/learncoach/internal/config"
	"github.com/at-ishikawa/learncoach/internal/store"
)

// SetupTestConfig creates a minimal config file and the report directory for testing.
// The store is a SQLite file under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "reports"), 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
report:
  output_directory: %s
`,
		filepath.Join(tmpDir, "data", "learncoach.db"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file that selects the OpenAI
// collaborators with a fake API key, for tests that only need the key to validate.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("summarizer:\n  provider: openai\nopenai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// OpenTestStore opens an in-memory store closed at the end of the test.
// A nil now uses the wall clock.
func OpenTestStore(t *testing.T, now func() time.Time) *store.Store {
	t.Helper()

	var opts []store.Option
	if now != nil {
		opts = append(opts, store.WithClock(now))
	}
	s, err := store.Open(context.Background(), config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}
