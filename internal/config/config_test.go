package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:        DriverSQLite,
			Path:          filepath.Join("data", "learncoach.db"),
			BusyTimeoutMs: 5000,
			Port:          3306,
		},
		Scheduler: SchedulerConfig{
			MaxScore:     5.0,
			UpcomingDays: 7,
		},
		Quiz: QuizConfig{
			QuestionCount: 5,
		},
		Summarizer: SummarizerConfig{
			Provider:     SummarizerLocal,
			MaxSentences: 5,
		},
		OpenAI: OpenAIConfig{
			Model:         "gpt-4o-mini",
			RetryAttempts: 3,
		},
		Report: ReportConfig{
			OutputDirectory: filepath.Join("outputs", "reports"),
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `database:
  path: custom/coach.db
scheduler:
  max_score: 10
  upcoming_days: 3
quiz:
  question_count: 8
summarizer:
  max_sentences: 2
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Path = "custom/coach.db"
				cfg.Scheduler.MaxScore = 10
				cfg.Scheduler.UpcomingDays = 3
				cfg.Quiz.QuestionCount = 8
				cfg.Summarizer.MaxSentences = 2
				return cfg
			},
		},
		{
			name: "explicit config file path with mysql driver",
			configContent: `database:
  driver: mysql
  host: db.example.com
  port: 3307
  database: coach
  username: admin
`,
			useExplicitPath: true,
			env:             map[string]string{"DB_PASSWORD": "secret"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Driver = DriverMySQL
				cfg.Database.Host = "db.example.com"
				cfg.Database.Port = 3307
				cfg.Database.Database = "coach"
				cfg.Database.Username = "admin"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name:          "database path from environment",
			configContent: "",
			env:           map[string]string{"LEARNCOACH_DB_PATH": "/tmp/env.db"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Path = "/tmp/env.db"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  path: custom
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown driver",
			configContent: `database:
  driver: postgres
`,
			wantErrorContains: []string{"invalid configuration", "driver"},
		},
		{
			name: "mysql without host",
			configContent: `database:
  driver: mysql
  database: coach
`,
			wantErrorContains: []string{"invalid configuration", "host"},
		},
		{
			name: "non positive max score",
			configContent: `scheduler:
  max_score: 0
`,
			wantErrorContains: []string{"invalid configuration", "max_score"},
		},
		{
			name: "missing report template file",
			configContent: `report:
  template: /does/not/exist.md.go.tmpl
`,
			wantErrorContains: []string{"report.template must be an existing and readable file"},
		},
		{
			name: "openai summarizer requires api key",
			configContent: `summarizer:
  provider: openai
`,
			wantErrorContains: []string{"OPENAI_API_KEY"},
		},
		{
			name: "openai summarizer with api key",
			configContent: `summarizer:
  provider: openai
`,
			env: map[string]string{"OPENAI_API_KEY": "sk-test"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Summarizer.Provider = SummarizerOpenAI
				cfg.OpenAI.APIKey = "sk-test"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"LEARNCOACH_DB_PATH", "DB_PASSWORD", "OPENAI_API_KEY", "OPENAI_MODEL"} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()
			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_ReportTemplate(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := filepath.Join(tempDir, "report.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("# {{ .Title }}"), 0644))

	configPath := filepath.Join(tempDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("report:\n  template: "+templatePath+"\n"), 0644))

	got, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, templatePath, got.Report.Template)
}
