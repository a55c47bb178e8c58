// Package config loads learncoach configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"

	SummarizerLocal  = "local"
	SummarizerOpenAI = "openai"
)

type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Summarizer SummarizerConfig `mapstructure:"summarizer"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Report     ReportConfig     `mapstructure:"report"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

// DatabaseConfig selects the store backend. Path is used by sqlite3, the
// network fields only by mysql.
type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=sqlite3 mysql"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	BusyTimeoutMs   int               `mapstructure:"busy_timeout_ms" validate:"gte=0"`
	Host            string            `mapstructure:"host" validate:"required_if=Driver mysql"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database" validate:"required_if=Driver mysql"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
}

type SchedulerConfig struct {
	MaxScore     float64 `mapstructure:"max_score" validate:"gt=0"`
	UpcomingDays int     `mapstructure:"upcoming_days" validate:"gte=0"`
}

type QuizConfig struct {
	QuestionCount int `mapstructure:"question_count" validate:"gte=1,lte=50"`
}

type SummarizerConfig struct {
	Provider     string `mapstructure:"provider" validate:"oneof=local openai"`
	MaxSentences int    `mapstructure:"max_sentences" validate:"gte=1"`
}

type OpenAIConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ReportConfig struct {
	Template        string `mapstructure:"template" validate:"omitempty,file"`
	OutputDirectory string `mapstructure:"output_directory"`
}

type TracingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Output  string `mapstructure:"output"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/learncoach")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", filepath.Join("data", "learncoach.db"))
	v.SetDefault("database.busy_timeout_ms", 5000)
	v.SetDefault("database.port", 3306)
	v.SetDefault("scheduler.max_score", 5.0)
	v.SetDefault("scheduler.upcoming_days", 7)
	v.SetDefault("quiz.question_count", 5)
	v.SetDefault("summarizer.provider", SummarizerLocal)
	v.SetDefault("summarizer.max_sentences", 5)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.retry_attempts", 3)
	// Template is optional - if not specified, the embedded report template is used
	v.SetDefault("report.template", "")
	v.SetDefault("report.output_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")

	if err := v.BindEnv("database.path", "LEARNCOACH_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind LEARNCOACH_DB_PATH environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	if cfg.Summarizer.Provider == SummarizerOpenAI && cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("invalid configuration: OPENAI_API_KEY environment variable is required for the openai summarizer")
	}

	return &cfg, nil
}

// Load is a shortcut for NewConfigLoader(configFile).Load().
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
