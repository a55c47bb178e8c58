package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/learncoach/internal/database"
)

type exportDocument struct {
	SchemaVersion   int              `yaml:"schema_version"`
	ExportedAt      string           `yaml:"exported_at"`
	Notes           []Note           `yaml:"notes"`
	Quizzes         []Quiz           `yaml:"quizzes"`
	QuizResults     []QuizResult     `yaml:"quiz_results"`
	ReviewSchedules []ReviewSchedule `yaml:"review_schedules"`
}

// Export writes every record of the store to w as a YAML document.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	notes, err := s.Notes.FindAll(ctx)
	if err != nil {
		return err
	}
	quizzes, err := s.Quizzes.FindAll(ctx)
	if err != nil {
		return err
	}
	results, err := s.Results.FindAll(ctx)
	if err != nil {
		return err
	}
	schedules, err := s.Schedules.FindAll(ctx)
	if err != nil {
		return err
	}

	doc := exportDocument{
		SchemaVersion:   database.SchemaVersion,
		ExportedAt:      s.h.timestamp().Format(time.RFC3339),
		Notes:           notes,
		Quizzes:         quizzes,
		QuizResults:     results,
		ReviewSchedules: schedules,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoder.Encode(export) > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}
