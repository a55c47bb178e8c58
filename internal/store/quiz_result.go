package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/learncoach/internal/apperr"
)

//go:generate mockgen -source=quiz_result.go -destination=../mocks/store/mock_quiz_result.go -package=mock_store

// QuizResultRepository keeps the append-only history of quiz attempts.
type QuizResultRepository interface {
	Create(ctx context.Context, result *QuizResult) (created bool, err error)
	HasLaterAttempt(ctx context.Context, topic string, id int64) (bool, error)
	FindByTopic(ctx context.Context, topic string) ([]QuizResult, error)
	FindAll(ctx context.Context) ([]QuizResult, error)
}

// DBQuizResultRepository implements QuizResultRepository on the quiz_results table.
type DBQuizResultRepository struct {
	h *handle
}

type quizResultRow struct {
	ID          int64     `db:"id"`
	AttemptID   string    `db:"attempt_id"`
	Topic       string    `db:"topic"`
	ResultsJSON string    `db:"results_json"`
	Score       float64   `db:"score"`
	TakenAt     time.Time `db:"taken_at"`
}

const quizResultSelect = "SELECT id, attempt_id, topic, results_json, score, taken_at FROM quiz_results"

// Create appends result and reports whether a new row was written. An empty
// AttemptID is replaced by a new UUID. When a row with the same AttemptID
// already exists nothing is written and result is overwritten with the stored row.
func (r *DBQuizResultRepository) Create(ctx context.Context, result *QuizResult) (bool, error) {
	if err := validateTopic(result.Topic); err != nil {
		return false, err
	}
	if result.AttemptID == "" {
		result.AttemptID = uuid.NewString()
	}
	if result.Outcomes == nil {
		result.Outcomes = []QuestionOutcome{}
	}
	body, err := json.Marshal(result.Outcomes)
	if err != nil {
		return false, fmt.Errorf("json.Marshal(outcomes) > %w", err)
	}

	takenAt := r.h.timestamp()
	query := r.h.dialect.InsertIgnoringDuplicate("quiz_results", "attempt_id",
		[]string{"attempt_id", "topic", "results_json", "score", "taken_at"})
	res, err := r.h.exec(ctx, "db.ExecContext(insert quiz_results)", query,
		result.AttemptID, result.Topic, string(body), result.Score, takenAt)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Storage("result.RowsAffected(quiz_results)", err)
	}
	if affected == 0 {
		slog.Default().Debug("quiz result already recorded", "attempt_id", result.AttemptID, "topic", result.Topic)
		stored, err := r.findByAttemptID(ctx, result.AttemptID)
		if err != nil {
			return false, err
		}
		*result = *stored
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, apperr.Storage("result.LastInsertId(quiz_results)", err)
	}
	result.ID = id
	result.TakenAt = takenAt
	return true, nil
}

// HasLaterAttempt reports whether topic has a result recorded after the row id.
func (r *DBQuizResultRepository) HasLaterAttempt(ctx context.Context, topic string, id int64) (bool, error) {
	var count int
	if err := r.h.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM quiz_results WHERE topic = ? AND id > ?", topic, id); err != nil {
		return false, apperr.Storage("db.GetContext(later quiz_results)", err)
	}
	return count > 0, nil
}

func (r *DBQuizResultRepository) findByAttemptID(ctx context.Context, attemptID string) (*QuizResult, error) {
	var row quizResultRow
	if err := r.h.db.GetContext(ctx, &row, quizResultSelect+" WHERE attempt_id = ?", attemptID); err != nil {
		return nil, apperr.Storage("db.GetContext(quiz_results by attempt)", err)
	}
	result, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByTopic returns the attempts for topic, newest first.
func (r *DBQuizResultRepository) FindByTopic(ctx context.Context, topic string) ([]QuizResult, error) {
	var rows []quizResultRow
	if err := r.h.db.SelectContext(ctx, &rows,
		quizResultSelect+" WHERE topic = ? ORDER BY taken_at DESC, id DESC", topic); err != nil {
		return nil, apperr.Storage("db.SelectContext(quiz_results by topic)", err)
	}
	return toResults(rows)
}

// FindAll returns every attempt, oldest first.
func (r *DBQuizResultRepository) FindAll(ctx context.Context) ([]QuizResult, error) {
	var rows []quizResultRow
	if err := r.h.db.SelectContext(ctx, &rows, quizResultSelect+" ORDER BY taken_at, id"); err != nil {
		return nil, apperr.Storage("db.SelectContext(quiz_results)", err)
	}
	return toResults(rows)
}

func toResults(rows []quizResultRow) ([]QuizResult, error) {
	results := make([]QuizResult, 0, len(rows))
	for _, row := range rows {
		result, err := row.toModel()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (row quizResultRow) toModel() (QuizResult, error) {
	outcomes := []QuestionOutcome{}
	if err := json.Unmarshal([]byte(row.ResultsJSON), &outcomes); err != nil {
		return QuizResult{}, apperr.Storage("json.Unmarshal(results_json)", err)
	}
	return QuizResult{
		ID:        row.ID,
		AttemptID: row.AttemptID,
		Topic:     row.Topic,
		Outcomes:  outcomes,
		Score:     row.Score,
		TakenAt:   row.TakenAt.UTC(),
	}, nil
}
