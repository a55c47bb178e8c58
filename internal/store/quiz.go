package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/at-ishikawa/learncoach/internal/apperr"
)

//go:generate mockgen -source=quiz.go -destination=../mocks/store/mock_quiz.go -package=mock_store

// QuizRepository keeps every generated quiz.
type QuizRepository interface {
	Create(ctx context.Context, topic string, questions []Question) error
	FindLatestQuestions(ctx context.Context, topic string) ([]Question, error)
	FindAll(ctx context.Context) ([]Quiz, error)
}

// DBQuizRepository implements QuizRepository on the quizzes table.
type DBQuizRepository struct {
	h *handle
}

type quizRow struct {
	ID            int64     `db:"id"`
	Topic         string    `db:"topic"`
	QuestionsJSON string    `db:"questions_json"`
	CreatedAt     time.Time `db:"created_at"`
}

// Create appends a quiz for topic.
func (r *DBQuizRepository) Create(ctx context.Context, topic string, questions []Question) error {
	if err := validateTopic(topic); err != nil {
		return err
	}
	if questions == nil {
		questions = []Question{}
	}
	body, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("json.Marshal(questions) > %w", err)
	}

	query := r.h.dialect.Insert("quizzes", []string{"topic", "questions_json", "created_at"})
	_, err = r.h.exec(ctx, "db.ExecContext(insert quizzes)", query, topic, string(body), r.h.timestamp())
	return err
}

// FindLatestQuestions returns the questions of the quiz inserted last for
// topic, or an empty slice when the topic has no quiz.
func (r *DBQuizRepository) FindLatestQuestions(ctx context.Context, topic string) ([]Question, error) {
	var body string
	err := r.h.db.GetContext(ctx, &body,
		"SELECT questions_json FROM quizzes WHERE topic = ? ORDER BY id DESC LIMIT 1", topic)
	if errors.Is(err, sql.ErrNoRows) {
		return []Question{}, nil
	}
	if err != nil {
		return nil, apperr.Storage("db.GetContext(latest quiz)", err)
	}
	return decodeQuestions(body)
}

// FindAll returns every quiz ordered by id.
func (r *DBQuizRepository) FindAll(ctx context.Context) ([]Quiz, error) {
	var rows []quizRow
	if err := r.h.db.SelectContext(ctx, &rows,
		"SELECT id, topic, questions_json, created_at FROM quizzes ORDER BY id"); err != nil {
		return nil, apperr.Storage("db.SelectContext(quizzes)", err)
	}

	quizzes := make([]Quiz, 0, len(rows))
	for _, row := range rows {
		questions, err := decodeQuestions(row.QuestionsJSON)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, Quiz{
			ID:        row.ID,
			Topic:     row.Topic,
			Questions: questions,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return quizzes, nil
}

func decodeQuestions(body string) ([]Question, error) {
	questions := []Question{}
	if err := json.Unmarshal([]byte(body), &questions); err != nil {
		return nil, apperr.Storage("json.Unmarshal(questions_json)", err)
	}
	return questions, nil
}
