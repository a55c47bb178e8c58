package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/learncoach/internal/apperr"
	"github.com/at-ishikawa/learncoach/internal/config"
	"github.com/at-ishikawa/learncoach/internal/database"
)

// Store owns the single database handle and the repositories built on it.
type Store struct {
	db      *sqlx.DB
	dialect database.Dialect
	h       *handle

	Notes     NoteRepository
	Quizzes   QuizRepository
	Results   QuizResultRepository
	Schedules ScheduleRepository
}

// Option configures a Store.
type Option func(*handle)

// WithClock replaces the clock used for last_updated, created_at and taken_at.
func WithClock(now func() time.Time) Option {
	return func(h *handle) {
		h.now = now
	}
}

// Open opens the database described by cfg and migrates its schema.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	db, dialect, err := database.Open(cfg)
	if err != nil {
		return nil, apperr.Storage("database.Open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperr.Storage("db.PingContext", err)
	}
	if err := database.Migrate(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, apperr.Storage("database.Migrate", err)
	}
	return New(db, dialect, opts...), nil
}

// New wraps an already open handle. The schema is expected to exist.
func New(db *sqlx.DB, dialect database.Dialect, opts ...Option) *Store {
	h := &handle{
		db:      db,
		dialect: dialect,
		mu:      &sync.Mutex{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return &Store{
		db:        db,
		dialect:   dialect,
		h:         h,
		Notes:     &DBNoteRepository{h: h},
		Quizzes:   &DBQuizRepository{h: h},
		Results:   &DBQuizResultRepository{h: h},
		Schedules: &DBScheduleRepository{h: h},
	}
}

// Close releases the handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("db.Close() > %w", err)
	}
	return nil
}

// CheckIntegrity runs the backend's integrity check. It only reads, and it
// reports every failure, including an unreachable database, as ok == false.
func (s *Store) CheckIntegrity(ctx context.Context) (bool, string) {
	if s.dialect == database.DialectMySQL {
		return s.checkMySQLTables(ctx)
	}

	var lines []string
	if err := s.db.SelectContext(ctx, &lines, "PRAGMA integrity_check"); err != nil {
		return false, fmt.Sprintf("integrity check failed: %v", err)
	}
	if len(lines) == 1 && lines[0] == "ok" {
		return true, "ok"
	}
	if len(lines) == 0 {
		return false, "integrity check returned no result"
	}
	return false, strings.Join(lines, "; ")
}

func (s *Store) checkMySQLTables(ctx context.Context) (bool, string) {
	rows, err := s.db.QueryContext(ctx, "CHECK TABLE "+strings.Join(database.Tables, ", "))
	if err != nil {
		return false, fmt.Sprintf("integrity check failed: %v", err)
	}
	defer rows.Close()

	ok := true
	var problems []string
	for rows.Next() {
		var table, op, msgType, msgText string
		if err := rows.Scan(&table, &op, &msgType, &msgText); err != nil {
			return false, fmt.Sprintf("integrity check failed: %v", err)
		}
		if msgType == "status" && (msgText == "OK" || msgText == "Table is already up to date") {
			continue
		}
		if msgType == "error" || msgType == "status" {
			ok = false
		}
		problems = append(problems, fmt.Sprintf("%s: %s %s", table, msgType, msgText))
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Sprintf("integrity check failed: %v", err)
	}
	if len(problems) == 0 {
		return true, "ok"
	}
	return ok, strings.Join(problems, "; ")
}

// handle is shared by the repositories of one Store. Every write holds mu so
// that writes reach the database one at a time.
type handle struct {
	db      *sqlx.DB
	dialect database.Dialect
	mu      *sync.Mutex
	now     func() time.Time
}

func (h *handle) exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage(op, err)
	}
	return result, nil
}

func (h *handle) timestamp() time.Time {
	return h.now().UTC()
}

func validateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return apperr.NewInputError("topic", "must not be empty")
	}
	return nil
}
