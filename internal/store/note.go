package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/at-ishikawa/learncoach/internal/apperr"
)

//go:generate mockgen -source=note.go -destination=../mocks/store/mock_note.go -package=mock_store

// NoteRepository persists one note per topic.
type NoteRepository interface {
	Upsert(ctx context.Context, topic, rawText, summary string) error
	FindByTopic(ctx context.Context, topic string) (*Note, error)
	ListTopics(ctx context.Context) ([]string, error)
	FindAll(ctx context.Context) ([]Note, error)
}

// DBNoteRepository implements NoteRepository on the notes table.
type DBNoteRepository struct {
	h *handle
}

var noteColumns = []string{"topic", "raw_text", "summary", "last_updated"}

// Upsert inserts the note for topic or replaces its text, summary and
// last_updated in place.
func (r *DBNoteRepository) Upsert(ctx context.Context, topic, rawText, summary string) error {
	if err := validateTopic(topic); err != nil {
		return err
	}
	query := r.h.dialect.UpsertByKey("notes", "topic", noteColumns, noteColumns[1:])
	_, err := r.h.exec(ctx, "db.ExecContext(upsert notes)", query, topic, rawText, summary, r.h.timestamp())
	return err
}

// FindByTopic returns the note for topic, or nil if there is none.
func (r *DBNoteRepository) FindByTopic(ctx context.Context, topic string) (*Note, error) {
	var note Note
	err := r.h.db.GetContext(ctx, &note,
		"SELECT id, topic, raw_text, summary, last_updated FROM notes WHERE topic = ?", topic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("db.GetContext(notes by topic)", err)
	}
	note.LastUpdated = note.LastUpdated.UTC()
	return &note, nil
}

// ListTopics returns every topic with a note, most recently updated first.
func (r *DBNoteRepository) ListTopics(ctx context.Context) ([]string, error) {
	topics := []string{}
	if err := r.h.db.SelectContext(ctx, &topics,
		"SELECT topic FROM notes ORDER BY last_updated DESC, id DESC"); err != nil {
		return nil, apperr.Storage("db.SelectContext(note topics)", err)
	}
	return topics, nil
}

// FindAll returns every note ordered by id.
func (r *DBNoteRepository) FindAll(ctx context.Context) ([]Note, error) {
	notes := []Note{}
	if err := r.h.db.SelectContext(ctx, &notes,
		"SELECT id, topic, raw_text, summary, last_updated FROM notes ORDER BY id"); err != nil {
		return nil, apperr.Storage("db.SelectContext(notes)", err)
	}
	for i := range notes {
		notes[i].LastUpdated = notes[i].LastUpdated.UTC()
	}
	return notes, nil
}
