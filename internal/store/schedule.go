package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/at-ishikawa/learncoach/internal/apperr"
)

//go:generate mockgen -source=schedule.go -destination=../mocks/store/mock_schedule.go -package=mock_store

// ScheduleRepository persists one review schedule per topic.
type ScheduleRepository interface {
	FindByTopic(ctx context.Context, topic string) (*ReviewSchedule, error)
	Upsert(ctx context.Context, schedule *ReviewSchedule) error
	FindAll(ctx context.Context) ([]ReviewSchedule, error)
}

// DBScheduleRepository implements ScheduleRepository on the review_schedules table.
type DBScheduleRepository struct {
	h *handle
}

var scheduleColumns = []string{"topic", "interval_days", "easiness", "repetition_count", "next_review_date", "last_attempt_id"}

const scheduleSelect = "SELECT id, topic, interval_days, easiness, repetition_count, next_review_date, last_attempt_id FROM review_schedules"

// FindByTopic returns the schedule for topic, or nil if the topic was never graded.
func (r *DBScheduleRepository) FindByTopic(ctx context.Context, topic string) (*ReviewSchedule, error) {
	var schedule ReviewSchedule
	err := r.h.db.GetContext(ctx, &schedule, scheduleSelect+" WHERE topic = ?", topic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("db.GetContext(review_schedules by topic)", err)
	}
	return &schedule, nil
}

// Upsert replaces the schedule of schedule.Topic or inserts it.
func (r *DBScheduleRepository) Upsert(ctx context.Context, schedule *ReviewSchedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	query := r.h.dialect.UpsertByKey("review_schedules", "topic", scheduleColumns, scheduleColumns[1:])
	_, err := r.h.exec(ctx, "db.ExecContext(upsert review_schedules)", query,
		schedule.Topic,
		schedule.IntervalDays,
		schedule.Easiness,
		schedule.RepetitionCount,
		schedule.NextReviewDate,
		schedule.LastAttemptID,
	)
	return err
}

// FindAll returns every schedule ordered by id.
func (r *DBScheduleRepository) FindAll(ctx context.Context) ([]ReviewSchedule, error) {
	schedules := []ReviewSchedule{}
	if err := r.h.db.SelectContext(ctx, &schedules, scheduleSelect+" ORDER BY id"); err != nil {
		return nil, apperr.Storage("db.SelectContext(review_schedules)", err)
	}
	return schedules, nil
}

func validateSchedule(schedule *ReviewSchedule) error {
	if err := validateTopic(schedule.Topic); err != nil {
		return err
	}
	if schedule.IntervalDays < 1 {
		return apperr.NewInputError("interval_days", fmt.Sprintf("must be at least 1, got %d", schedule.IntervalDays))
	}
	if schedule.Easiness < MinEasiness {
		return apperr.NewInputError("easiness", fmt.Sprintf("must be at least %.1f, got %g", MinEasiness, schedule.Easiness))
	}
	if schedule.RepetitionCount < 0 {
		return apperr.NewInputError("repetition_count", fmt.Sprintf("must not be negative, got %d", schedule.RepetitionCount))
	}
	if _, err := time.Parse(DateLayout, schedule.NextReviewDate); err != nil {
		return apperr.NewInputError("next_review_date", fmt.Sprintf("%q is not a %s date", schedule.NextReviewDate, DateLayout))
	}
	return nil
}
