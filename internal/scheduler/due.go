package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/at-ishikawa/learncoach/internal/store"
)

// DaysUntil returns the whole days from today to date, negative when date is
// in the past. ok is false when date is not a valid date.
func DaysUntil(date string, today time.Time) (days int, ok bool) {
	parsed, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return 0, false
	}
	return int(parsed.Sub(calendarDate(today)).Hours() / 24), true
}

// DueWithin returns the schedules whose review date is at most days away,
// overdue ones included, ordered by review date and then topic. Schedules
// without a usable date are left out.
func DueWithin(schedules []store.ReviewSchedule, days int, today time.Time) []store.ReviewSchedule {
	due := make([]store.ReviewSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.NextReviewDate == "" {
			continue
		}
		delta, ok := DaysUntil(schedule.NextReviewDate, today)
		if !ok {
			slog.Default().Warn("skipping schedule with malformed review date",
				"topic", schedule.Topic, "next_review_date", schedule.NextReviewDate)
			continue
		}
		if delta <= days {
			due = append(due, schedule)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].NextReviewDate != due[j].NextReviewDate {
			return due[i].NextReviewDate < due[j].NextReviewDate
		}
		return due[i].Topic < due[j].Topic
	})
	return due
}

// Scheduler answers schedule queries against the stored schedules.
type Scheduler struct {
	schedules store.ScheduleRepository
	now       func() time.Time
}

// New returns a Scheduler reading from schedules. A nil now uses time.Now.
func New(schedules store.ScheduleRepository, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{schedules: schedules, now: now}
}

// Upcoming returns the topics due for review within days from today.
func (s *Scheduler) Upcoming(ctx context.Context, days int) ([]store.ReviewSchedule, error) {
	schedules, err := s.schedules.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return DueWithin(schedules, days, s.now()), nil
}

// Next computes the state following prior for a score without persisting it.
func (s *Scheduler) Next(prior *store.ReviewSchedule, score, maxScore float64) State {
	return NextState(StateOf(prior), score, maxScore, s.now())
}
