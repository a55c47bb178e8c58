// Package scheduler implements the SM-2 derived review scheduling.
package scheduler

import (
	"math"
	"time"

	"github.com/at-ishikawa/learncoach/internal/store"
)

const (
	DefaultIntervalDays = 1
	DefaultEasiness     = 2.5
	MinEasiness         = store.MinEasiness
	DefaultMaxScore     = 5.0

	// PassingQuality is the lowest quality that counts as a successful recall.
	PassingQuality = 3
)

// State is the schedule of one topic after a graded attempt.
type State struct {
	IntervalDays    int
	Easiness        float64
	RepetitionCount int
	NextReviewDate  string
}

// StateOf returns the scheduling state stored in schedule, or nil for a nil schedule.
func StateOf(schedule *store.ReviewSchedule) *State {
	if schedule == nil {
		return nil
	}
	return &State{
		IntervalDays:    schedule.IntervalDays,
		Easiness:        schedule.Easiness,
		RepetitionCount: schedule.RepetitionCount,
		NextReviewDate:  schedule.NextReviewDate,
	}
}

// Quality maps a raw score to the 0..5 SM-2 grade. Scores are clamped to
// [0, maxScore] and halves round to even. A non-positive maxScore means DefaultMaxScore.
func Quality(score, maxScore float64) int {
	if maxScore <= 0 || math.IsNaN(maxScore) {
		maxScore = DefaultMaxScore
	}
	if math.IsNaN(score) || score < 0 {
		score = 0
	}
	score = math.Min(score, maxScore)
	return int(math.RoundToEven(score / maxScore * 5))
}

// NextState computes the schedule that follows prior after an attempt scored
// score out of maxScore. A nil prior starts from the defaults.
//
// The interval for the third and later repetitions is the prior interval times
// the prior easiness; easiness is updated afterwards.
func NextState(prior *State, score, maxScore float64, today time.Time) State {
	interval := DefaultIntervalDays
	easiness := DefaultEasiness
	repetitions := 0
	if prior != nil {
		interval = prior.IntervalDays
		easiness = prior.Easiness
		repetitions = prior.RepetitionCount
	}

	q := Quality(score, maxScore)
	if q < PassingQuality {
		repetitions = 0
		interval = 1
	} else {
		repetitions++
		switch repetitions {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.RoundToEven(float64(interval) * easiness))
		}
	}

	missed := float64(5 - q)
	easiness = math.Max(MinEasiness, easiness+(0.1-missed*(0.08+missed*0.02)))

	return State{
		IntervalDays:    max(1, interval),
		Easiness:        easiness,
		RepetitionCount: repetitions,
		NextReviewDate:  AddDays(today, max(1, interval)),
	}
}

// AddDays returns the UTC calendar date days after today, formatted as store.DateLayout.
func AddDays(today time.Time, days int) string {
	return calendarDate(today).AddDate(0, 0, days).Format(store.DateLayout)
}

// calendarDate drops the time of day of t in UTC.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
