package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)

func TestQuality(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		maxScore float64
		want     int
	}{
		{name: "perfect", score: 5, maxScore: 5, want: 5},
		{name: "zero", score: 0, maxScore: 5, want: 0},
		{name: "three of five", score: 3, maxScore: 5, want: 3},
		{name: "scaled max score", score: 8, maxScore: 10, want: 4},
		{name: "half rounds to even down", score: 1, maxScore: 2, want: 2},
		{name: "half rounds to even up", score: 3.5, maxScore: 5, want: 4},
		{name: "above max is clamped", score: 9, maxScore: 5, want: 5},
		{name: "negative is clamped", score: -2, maxScore: 5, want: 0},
		{name: "non positive max falls back to 5", score: 4, maxScore: 0, want: 4},
		{name: "NaN score", score: math.NaN(), maxScore: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.score, tt.maxScore))
		})
	}
}

func TestNextState_NoPriorPerfectScore(t *testing.T) {
	got := NextState(nil, 5, 5, today)

	assert.Equal(t, 1, got.IntervalDays)
	assert.Equal(t, 1, got.RepetitionCount)
	assert.Greater(t, got.Easiness, DefaultEasiness)
	assert.InDelta(t, 2.6, got.Easiness, 1e-9)
	assert.Equal(t, "2024-03-02", got.NextReviewDate)
}

func TestNextState_Photosynthesis(t *testing.T) {
	first := NextState(nil, 3, 5, today)
	assert.Equal(t, 3, Quality(3, 5))
	assert.Equal(t, 1, first.RepetitionCount)
	assert.Equal(t, 1, first.IntervalDays)
	assert.InDelta(t, 2.36, first.Easiness, 1e-9)
	assert.Equal(t, "2024-03-02", first.NextReviewDate)

	second := NextState(&first, 5, 5, today)
	assert.Equal(t, 2, second.RepetitionCount)
	assert.Equal(t, 6, second.IntervalDays)
	assert.InDelta(t, 2.46, second.Easiness, 1e-9)
	assert.Equal(t, "2024-03-07", second.NextReviewDate)
}

func TestNextState_IntervalGrowth(t *testing.T) {
	var state *State
	var intervals []int
	for i := 0; i < 5; i++ {
		prior := state
		next := NextState(prior, 4, 5, today)
		if prior != nil && prior.RepetitionCount >= 2 {
			assert.Equal(t, int(math.RoundToEven(float64(prior.IntervalDays)*prior.Easiness)), next.IntervalDays)
		}
		intervals = append(intervals, next.IntervalDays)
		assert.Equal(t, i+1, next.RepetitionCount)
		state = &next
	}

	// Quality 4 leaves easiness at 2.5: 1, 6, round(6*2.5)=15, round(15*2.5)=37.5->38, round(38*2.5)=95.
	assert.Equal(t, []int{1, 6, 15, 38, 95}, intervals)
	for i := 1; i < len(intervals); i++ {
		assert.GreaterOrEqual(t, intervals[i], intervals[i-1])
	}
}

func TestNextState_UsesPriorEasinessForInterval(t *testing.T) {
	prior := &State{IntervalDays: 6, Easiness: 2.0, RepetitionCount: 2}

	got := NextState(prior, 3, 5, today)

	assert.Equal(t, 12, got.IntervalDays)
	assert.InDelta(t, 1.86, got.Easiness, 1e-9)
	assert.Equal(t, 3, got.RepetitionCount)
}

func TestNextState_FailedRecallResets(t *testing.T) {
	priors := []*State{
		nil,
		{IntervalDays: 1, Easiness: 2.5, RepetitionCount: 1},
		{IntervalDays: 95, Easiness: 2.8, RepetitionCount: 7},
	}
	for _, prior := range priors {
		for _, score := range []float64{0, 1, 2} {
			got := NextState(prior, score, 5, today)
			assert.Equal(t, 0, got.RepetitionCount)
			assert.Equal(t, 1, got.IntervalDays)
			assert.Equal(t, "2024-03-02", got.NextReviewDate)
		}
	}
}

func TestNextState_EasinessFloor(t *testing.T) {
	state := NextState(nil, 0, 5, today)
	for i := 0; i < 20; i++ {
		assert.GreaterOrEqual(t, state.Easiness, MinEasiness)
		state = NextState(&state, 0, 5, today)
	}
	assert.Equal(t, MinEasiness, state.Easiness)
}

func TestNextState_ScoreAboveMaxIsClamped(t *testing.T) {
	assert.Equal(t, NextState(nil, 5, 5, today), NextState(nil, 50, 5, today))
}

func TestNextState_ZeroPriorInterval(t *testing.T) {
	prior := &State{IntervalDays: 0, Easiness: 2.5, RepetitionCount: 2}

	got := NextState(prior, 5, 5, today)

	assert.Equal(t, 1, got.IntervalDays)
	assert.Equal(t, "2024-03-02", got.NextReviewDate)
}

func TestAddDays(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-03-01", AddDays(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), 1))
	assert.Equal(t, "2024-03-01", AddDays(time.Date(2024, 3, 1, 1, 0, 0, 0, tokyo), 1))
	assert.Equal(t, "2024-03-02", AddDays(time.Date(2024, 3, 1, 10, 0, 0, 0, tokyo), 1))
	assert.Equal(t, "2025-01-05", AddDays(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), 6))
}
