package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_store "github.com/at-ishikawa/learncoach/internal/mocks/store"
	"github.com/at-ishikawa/learncoach/internal/store"
)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		date   string
		want   int
		wantOK bool
	}{
		{date: "2024-03-01", want: 0, wantOK: true},
		{date: "2024-03-08", want: 7, wantOK: true},
		{date: "2024-02-27", want: -3, wantOK: true},
		{date: "", wantOK: false},
		{date: "tomorrow", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, ok := DaysUntil(tt.date, today)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDueWithin(t *testing.T) {
	schedules := []store.ReviewSchedule{
		{Topic: "Far", NextReviewDate: "2024-03-09"},
		{Topic: "Osmosis", NextReviewDate: "2024-03-08"},
		{Topic: "Overdue", NextReviewDate: "2024-01-15"},
		{Topic: "Cells", NextReviewDate: "2024-03-01"},
		{Topic: "Atoms", NextReviewDate: "2024-03-01"},
		{Topic: "Undated", NextReviewDate: ""},
		{Topic: "Broken", NextReviewDate: "01/03/2024"},
	}

	got := DueWithin(schedules, 7, today)

	var topics []string
	for _, s := range got {
		topics = append(topics, s.Topic)
	}
	assert.Equal(t, []string{"Overdue", "Atoms", "Cells", "Osmosis"}, topics)
}

func TestDueWithin_ZeroDaysKeepsTodayAndOverdue(t *testing.T) {
	schedules := []store.ReviewSchedule{
		{Topic: "Tomorrow", NextReviewDate: "2024-03-02"},
		{Topic: "Today", NextReviewDate: "2024-03-01"},
		{Topic: "Yesterday", NextReviewDate: "2024-02-29"},
	}

	got := DueWithin(schedules, 0, today)

	require.Len(t, got, 2)
	assert.Equal(t, "Yesterday", got[0].Topic)
	assert.Equal(t, "Today", got[1].Topic)
}

func TestDueWithin_Empty(t *testing.T) {
	got := DueWithin(nil, 7, today)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScheduler_Upcoming(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mock_store.MockScheduleRepository)
		want      []string
		wantErr   bool
	}{
		{
			name: "filters stored schedules",
			setupMock: func(m *mock_store.MockScheduleRepository) {
				m.EXPECT().FindAll(gomock.Any()).Return([]store.ReviewSchedule{
					{Topic: "Later", NextReviewDate: "2024-04-01"},
					{Topic: "Soon", NextReviewDate: "2024-03-03"},
				}, nil)
			},
			want: []string{"Soon"},
		},
		{
			name: "repository error",
			setupMock: func(m *mock_store.MockScheduleRepository) {
				m.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_store.NewMockScheduleRepository(ctrl)
			tt.setupMock(repo)

			s := New(repo, func() time.Time { return today })
			got, err := s.Upcoming(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var topics []string
			for _, schedule := range got {
				topics = append(topics, schedule.Topic)
			}
			assert.Equal(t, tt.want, topics)
		})
	}
}

func TestScheduler_Next(t *testing.T) {
	s := New(nil, func() time.Time { return today })

	got := s.Next(&store.ReviewSchedule{Topic: "Cells", IntervalDays: 1, Easiness: 2.36, RepetitionCount: 1}, 5, 5)

	assert.Equal(t, 6, got.IntervalDays)
	assert.InDelta(t, 2.46, got.Easiness, 1e-9)
	assert.Equal(t, 2, got.RepetitionCount)
	assert.Equal(t, "2024-03-07", got.NextReviewDate)
}
