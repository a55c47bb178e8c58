// Package statistics turns the quiz history into the series shown in reports.
package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/at-ishikawa/learncoach/internal/store"
)

// ScorePoint is one attempt on the performance-over-time series.
type ScorePoint struct {
	Topic   string
	Score   float64
	TakenAt time.Time
}

// DailyAverage is the mean score of the attempts taken on one UTC day.
type DailyAverage struct {
	Date     string // "2006-01-02"
	Average  float64
	Attempts int
}

// TopicStrength is the mean score of all attempts on a topic.
type TopicStrength struct {
	Topic       string
	Average     float64
	Attempts    int
	LastTakenAt time.Time
}

// PeriodStatistics holds the attempts of one month.
type PeriodStatistics struct {
	Period       string // "2025-01"
	Attempts     int
	UniqueTopics int
	AverageScore float64
}

// AggregateStatistics holds totals across all periods.
type AggregateStatistics struct {
	Attempts     int
	UniqueTopics int
	AverageScore float64
}

// StatisticsResult holds every series computed from one history.
type StatisticsResult struct {
	Performance []ScorePoint
	Daily       []DailyAverage
	Topics      []TopicStrength
	Periods     []PeriodStatistics
	Aggregate   AggregateStatistics
}

type periodData struct {
	attempts int
	total    float64
	topics   map[string]struct{}
}

type meanData struct {
	attempts int
	total    float64
	last     time.Time
}

// CalculateStatistics computes the report series from results.
// It accepts optional year and month filters (0 means no filter).
// Performance is ordered by time taken, Daily by date, Topics weakest first
// and Periods newest first.
func CalculateStatistics(results []store.QuizResult, year, month int) StatisticsResult {
	result := StatisticsResult{
		Performance: []ScorePoint{},
		Daily:       []DailyAverage{},
		Topics:      []TopicStrength{},
		Periods:     []PeriodStatistics{},
	}

	periods := make(map[string]*periodData)
	days := make(map[string]*meanData)
	topics := make(map[string]*meanData)
	var total float64

	for _, r := range results {
		takenAt := r.TakenAt.UTC()
		if takenAt.IsZero() || !matchesFilter(takenAt.Year(), int(takenAt.Month()), year, month) {
			continue
		}

		result.Performance = append(result.Performance, ScorePoint{Topic: r.Topic, Score: r.Score, TakenAt: takenAt})
		total += r.Score

		period := fmt.Sprintf("%d-%02d", takenAt.Year(), int(takenAt.Month()))
		if periods[period] == nil {
			periods[period] = &periodData{topics: make(map[string]struct{})}
		}
		periods[period].attempts++
		periods[period].total += r.Score
		periods[period].topics[r.Topic] = struct{}{}

		addMean(days, takenAt.Format(store.DateLayout), r.Score, takenAt)
		addMean(topics, r.Topic, r.Score, takenAt)
	}

	sort.SliceStable(result.Performance, func(i, j int) bool {
		return result.Performance[i].TakenAt.Before(result.Performance[j].TakenAt)
	})

	for date, data := range days {
		result.Daily = append(result.Daily, DailyAverage{Date: date, Average: data.total / float64(data.attempts), Attempts: data.attempts})
	}
	sort.Slice(result.Daily, func(i, j int) bool {
		return result.Daily[i].Date < result.Daily[j].Date
	})

	for topic, data := range topics {
		result.Topics = append(result.Topics, TopicStrength{
			Topic:       topic,
			Average:     data.total / float64(data.attempts),
			Attempts:    data.attempts,
			LastTakenAt: data.last,
		})
	}
	sort.Slice(result.Topics, func(i, j int) bool {
		if result.Topics[i].Average != result.Topics[j].Average {
			return result.Topics[i].Average < result.Topics[j].Average
		}
		return result.Topics[i].Topic < result.Topics[j].Topic
	})

	for period, data := range periods {
		result.Periods = append(result.Periods, PeriodStatistics{
			Period:       period,
			Attempts:     data.attempts,
			UniqueTopics: len(data.topics),
			AverageScore: data.total / float64(data.attempts),
		})
	}
	// Sort by period descending (newest first)
	sort.Slice(result.Periods, func(i, j int) bool {
		return result.Periods[i].Period > result.Periods[j].Period
	})

	result.Aggregate = AggregateStatistics{
		Attempts:     len(result.Performance),
		UniqueTopics: len(topics),
	}
	if result.Aggregate.Attempts > 0 {
		result.Aggregate.AverageScore = total / float64(result.Aggregate.Attempts)
	}
	return result
}

func addMean(means map[string]*meanData, key string, score float64, takenAt time.Time) {
	data := means[key]
	if data == nil {
		data = &meanData{}
		means[key] = data
	}
	data.attempts++
	data.total += score
	if takenAt.After(data.last) {
		data.last = takenAt
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}
