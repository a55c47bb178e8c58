package statistics_test

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/learncoach/internal/statistics"
	"github.com/at-ishikawa/learncoach/internal/store"
)

func ExampleCalculateStatistics() {
	results := []store.QuizResult{
		{Topic: "Photosynthesis", Score: 3, TakenAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
		{Topic: "Photosynthesis", Score: 5, TakenAt: time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)},
		{Topic: "Mitosis", Score: 2, TakenAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)},
	}

	result := statistics.CalculateStatistics(results, 0, 0)
	for _, topic := range result.Topics {
		fmt.Printf("%s: %.1f over %d attempts\n", topic.Topic, topic.Average, topic.Attempts)
	}
	fmt.Printf("Total: %d attempts, average %.2f\n", result.Aggregate.Attempts, result.Aggregate.AverageScore)
	// Output:
	// Mitosis: 2.0 over 1 attempts
	// Photosynthesis: 4.0 over 2 attempts
	// Total: 3 attempts, average 3.33
}
