// Package store persists notes, quizzes, quiz results and review schedules.
package store

import "time"

// Note is the single study note kept per topic.
type Note struct {
	ID          int64     `db:"id" yaml:"id"`
	Topic       string    `db:"topic" yaml:"topic"`
	RawText     string    `db:"raw_text" yaml:"raw_text"`
	Summary     string    `db:"summary" yaml:"summary"`
	LastUpdated time.Time `db:"last_updated" yaml:"last_updated"`
}

// Question is one multiple-choice question. Options keep their order and
// exactly one of them equals Answer.
type Question struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// Quiz is a generated set of questions for a topic. A topic keeps every quiz
// ever generated; the one with the highest ID is the current quiz.
type Quiz struct {
	ID        int64      `yaml:"id"`
	Topic     string     `yaml:"topic"`
	Questions []Question `yaml:"questions"`
	CreatedAt time.Time  `yaml:"created_at"`
}

// QuestionOutcome is the graded answer to one question.
type QuestionOutcome struct {
	Question  string `json:"question" yaml:"question"`
	Selected  string `json:"selected" yaml:"selected"`
	Correct   string `json:"correct" yaml:"correct"`
	IsCorrect bool   `json:"is_correct" yaml:"is_correct"`
}

// QuizResult is one completed quiz attempt. Score is the number of correct answers.
type QuizResult struct {
	ID        int64             `yaml:"id"`
	AttemptID string            `yaml:"attempt_id"`
	Topic     string            `yaml:"topic"`
	Outcomes  []QuestionOutcome `yaml:"outcomes"`
	Score     float64           `yaml:"score"`
	TakenAt   time.Time         `yaml:"taken_at"`
}

// ReviewSchedule is the spaced-repetition state of a topic.
// NextReviewDate is a calendar date formatted as 2006-01-02.
type ReviewSchedule struct {
	ID              int64   `db:"id" yaml:"id"`
	Topic           string  `db:"topic" yaml:"topic"`
	IntervalDays    int     `db:"interval_days" yaml:"interval_days"`
	Easiness        float64 `db:"easiness" yaml:"easiness"`
	RepetitionCount int     `db:"repetition_count" yaml:"repetition_count"`
	NextReviewDate  string  `db:"next_review_date" yaml:"next_review_date"`
	LastAttemptID   string  `db:"last_attempt_id" yaml:"last_attempt_id"`
}

// DateLayout is the layout of ReviewSchedule.NextReviewDate.
const DateLayout = "2006-01-02"

// MinEasiness is the lowest easiness a schedule may hold.
const MinEasiness = 1.3
