// Package coach sequences the store, the scheduler and the text collaborators
// behind the learner-facing operations.
package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/at-ishikawa/learncoach/internal/apperr"
	"github.com/at-ishikawa/learncoach/internal/extract"
	"github.com/at-ishikawa/learncoach/internal/inference"
	"github.com/at-ishikawa/learncoach/internal/inference/local"
	"github.com/at-ishikawa/learncoach/internal/scheduler"
	"github.com/at-ishikawa/learncoach/internal/store"
)

const tracerName = "github.com/at-ishikawa/learncoach/internal/coach"

// Coach is the only place where store writes and scheduling are sequenced.
type Coach struct {
	store         *store.Store
	summarizer    inference.Summarizer
	generator     inference.QuestionGenerator
	extractText   func(path string) (string, error)
	now           func() time.Time
	maxScore      float64
	questionCount int
	upcomingDays  int
	tracer        trace.Tracer
}

// Option configures a Coach.
type Option func(*Coach)

func WithSummarizer(s inference.Summarizer) Option {
	return func(c *Coach) { c.summarizer = s }
}

func WithQuestionGenerator(g inference.QuestionGenerator) Option {
	return func(c *Coach) { c.generator = g }
}

func WithExtractor(fn func(path string) (string, error)) Option {
	return func(c *Coach) { c.extractText = fn }
}

func WithClock(now func() time.Time) Option {
	return func(c *Coach) { c.now = now }
}

// WithMaxScore sets the score that maps to quality 5 when an attempt does not
// carry its own maximum.
func WithMaxScore(maxScore float64) Option {
	return func(c *Coach) { c.maxScore = maxScore }
}

func WithQuestionCount(n int) Option {
	return func(c *Coach) { c.questionCount = n }
}

func WithUpcomingDays(days int) Option {
	return func(c *Coach) { c.upcomingDays = days }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Coach) { c.tracer = tracer }
}

// New returns a Coach on s. Without options it summarizes and generates
// questions locally and uses the wall clock.
func New(s *store.Store, opts ...Option) *Coach {
	c := &Coach{
		store:         s,
		summarizer:    local.NewSummarizer(inference.DefaultMaxSentences),
		generator:     local.NewQuestionGenerator(nil),
		extractText:   extract.ExtractText,
		now:           time.Now,
		maxScore:      scheduler.DefaultMaxScore,
		questionCount: inference.DefaultQuestionCount,
		upcomingDays:  7,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// Attempt is a graded quiz submission. ID identifies the attempt across
// retries; an empty ID gets a new one.
type Attempt struct {
	ID       string
	Topic    string
	Outcomes []store.QuestionOutcome
	Score    float64
	// MaxScore is the score of a perfect attempt. Zero means the coach default.
	MaxScore float64
}

// AttemptResult is what RecordQuizAttempt stored.
type AttemptResult struct {
	Result   store.QuizResult
	Schedule *store.ReviewSchedule
	Quality  int
	// AlreadyApplied is set when a replayed attempt left the schedule as stored,
	// either applied before or superseded by a later attempt.
	AlreadyApplied bool
}

// RecordQuizAttempt stores the attempt and then advances the topic's review
// schedule. The stored result is never rolled back: when the schedule cannot
// be read or written the returned error is an *apperr.SequencingError and the
// result is still returned. Recording the same attempt ID again does not
// duplicate the result or advance the schedule a second time, also after later
// attempts of the topic. A replayed attempt whose schedule update failed is
// applied when it is still the newest attempt of the topic.
func (c *Coach) RecordQuizAttempt(ctx context.Context, attempt Attempt) (_ *AttemptResult, err error) {
	ctx, span := c.tracer.Start(ctx, "coach.RecordQuizAttempt",
		trace.WithAttributes(attribute.String("topic", attempt.Topic)))
	defer func() { endSpan(span, err) }()

	topic := strings.TrimSpace(attempt.Topic)
	if topic == "" {
		return nil, apperr.NewInputError("topic", "must not be empty")
	}

	result := &store.QuizResult{
		AttemptID: attempt.ID,
		Topic:     topic,
		Outcomes:  attempt.Outcomes,
		Score:     attempt.Score,
	}
	created, err := c.store.Results.Create(ctx, result)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("attempt_id", result.AttemptID))
	recorded := &AttemptResult{Result: *result}

	sequencingError := func(err error) error {
		slog.Default().Error("quiz result saved without schedule update",
			"topic", topic, "attempt_id", result.AttemptID, "error", err)
		return &apperr.SequencingError{Topic: topic, AttemptID: result.AttemptID, Err: err}
	}

	prior, err := c.store.Schedules.FindByTopic(ctx, topic)
	if err != nil {
		return recorded, sequencingError(err)
	}

	maxScore := attempt.MaxScore
	if maxScore <= 0 {
		maxScore = c.maxScore
	}
	recorded.Quality = scheduler.Quality(result.Score, maxScore)

	applied := prior != nil && prior.LastAttemptID == result.AttemptID
	if !created && !applied {
		// A replayed attempt only moves the schedule when no later attempt of
		// the topic has been recorded since.
		applied, err = c.store.Results.HasLaterAttempt(ctx, topic, result.ID)
		if err != nil {
			return recorded, sequencingError(err)
		}
	}
	if applied {
		slog.Default().Debug("attempt already applied to schedule", "topic", topic, "attempt_id", result.AttemptID)
		recorded.Schedule = prior
		recorded.AlreadyApplied = true
		return recorded, nil
	}

	next := scheduler.New(c.store.Schedules, c.now).Next(prior, result.Score, maxScore)
	schedule := &store.ReviewSchedule{
		Topic:           topic,
		IntervalDays:    next.IntervalDays,
		Easiness:        next.Easiness,
		RepetitionCount: next.RepetitionCount,
		NextReviewDate:  next.NextReviewDate,
		LastAttemptID:   result.AttemptID,
	}
	if prior != nil {
		schedule.ID = prior.ID
	}
	if err := c.store.Schedules.Upsert(ctx, schedule); err != nil {
		return recorded, sequencingError(err)
	}

	slog.Default().Info("review scheduled",
		"topic", topic,
		"quality", recorded.Quality,
		"interval_days", schedule.IntervalDays,
		"next_review_date", schedule.NextReviewDate)
	recorded.Schedule = schedule
	return recorded, nil
}

// SaveNote summarizes rawText and stores it as the note of topic. The
// summarizer runs before any write.
func (c *Coach) SaveNote(ctx context.Context, topic, rawText string) (_ *store.Note, err error) {
	ctx, span := c.tracer.Start(ctx, "coach.SaveNote", trace.WithAttributes(attribute.String("topic", topic)))
	defer func() { endSpan(span, err) }()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperr.NewInputError("topic", "must not be empty")
	}
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, apperr.NewInputError("text", "must not be empty")
	}

	summary, err := c.summarizer.Summarize(ctx, rawText)
	if err != nil {
		return nil, fmt.Errorf("summarizer.Summarize(%s) > %w", topic, err)
	}
	if err := c.store.Notes.Upsert(ctx, topic, rawText, strings.TrimSpace(summary)); err != nil {
		return nil, err
	}
	return c.store.Notes.FindByTopic(ctx, topic)
}

// ImportFile extracts the text of path and saves it as a note. An empty topic
// is taken from the file name.
func (c *Coach) ImportFile(ctx context.Context, topic, path string) (*store.Note, error) {
	if strings.TrimSpace(topic) == "" {
		topic = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	text, err := c.extractText(path)
	if err != nil || strings.TrimSpace(text) == "" {
		reason := "no text could be extracted"
		if err != nil {
			reason = err.Error()
		}
		return nil, apperr.NewInputError("file", reason)
	}
	return c.SaveNote(ctx, topic, text)
}

// ErrNoQuestions is returned when a note is too short to quiz on.
var ErrNoQuestions = errors.New("no questions could be generated")

// GenerateQuiz writes count questions from the saved note of topic and
// stores them as the topic's current quiz. A count of zero uses the default.
func (c *Coach) GenerateQuiz(ctx context.Context, topic string, count int) (_ []store.Question, err error) {
	ctx, span := c.tracer.Start(ctx, "coach.GenerateQuiz", trace.WithAttributes(attribute.String("topic", topic)))
	defer func() { endSpan(span, err) }()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperr.NewInputError("topic", "must not be empty")
	}
	note, err := c.store.Notes.FindByTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NewInputError("topic", fmt.Sprintf("no saved note for %q", topic))
	}
	if count <= 0 {
		count = c.questionCount
	}

	source := note.Summary
	if strings.TrimSpace(source) == "" {
		source = note.RawText
	}
	questions, err := c.generator.GenerateQuestions(ctx, source, count)
	if err != nil {
		return nil, fmt.Errorf("generator.GenerateQuestions(%s) > %w", topic, err)
	}
	questions = inference.ValidQuestions(questions, count)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s: %w", topic, ErrNoQuestions)
	}

	if err := c.store.Quizzes.Create(ctx, topic, questions); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("questions", len(questions)))
	return questions, nil
}

// LatestQuiz returns the questions of the most recently generated quiz of topic.
func (c *Coach) LatestQuiz(ctx context.Context, topic string) ([]store.Question, error) {
	return c.store.Quizzes.FindLatestQuestions(ctx, strings.TrimSpace(topic))
}

// Upcoming returns the schedules due within days. A negative days uses the default window.
func (c *Coach) Upcoming(ctx context.Context, days int) ([]store.ReviewSchedule, error) {
	if days < 0 {
		days = c.upcomingDays
	}
	return scheduler.New(c.store.Schedules, c.now).Upcoming(ctx, days)
}

func (c *Coach) Results(ctx context.Context, topic string) ([]store.QuizResult, error) {
	return c.store.Results.FindByTopic(ctx, strings.TrimSpace(topic))
}

func (c *Coach) Topics(ctx context.Context) ([]string, error) {
	return c.store.Notes.ListTopics(ctx)
}

func (c *Coach) Note(ctx context.Context, topic string) (*store.Note, error) {
	return c.store.Notes.FindByTopic(ctx, strings.TrimSpace(topic))
}

func (c *Coach) Schedule(ctx context.Context, topic string) (*store.ReviewSchedule, error) {
	return c.store.Schedules.FindByTopic(ctx, strings.TrimSpace(topic))
}

// CheckIntegrity runs the store's integrity probe.
func (c *Coach) CheckIntegrity(ctx context.Context) (bool, string) {
	return c.store.CheckIntegrity(ctx)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
