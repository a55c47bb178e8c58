// Package bootstrap opens and tears down the process-wide resources of the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/at-ishikawa/learncoach/internal/coach"
	"github.com/at-ishikawa/learncoach/internal/config"
	"github.com/at-ishikawa/learncoach/internal/inference/local"
	"github.com/at-ishikawa/learncoach/internal/inference/openai"
	"github.com/at-ishikawa/learncoach/internal/observability"
	"github.com/at-ishikawa/learncoach/internal/store"
)

// DefaultGracePeriod is how long Run waits for the running command after an
// interrupt before it closes the resources.
const DefaultGracePeriod = 5 * time.Second

// App owns the shutdown hooks of one command invocation.
type App struct {
	// GracePeriod bounds the wait for the running command after an interrupt.
	GracePeriod time.Duration

	mu       sync.Mutex
	hooks    []func(ctx context.Context) error
	shutDown bool
}

// New creates a new App.
func New() *App {
	return &App{GracePeriod: DefaultGracePeriod}
}

// AddShutdownHook registers a function to call during shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run and then the shutdown hooks. On OS interrupt run's context
// is canceled and the hooks wait up to GracePeriod for run to return, so a
// write in flight is not cut off by the store being closed.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Default().Debug("interrupted, waiting for the running command", "grace_period", a.GracePeriod)
		timer := time.NewTimer(a.GracePeriod)
		defer timer.Stop()
		select {
		case err := <-errCh:
			return errors.Join(err, a.Shutdown(context.Background()))
		case <-timer.C:
			slog.Default().Warn("command did not stop within the grace period, shutting down")
			return a.Shutdown(context.Background())
		}
	case err := <-errCh:
		return errors.Join(err, a.Shutdown(context.Background()))
	}
}

// Shutdown runs the registered hooks once.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.shutDown {
		return nil
	}
	a.shutDown = true

	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Services are the resources a command works with.
type Services struct {
	Store *store.Store
	Coach *coach.Coach
}

// Start installs tracing, opens the store and builds the coach with the
// configured collaborators. Everything opened is closed by a.Shutdown.
func (a *App) Start(ctx context.Context, cfg *config.Config, version string) (*Services, error) {
	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, version)
	if err != nil {
		return nil, fmt.Errorf("observability.InitTracing() > %w", err)
	}
	a.AddShutdownHook(func(ctx context.Context) error {
		return shutdownTracing(ctx)
	})

	s, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.AddShutdownHook(func(ctx context.Context) error {
		return s.Close()
	})

	opts := []coach.Option{
		coach.WithMaxScore(cfg.Scheduler.MaxScore),
		coach.WithQuestionCount(cfg.Quiz.QuestionCount),
		coach.WithUpcomingDays(cfg.Scheduler.UpcomingDays),
	}
	switch cfg.Summarizer.Provider {
	case config.SummarizerOpenAI:
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.RetryAttempts, cfg.Summarizer.MaxSentences)
		a.AddShutdownHook(func(ctx context.Context) error {
			return client.Close()
		})
		opts = append(opts, coach.WithSummarizer(client), coach.WithQuestionGenerator(client))
		slog.Default().Debug("using openai collaborators", "model", client.GetModel())
	default:
		opts = append(opts, coach.WithSummarizer(local.NewSummarizer(cfg.Summarizer.MaxSentences)))
	}

	return &Services{Store: s, Coach: coach.New(s, opts...)}, nil
}
