// Package observability wires OpenTelemetry tracing for the CLI.
package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/at-ishikawa/learncoach/internal/config"
)

const ServiceName = "learncoach"

// ShutdownFunc flushes and stops tracing.
type ShutdownFunc func(context.Context) error

// InitTracing installs a global tracer provider that writes spans as JSON to
// cfg.Output, or to stderr when no output is set. When tracing is disabled the
// global no-op provider stays in place and the returned shutdown does nothing.
func InitTracing(ctx context.Context, cfg config.TracingConfig, version string) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	var w io.Writer = os.Stderr
	var closeOutput func() error
	if cfg.Output != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(cfg.Output), err)
		}
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("os.OpenFile(%s) > %w", cfg.Output, err)
		}
		w = f
		closeOutput = f.Close
	}

	tp, err := NewTracerProvider(ctx, w, version)
	if err != nil {
		if closeOutput != nil {
			_ = closeOutput()
		}
		return nil, err
	}
	otel.SetTracerProvider(tp)
	slog.Default().Debug("tracing initialized", "output", cfg.Output)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if closeOutput != nil {
			if closeErr := closeOutput(); err == nil {
				err = closeErr
			}
		}
		if err != nil {
			return fmt.Errorf("tracerProvider.Shutdown() > %w", err)
		}
		return nil
	}, nil
}

// NewTracerProvider returns a provider exporting every span to w synchronously.
func NewTracerProvider(ctx context.Context, w io.Writer, version string) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(version),
			attribute.String("service.component", "cli"),
		),
	)
	if err != nil {
		slog.Default().Warn("otel resource init failed (continuing)", "error", err)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("stdouttrace.New() > %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	), nil
}
