package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// runWithServices loads the configuration, opens the store and runs fn.
// The store and tracer are closed when fn returns or on interrupt.
func runWithServices(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		services, err := app.Start(ctx, cfg, version)
		if err != nil {
			return err
		}
		return fn(ctx, cfg, services)
	})
}
