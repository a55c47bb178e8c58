package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/config"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Store maintenance commands",
	}

	checkCommand := &cobra.Command{
		Use:   "check",
		Short: "Run the store integrity check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				ok, message := services.Coach.CheckIntegrity(ctx)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
				if !ok {
					return fmt.Errorf("integrity check failed")
				}
				return nil
			})
		},
	}

	var output string
	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export every record as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				var w io.Writer = cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("os.Create(%s) > %w", output, err)
					}
					defer func() {
						_ = f.Close()
					}()
					w = f
				}
				return services.Store.Export(ctx, w)
			})
		},
	}
	exportCommand.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	dbCommand.AddCommand(checkCommand, exportCommand)
	return dbCommand
}
