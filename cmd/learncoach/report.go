package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/config"
	"github.com/at-ishikawa/learncoach/internal/report"
)

// FormatFlag selects the report output format.
type FormatFlag report.Format

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	format, err := report.ParseFormat(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are md, html or pdf", v)
	}
	*f = FormatFlag(format)
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

func newReportCommand() *cobra.Command {
	format := FormatFlag(report.FormatMarkdown)
	var year, month int
	var outputDirectory string
	var toStdout bool

	command := &cobra.Command{
		Use:   "report",
		Short: "Write a progress report with performance, daily averages, topic strengths and due reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year")
			}
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				results, err := services.Store.Results.FindAll(ctx)
				if err != nil {
					return err
				}
				due, err := services.Coach.Upcoming(ctx, cfg.Scheduler.UpcomingDays)
				if err != nil {
					return err
				}

				data := report.Build(results, due, report.Options{
					GeneratedAt:  time.Now(),
					MaxScore:     maxAverageScore(cfg),
					UpcomingDays: cfg.Scheduler.UpcomingDays,
					Year:         year,
					Month:        month,
				})

				if toStdout {
					return report.Render(cmd.OutOrStdout(), cfg.Report.Template, data, report.Format(format))
				}
				dir := outputDirectory
				if dir == "" {
					dir = cfg.Report.OutputDirectory
				}
				path, err := report.WriteFile(dir, cfg.Report.Template, data, report.Format(format))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			})
		},
	}

	flags := command.Flags()
	flags.Var(&format, "format", "Output format. Options: md, html, pdf")
	flags.IntVar(&year, "year", 0, "only include attempts of this year")
	flags.IntVar(&month, "month", 0, "only include attempts of this month (requires --year)")
	flags.StringVar(&outputDirectory, "output-dir", "", "directory of the report file (default from config)")
	flags.BoolVar(&toStdout, "stdout", false, "print the report instead of writing a file (md and html only)")
	return command
}

// maxAverageScore is the bar scale of the report. Scores are counts of correct
// answers, so a full quiz of the configured size is the top.
func maxAverageScore(cfg *config.Config) float64 {
	if cfg.Quiz.QuestionCount > 0 {
		return float64(cfg.Quiz.QuestionCount)
	}
	return cfg.Scheduler.MaxScore
}
