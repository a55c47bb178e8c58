package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/config"
	"github.com/at-ishikawa/learncoach/internal/scheduler"
)

func newScheduleCommand() *cobra.Command {
	scheduleCommand := &cobra.Command{
		Use:   "schedule",
		Short: "Show spaced-repetition reviews",
	}

	var days int
	dueCommand := &cobra.Command{
		Use:   "due",
		Short: "List reviews due within the given number of days, overdue included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				schedules, err := services.Coach.Upcoming(ctx, days)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(schedules) == 0 {
					_, _ = fmt.Fprintln(out, "Nothing to review.")
					return nil
				}
				today := time.Now()
				for _, s := range schedules {
					_, _ = fmt.Fprintf(out, "%s  %s%s\n", s.NextReviewDate, s.Topic, overdueMarker(s.NextReviewDate, today))
				}
				return nil
			})
		},
	}
	dueCommand.Flags().IntVar(&days, "days", -1, "window in days (default from config)")

	showCommand := &cobra.Command{
		Use:   "show <topic>",
		Short: "Show the review schedule of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				s, err := services.Coach.Schedule(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if s == nil {
					_, _ = fmt.Fprintf(out, "%s has not been quizzed yet.\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(out, "Topic: %s\nNext review: %s\nInterval: %d days\nEasiness: %.2f\nRepetitions: %d\n",
					s.Topic, s.NextReviewDate, s.IntervalDays, s.Easiness, s.RepetitionCount)
				return nil
			})
		},
	}

	scheduleCommand.AddCommand(dueCommand, showCommand)
	return scheduleCommand
}

func overdueMarker(date string, today time.Time) string {
	n, ok := scheduler.DaysUntil(date, today)
	if !ok || n >= 0 {
		return ""
	}
	return fmt.Sprintf(" (overdue by %d days)", -n)
}
