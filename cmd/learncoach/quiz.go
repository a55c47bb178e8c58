package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/cli"
	"github.com/at-ishikawa/learncoach/internal/config"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Generate and take self-tests",
	}

	var count int
	generateCommand := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a multiple-choice quiz from the saved note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				questions, err := services.Coach.GenerateQuiz(ctx, args[0], count)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for i, q := range questions {
					_, _ = fmt.Fprint(out, cli.FormatQuestion(i+1, len(questions), q))
				}
				_, _ = fmt.Fprintf(out, "\nGenerated %d questions. Run `learncoach quiz take %s` to start.\n", len(questions), args[0])
				return nil
			})
		},
	}
	generateCommand.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")

	takeCommand := &cobra.Command{
		Use:   "take <topic>",
		Short: "Take the latest quiz of a topic and schedule the next review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				questions, err := services.Coach.LatestQuiz(ctx, args[0])
				if err != nil {
					return err
				}
				if len(questions) == 0 {
					return fmt.Errorf("no quiz for %q, run `learncoach quiz generate %s` first", args[0], args[0])
				}

				quizCLI := cli.NewQuizCLI(services.Coach, args[0], questions, cmd.InOrStdin(), cmd.OutOrStdout())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Quiz on %s: %d questions. Answer with the option number or text.\n\n",
					color.New(color.Bold).Sprint(args[0]), len(questions))
				return quizCLI.Run(ctx, quizCLI)
			})
		},
	}

	showCommand := &cobra.Command{
		Use:   "show <topic>",
		Short: "Show the latest quiz of a topic with its answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				questions, err := services.Coach.LatestQuiz(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(questions) == 0 {
					_, _ = fmt.Fprintf(out, "No quiz for %s yet.\n", args[0])
					return nil
				}
				for i, q := range questions {
					_, _ = fmt.Fprint(out, cli.FormatQuestion(i+1, len(questions), q))
					_, _ = fmt.Fprintf(out, "  Answer: %s\n\n", q.Answer)
				}
				return nil
			})
		},
	}

	resultsCommand := &cobra.Command{
		Use:   "results <topic>",
		Short: "Show past attempts of a topic, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				results, err := services.Coach.Results(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(results) == 0 {
					_, _ = fmt.Fprintf(out, "No results for %s yet.\n", args[0])
					return nil
				}
				for _, r := range results {
					_, _ = fmt.Fprintf(out, "%s  score %g/%d\n", r.TakenAt.Format("2006-01-02 15:04"), r.Score, len(r.Outcomes))
				}
				return nil
			})
		},
	}

	quizCommand.AddCommand(generateCommand, takeCommand, showCommand, resultsCommand)
	return quizCommand
}
