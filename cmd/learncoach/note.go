package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/learncoach/internal/bootstrap"
	"github.com/at-ishikawa/learncoach/internal/config"
)

func newNoteCommand() *cobra.Command {
	noteCommand := &cobra.Command{
		Use:   "note",
		Short: "Save, import and show study notes",
	}

	var text string
	saveCommand := &cobra.Command{
		Use:   "save <topic>",
		Short: "Summarize and save a note. The text is read from --text or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				body, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("io.ReadAll(stdin) > %w", err)
				}
				text = string(body)
			}
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				note, err := services.Coach.SaveNote(ctx, args[0], text)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n\n%s\n", color.New(color.Bold).Sprint(note.Topic), note.Summary)
				return nil
			})
		},
	}
	saveCommand.Flags().StringVar(&text, "text", "", "note text")

	var topic string
	importCommand := &cobra.Command{
		Use:   "import <file>",
		Short: "Extract a .txt, .md, .docx or .pdf file and save it as a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				note, err := services.Coach.ImportFile(ctx, topic, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s\n\n%s\n", color.New(color.Bold).Sprint(note.Topic), args[0], note.Summary)
				return nil
			})
		},
	}
	importCommand.Flags().StringVar(&topic, "topic", "", "topic of the note (default: file name)")

	var showRaw bool
	showCommand := &cobra.Command{
		Use:   "show <topic>",
		Short: "Show the summary of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				note, err := services.Coach.Note(ctx, args[0])
				if err != nil {
					return err
				}
				if note == nil {
					return fmt.Errorf("no note for %q", args[0])
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "%s (updated %s)\n\n%s\n",
					color.New(color.Bold).Sprint(note.Topic), note.LastUpdated.Format("2006-01-02 15:04"), note.Summary)
				if showRaw {
					_, _ = fmt.Fprintf(out, "\n%s\n", note.RawText)
				}
				return nil
			})
		},
	}
	showCommand.Flags().BoolVar(&showRaw, "raw", false, "also print the original text")

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List topics, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(cmd, func(ctx context.Context, cfg *config.Config, services *bootstrap.Services) error {
				topics, err := services.Coach.Topics(ctx)
				if err != nil {
					return err
				}
				for _, topic := range topics {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), topic)
				}
				return nil
			})
		},
	}

	noteCommand.AddCommand(saveCommand, importCommand, showCommand, listCommand)
	return noteCommand
}
