package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/internal/cli"
	"github.com/scanvocab/scanvocab/internal/review"
)

func newReviewCommand() *cobra.Command {
	reviewCommands := &cobra.Command{
		Use:   "review",
		Short: "Work with the wrong-answer ledger",
	}
	reviewCommands.AddCommand(
		newReviewWeakCommand(),
		newReviewClearCommand(),
	)
	return reviewCommands
}

func newReviewWeakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weak",
		Short: "List the most missed words first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			entries, err := review.NewLedger(cfg.Review.LedgerPath).Entries()
			if err != nil {
				return fmt.Errorf("ledger.Entries() > %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No wrong answers recorded. Nice work!")
				return nil
			}

			fmt.Printf("%d weak words:\n\n", len(entries))
			for i, entry := range entries {
				fmt.Printf("%3d. %s - %s (wrong %d, last missed %s)\n",
					i+1, entry.English, entry.Japanese, entry.WrongCount, entry.LastWrongAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newReviewClearCommand() *cobra.Command {
	var wordID string

	command := &cobra.Command{
		Use:   "clear",
		Short: "Remove one word or every word from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			ledger := review.NewLedger(cfg.Review.LedgerPath)

			if wordID != "" {
				if err := ledger.Delete(wordID); err != nil {
					return fmt.Errorf("ledger.Delete(%s) > %w", wordID, err)
				}
				fmt.Printf("Removed %s from the ledger.\n", wordID)
				return nil
			}

			confirmed, err := cli.NewInteractiveCLI().Confirm("Clear every wrong-answer record?")
			if err != nil {
				return fmt.Errorf("interactive.Confirm() > %w", err)
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
			if err := ledger.Clear(); err != nil {
				return fmt.Errorf("ledger.Clear() > %w", err)
			}
			fmt.Println("Cleared the wrong-answer ledger.")
			return nil
		},
	}
	command.Flags().StringVar(&wordID, "word", "", "Remove a single word id instead of everything")
	return command
}
