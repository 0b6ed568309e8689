package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/internal/statistics"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics per deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			projects, err := repository.GetProjects(ctx, cfg.Account.UserID)
			if err != nil {
				return fmt.Errorf("repository.GetProjects() > %w", err)
			}
			if len(projects) == 0 {
				fmt.Println("No decks yet. Run 'scanvocab scan <image file>' to create one.")
				return nil
			}

			wordsByProject := make(map[string][]vocab.Word, len(projects))
			for _, project := range projects {
				words, err := repository.GetWords(ctx, project.ID)
				if err != nil {
					return fmt.Errorf("repository.GetWords(%s) > %w", project.ID, err)
				}
				wordsByProject[project.ID] = words
			}
			result := statistics.Calculate(projects, wordsByProject, time.Now())

			fmt.Println("Study Statistics Report")
			fmt.Println("=======================")
			fmt.Println()
			fmt.Printf("%-28s  %5s  %5s  %7s  %9s  %9s  %5s\n", "Deck", "Words", "New", "Review", "Mastered", "Favorites", "Due")
			fmt.Printf("%-28s  %5s  %5s  %7s  %9s  %9s  %5s\n", "----", "-----", "---", "------", "--------", "---------", "---")
			for _, deck := range result.Decks {
				fmt.Printf("%-28s  %5d  %5d  %7d  %9d  %9d  %5d\n",
					deck.Title,
					deck.TotalWords,
					deck.NewCount,
					deck.ReviewCount,
					deck.MasteredCount,
					deck.FavoriteCount,
					deck.DueCount,
				)
			}

			fmt.Println()
			fmt.Printf("%-28s  %5d  %5d  %7d  %9d  %9d  %5d\n",
				"Totals:",
				result.Aggregate.TotalWords,
				result.Aggregate.NewCount,
				result.Aggregate.ReviewCount,
				result.Aggregate.MasteredCount,
				result.Aggregate.FavoriteCount,
				result.Aggregate.DueCount,
			)
			return nil
		},
	}
}
