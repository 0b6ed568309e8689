package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/internal/bootstrap"
	"github.com/scanvocab/scanvocab/internal/cli"
	"github.com/scanvocab/scanvocab/internal/session"
)

func newStudyCommand() *cobra.Command {
	var projectID string
	var favoritesOnly bool

	command := &cobra.Command{
		Use:   "study",
		Short: "Study flashcards with resumable progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, subscription, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			words, err := loadPool(ctx, repository, cfg.Account.UserID, projectID, favoritesOnly)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				fmt.Println("No words to study. Scan a photo or import a deck first.")
				return nil
			}

			key := session.Key{ProjectID: projectID, FavoritesOnly: favoritesOnly}
			reconciler := newReconciler(cfg)
			resolution := reconciler.Resolve(key, words)
			if resolution.Resumed {
				fmt.Printf("Resuming the previous session at card %d.\n", resolution.Index+1)
			}
			// Checkpoint the fresh order immediately so an interrupt during
			// the first card resumes the same shuffle.
			reconciler.Save(key, resolution.Words, resolution.Index)

			interactive := cli.NewInteractiveCLI()
			flashcards := cli.NewFlashcardCLI(interactive, key, resolution, reconciler, newStatusUpdater(cfg, repository))

			app := bootstrap.New()
			if subscription.Status.Active() && projectID != "" {
				refresher := session.NewRefresher(repository, flashcards.List(), projectID, cfg.Session.RefreshInterval)
				if err := refresher.Start(ctx); err != nil {
					return fmt.Errorf("refresher.Start() > %w", err)
				}
				app.AddShutdownHook(func(ctx context.Context) error {
					refresher.Stop()
					return nil
				})
			}

			fmt.Printf("Starting a flashcard session with %d cards\n", flashcards.Remaining())
			return app.Run(ctx, func(ctx context.Context) error {
				return interactive.Run(ctx, flashcards)
			})
		},
	}

	command.Flags().StringVar(&projectID, "project", "", "Limit the session to one deck")
	command.Flags().BoolVar(&favoritesOnly, "favorites", false, "Limit the session to favorite words")
	return command
}
