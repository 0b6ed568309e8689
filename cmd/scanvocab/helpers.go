package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/scanvocab/scanvocab/internal/account"
	"github.com/scanvocab/scanvocab/internal/config"
	"github.com/scanvocab/scanvocab/internal/database"
	"github.com/scanvocab/scanvocab/internal/review"
	"github.com/scanvocab/scanvocab/internal/session"
	"github.com/scanvocab/scanvocab/internal/vocab"
	"github.com/scanvocab/scanvocab/internal/vocab/postgres"
	"github.com/scanvocab/scanvocab/internal/vocab/sqlite"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRegistry wires both backend constructors without opening either
// database. Each backend is built on first use and reused afterwards.
func newRegistry(ctx context.Context, cfg *config.Config) *vocab.Registry {
	return vocab.NewRegistry(
		func() (vocab.Repository, error) {
			db, err := database.OpenSQLite(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("database.OpenSQLite() > %w", err)
			}
			if err := sqlite.Migrate(ctx, db); err != nil {
				return nil, fmt.Errorf("sqlite.Migrate() > %w", err)
			}
			return sqlite.NewRepository(db), nil
		},
		func() (vocab.Repository, error) {
			db, err := database.OpenPostgres(cfg.Remote)
			if err != nil {
				return nil, fmt.Errorf("database.OpenPostgres() > %w", err)
			}
			return postgres.NewRepository(db, cfg.Account.UserID), nil
		},
	)
}

// subscriptionService decides where the subscription status comes from:
// a fixed free answer when --local is set or no API token is configured,
// the billing endpoint otherwise.
func subscriptionService(cfg *config.Config) account.Service {
	if localOnly || cfg.Account.Token == "" {
		return account.Static{
			Subscription: account.Subscription{
				UserID: cfg.Account.UserID,
				Status: account.StatusFree,
			},
		}
	}
	return account.NewClient(cfg.Account.BaseURL, cfg.Account.Token)
}

// resolveRepository routes to the backend matching the user's tier. A
// billing lookup failure degrades to the on-device backend instead of
// blocking offline use.
func resolveRepository(ctx context.Context, cfg *config.Config, registry *vocab.Registry) (vocab.Repository, account.Subscription, error) {
	subscription, err := subscriptionService(cfg).CurrentSubscription(ctx)
	if err != nil {
		slog.Warn("Subscription lookup failed, falling back to the on-device backend", "err", err)
		subscription = account.Subscription{
			UserID: cfg.Account.UserID,
			Status: account.StatusFree,
		}
	}
	repository, err := registry.ForSubscription(subscription.Status)
	if err != nil {
		return nil, subscription, fmt.Errorf("registry.ForSubscription() > %w", err)
	}
	return repository, subscription, nil
}

// loadPool collects the words a study session draws from: one deck's words,
// or every deck's when no project is given, optionally narrowed to favorites.
func loadPool(ctx context.Context, repository vocab.Repository, ownerID string, projectID string, favoritesOnly bool) ([]vocab.Word, error) {
	var words []vocab.Word
	if projectID != "" {
		var err error
		words, err = repository.GetWords(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("repository.GetWords() > %w", err)
		}
	} else {
		projects, err := repository.GetProjects(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("repository.GetProjects() > %w", err)
		}
		for _, project := range projects {
			projectWords, err := repository.GetWords(ctx, project.ID)
			if err != nil {
				return nil, fmt.Errorf("repository.GetWords(%s) > %w", project.ID, err)
			}
			words = append(words, projectWords...)
		}
	}

	if favoritesOnly {
		words = lo.Filter(words, func(word vocab.Word, _ int) bool {
			return word.IsFavorite
		})
	}
	return words, nil
}

func newReconciler(cfg *config.Config) *session.Reconciler {
	store := session.NewStore(cfg.Session.Directory)
	return session.NewReconciler(store, cfg.Session.FreshnessWindow, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newStatusUpdater(cfg *config.Config, repository vocab.Repository) *review.StatusUpdater {
	return review.NewStatusUpdater(repository, review.NewLedger(cfg.Review.LedgerPath))
}
