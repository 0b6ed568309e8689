package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// Refresher reloads a project's words on an interval while a session is
// active and folds them into the session list, so edits made on another
// device appear without restarting the session. Merging follows the
// MergeWords rules, which keeps the learner's position valid throughout.
type Refresher struct {
	repo      vocab.Repository
	list      *List
	projectID string
	interval  time.Duration
	scheduler *gocron.Scheduler
}

// NewRefresher returns a refresher updating list from repo every
// interval.
func NewRefresher(repo vocab.Repository, list *List, projectID string, interval time.Duration) *Refresher {
	return &Refresher{
		repo:      repo,
		list:      list,
		projectID: projectID,
		interval:  interval,
	}
}

// Start schedules periodic refreshes until Stop is called.
func (r *Refresher) Start(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(r.interval).Do(func() {
		r.refresh(ctx)
	}); err != nil {
		return fmt.Errorf("scheduler.Every(%s).Do() > %w", r.interval, err)
	}
	scheduler.StartAsync()
	r.scheduler = scheduler
	return nil
}

// Stop halts the periodic refreshes. Stopping a never-started refresher
// is a no-op.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	words, err := r.repo.GetWords(ctx, r.projectID)
	if err != nil {
		slog.Warn("session refresh failed", "project_id", r.projectID, "err", err)
		return
	}
	r.list.Merge(words)
}
