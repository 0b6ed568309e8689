// Package sqlite stores vocabulary in the embedded on-device database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scanvocab/scanvocab/internal/database"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// Repository implements vocab.Repository for the single on-device user.
type Repository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

var _ vocab.Repository = (*Repository)(nil)

// NewRepository creates a repository over an already migrated database.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateProject inserts a new project for ownerID.
func (r *Repository) CreateProject(ctx context.Context, ownerID, title string) (*vocab.Project, error) {
	if ownerID == "" {
		return nil, vocab.ValidationError("owner id is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, vocab.ValidationError("title is required")
	}

	project := vocab.Project{
		ID:        r.newID(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, owner_id, title, is_synced, share_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		project.ID, project.OwnerID, project.Title, project.IsSynced, project.ShareID, project.CreatedAt,
	); err != nil {
		return nil, vocab.Unavailable("sqlite.CreateProject", err)
	}
	return &project, nil
}

// GetProjects returns the owner's projects, newest first.
func (r *Repository) GetProjects(ctx context.Context, ownerID string) ([]vocab.Project, error) {
	var projects []vocab.Project
	if err := r.db.SelectContext(ctx, &projects,
		"SELECT * FROM projects WHERE owner_id = ? ORDER BY created_at DESC, id", ownerID,
	); err != nil {
		return nil, vocab.Unavailable("sqlite.GetProjects", err)
	}
	return projects, nil
}

// GetProject returns one project, or (nil, nil) when the id is unknown.
func (r *Repository) GetProject(ctx context.Context, id string) (*vocab.Project, error) {
	var project vocab.Project
	if err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, vocab.Unavailable("sqlite.GetProject", err)
	}
	return &project, nil
}

// UpdateProject writes the non-nil fields of update.
func (r *Repository) UpdateProject(ctx context.Context, id string, update vocab.ProjectUpdate) error {
	if update.Empty() {
		return nil
	}

	var sets []string
	var args []any
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return vocab.ValidationError("title is required")
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if update.IsSynced != nil {
		sets = append(sets, "is_synced = ?")
		args = append(args, *update.IsSynced)
	}
	if update.ShareID != nil {
		sets = append(sets, "share_id = ?")
		// An empty share id clears the column.
		if *update.ShareID == "" {
			args = append(args, nil)
		} else {
			args = append(args, *update.ShareID)
		}
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, "UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return vocab.Unavailable("sqlite.UpdateProject", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return vocab.Unavailable("sqlite.UpdateProject", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("project", id)
	}
	return nil
}

// DeleteProject removes the project and its words in one transaction. The
// word delete is explicit because the sqlite schema does not cascade.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM words WHERE project_id = ?", id); err != nil {
			return vocab.Unavailable("sqlite.DeleteProject", err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
		if err != nil {
			return vocab.Unavailable("sqlite.DeleteProject", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return vocab.Unavailable("sqlite.DeleteProject", err)
		}
		if affected == 0 {
			return vocab.NotFoundError("project", id)
		}
		return nil
	})
}

var wordColumns = []string{
	"id", "project_id", "english", "japanese", "distractors",
	"example_sentence", "example_sentence_ja", "status", "ease_factor",
	"interval_days", "repetition_count", "is_favorite", "last_reviewed_at",
	"next_review_at", "position", "created_at",
}

// CreateWords inserts the batch atomically with a multi-row INSERT and
// returns the created words in input order. Positions continue from the
// project's current maximum so insertion order survives later batches.
func (r *Repository) CreateWords(ctx context.Context, projectID string, inputs []vocab.WordInput) ([]vocab.Word, error) {
	if err := vocab.ValidateWordInputs(inputs); err != nil {
		return nil, err
	}

	var words []vocab.Word
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM projects WHERE id = ?", projectID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return vocab.NotFoundError("project", projectID)
			}
			return vocab.Unavailable("sqlite.CreateWords", err)
		}

		var maxPosition int
		if err := tx.GetContext(ctx, &maxPosition,
			"SELECT COALESCE(MAX(position), -1) FROM words WHERE project_id = ?", projectID,
		); err != nil {
			return vocab.Unavailable("sqlite.CreateWords", err)
		}

		now := r.now().UTC()
		words = make([]vocab.Word, 0, len(inputs))
		for i, in := range inputs {
			words = append(words, vocab.Word{
				ID:                r.newID(),
				ProjectID:         projectID,
				English:           strings.TrimSpace(in.English),
				Japanese:          strings.TrimSpace(in.Japanese),
				Distractors:       vocab.StringList(in.Distractors),
				ExampleSentence:   in.ExampleSentence,
				ExampleSentenceJa: in.ExampleSentenceJa,
				Status:            vocab.StatusNew,
				EaseFactor:        vocab.DefaultEaseFactor,
				Position:          maxPosition + 1 + i,
				CreatedAt:         now,
			})
		}

		query := database.BuildMultiRowInsert("words", wordColumns, len(words))
		var args []interface{}
		for _, w := range words {
			args = append(args,
				w.ID, w.ProjectID, w.English, w.Japanese, w.Distractors,
				w.ExampleSentence, w.ExampleSentenceJa, w.Status, w.EaseFactor,
				w.IntervalDays, w.RepetitionCount, w.IsFavorite, w.LastReviewedAt,
				w.NextReviewAt, w.Position, w.CreatedAt,
			)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return vocab.Unavailable("sqlite.CreateWords", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// GetWords returns the project's words in insertion order.
func (r *Repository) GetWords(ctx context.Context, projectID string) ([]vocab.Word, error) {
	var words []vocab.Word
	if err := r.db.SelectContext(ctx, &words,
		"SELECT * FROM words WHERE project_id = ? ORDER BY created_at ASC, position ASC", projectID,
	); err != nil {
		return nil, vocab.Unavailable("sqlite.GetWords", err)
	}
	return words, nil
}

// GetWord returns one word, or (nil, nil) when the id is unknown.
func (r *Repository) GetWord(ctx context.Context, id string) (*vocab.Word, error) {
	var word vocab.Word
	if err := r.db.GetContext(ctx, &word, "SELECT * FROM words WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, vocab.Unavailable("sqlite.GetWord", err)
	}
	return &word, nil
}

// UpdateWord writes the non-nil fields of update.
func (r *Repository) UpdateWord(ctx context.Context, id string, update vocab.WordUpdate) error {
	if update.Empty() {
		return nil
	}
	if err := update.Validate(); err != nil {
		return err
	}

	var sets []string
	var args []any
	if update.English != nil {
		sets = append(sets, "english = ?")
		args = append(args, strings.TrimSpace(*update.English))
	}
	if update.Japanese != nil {
		sets = append(sets, "japanese = ?")
		args = append(args, strings.TrimSpace(*update.Japanese))
	}
	if update.Distractors != nil {
		sets = append(sets, "distractors = ?")
		args = append(args, *update.Distractors)
	}
	if update.ExampleSentence != nil {
		sets = append(sets, "example_sentence = ?")
		args = append(args, *update.ExampleSentence)
	}
	if update.ExampleSentenceJa != nil {
		sets = append(sets, "example_sentence_ja = ?")
		args = append(args, *update.ExampleSentenceJa)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}
	if update.EaseFactor != nil {
		sets = append(sets, "ease_factor = ?")
		args = append(args, *update.EaseFactor)
	}
	if update.IntervalDays != nil {
		sets = append(sets, "interval_days = ?")
		args = append(args, *update.IntervalDays)
	}
	if update.RepetitionCount != nil {
		sets = append(sets, "repetition_count = ?")
		args = append(args, *update.RepetitionCount)
	}
	if update.IsFavorite != nil {
		sets = append(sets, "is_favorite = ?")
		args = append(args, *update.IsFavorite)
	}
	if update.LastReviewedAt != nil {
		sets = append(sets, "last_reviewed_at = ?")
		args = append(args, *update.LastReviewedAt)
	}
	if update.NextReviewAt != nil {
		sets = append(sets, "next_review_at = ?")
		args = append(args, *update.NextReviewAt)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, "UPDATE words SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return vocab.Unavailable("sqlite.UpdateWord", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return vocab.Unavailable("sqlite.UpdateWord", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("word", id)
	}
	return nil
}

// DeleteWord removes one word.
func (r *Repository) DeleteWord(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return vocab.Unavailable("sqlite.DeleteWord", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return vocab.Unavailable("sqlite.DeleteWord", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("word", id)
	}
	return nil
}

// DeleteWordsByProject removes every word in the project, which must exist.
// A project with no words is not an error.
func (r *Repository) DeleteWordsByProject(ctx context.Context, projectID string) error {
	var exists int
	if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM projects WHERE id = ?", projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vocab.NotFoundError("project", projectID)
		}
		return vocab.Unavailable("sqlite.DeleteWordsByProject", err)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE project_id = ?", projectID); err != nil {
		return vocab.Unavailable("sqlite.DeleteWordsByProject", err)
	}
	return nil
}
