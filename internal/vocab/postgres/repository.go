// Package postgres stores vocabulary in the shared cloud database. Every
// query is scoped to the authenticated owner so one tenant can never read or
// write another tenant's rows.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/scanvocab/scanvocab/internal/database"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// Repository implements vocab.Repository for one authenticated owner.
type Repository struct {
	db      *sqlx.DB
	ownerID string
	now     func() time.Time
	newID   func() string
}

var _ vocab.Repository = (*Repository)(nil)

// NewRepository creates a repository bound to ownerID.
func NewRepository(db *sqlx.DB, ownerID string) *Repository {
	return &Repository{
		db:      db,
		ownerID: ownerID,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// wrapDB converts driver failures into the shared taxonomy. pq errors keep
// their condition name, which the server's generic messages often omit.
func wrapDB(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return vocab.Unavailable(op, fmt.Errorf("%s: %w", pqErr.Code.Name(), err))
	}
	return vocab.Unavailable(op, err)
}

func (r *Repository) checkOwner(ownerID string) error {
	if ownerID != r.ownerID {
		return vocab.ValidationError("owner %q does not match the authenticated user", ownerID)
	}
	return nil
}

// CreateProject inserts a new project. Rows created here are synced by
// definition.
func (r *Repository) CreateProject(ctx context.Context, ownerID, title string) (*vocab.Project, error) {
	if err := r.checkOwner(ownerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, vocab.ValidationError("title is required")
	}

	project := vocab.Project{
		ID:        r.newID(),
		OwnerID:   ownerID,
		Title:     title,
		IsSynced:  true,
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, owner_id, title, is_synced, share_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		project.ID, project.OwnerID, project.Title, project.IsSynced, project.ShareID, project.CreatedAt,
	); err != nil {
		return nil, wrapDB("postgres.CreateProject", err)
	}
	return &project, nil
}

// GetProjects returns the owner's projects, newest first.
func (r *Repository) GetProjects(ctx context.Context, ownerID string) ([]vocab.Project, error) {
	if err := r.checkOwner(ownerID); err != nil {
		return nil, err
	}

	var projects []vocab.Project
	if err := r.db.SelectContext(ctx, &projects,
		"SELECT * FROM projects WHERE owner_id = $1 ORDER BY created_at DESC, id", ownerID,
	); err != nil {
		return nil, wrapDB("postgres.GetProjects", err)
	}
	return projects, nil
}

// GetProject returns one of the owner's projects, or (nil, nil) when the id
// is unknown or belongs to another tenant.
func (r *Repository) GetProject(ctx context.Context, id string) (*vocab.Project, error) {
	var project vocab.Project
	if err := r.db.GetContext(ctx, &project,
		"SELECT * FROM projects WHERE id = $1 AND owner_id = $2", id, r.ownerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("postgres.GetProject", err)
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
	args = append(args, id, r.ownerID)

	query := r.db.Rebind("UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ? AND owner_id = ?")
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDB("postgres.UpdateProject", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDB("postgres.UpdateProject", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("project", id)
	}
	return nil
}

// DeleteProject removes the project in a single statement; the words go with
// it through the schema's ON DELETE CASCADE.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = $1 AND owner_id = $2", id, r.ownerID,
	)
	if err != nil {
		return wrapDB("postgres.DeleteProject", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDB("postgres.DeleteProject", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("project", id)
	}
	return nil
}

var wordColumns = []string{
	"id", "project_id", "english", "japanese", "distractors",
	"example_sentence", "example_sentence_ja", "status", "ease_factor",
	"interval_days", "repetition_count", "is_favorite", "last_reviewed_at",
	"next_review_at", "position", "created_at",
}

// CreateWords inserts the batch atomically with a multi-row INSERT and
// returns the created words in input order.
func (r *Repository) CreateWords(ctx context.Context, projectID string, inputs []vocab.WordInput) ([]vocab.Word, error) {
	if err := vocab.ValidateWordInputs(inputs); err != nil {
		return nil, err
	}

	var words []vocab.Word
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists,
			"SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2", projectID, r.ownerID,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return vocab.NotFoundError("project", projectID)
			}
			return wrapDB("postgres.CreateWords", err)
		}

		var maxPosition int
		if err := tx.GetContext(ctx, &maxPosition,
			"SELECT COALESCE(MAX(position), -1) FROM words WHERE project_id = $1", projectID,
		); err != nil {
			return wrapDB("postgres.CreateWords", err)
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

		query := tx.Rebind(database.BuildMultiRowInsert("words", wordColumns, len(words)))
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
			return wrapDB("postgres.CreateWords", err)
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
		`SELECT w.* FROM words w
		JOIN projects p ON p.id = w.project_id
		WHERE w.project_id = $1 AND p.owner_id = $2
		ORDER BY w.created_at ASC, w.position ASC`, projectID, r.ownerID,
	); err != nil {
		return nil, wrapDB("postgres.GetWords", err)
	}
	return words, nil
}

// GetWord returns one word, or (nil, nil) when the id is unknown or belongs
// to another tenant.
func (r *Repository) GetWord(ctx context.Context, id string) (*vocab.Word, error) {
	var word vocab.Word
	if err := r.db.GetContext(ctx, &word,
		`SELECT w.* FROM words w
		JOIN projects p ON p.id = w.project_id
		WHERE w.id = $1 AND p.owner_id = $2`, id, r.ownerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("postgres.GetWord", err)
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
	args = append(args, id, r.ownerID)

	query := r.db.Rebind("UPDATE words SET " + strings.Join(sets, ", ") +
		" WHERE id = ? AND project_id IN (SELECT id FROM projects WHERE owner_id = ?)")
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDB("postgres.UpdateWord", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDB("postgres.UpdateWord", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("word", id)
	}
	return nil
}

// DeleteWord removes one of the owner's words.
func (r *Repository) DeleteWord(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM words WHERE id = $1 AND project_id IN (SELECT id FROM projects WHERE owner_id = $2)",
		id, r.ownerID,
	)
	if err != nil {
		return wrapDB("postgres.DeleteWord", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDB("postgres.DeleteWord", err)
	}
	if affected == 0 {
		return vocab.NotFoundError("word", id)
	}
	return nil
}

// DeleteWordsByProject removes every word in the project, which must exist
// and belong to the owner. A project with no words is not an error.
func (r *Repository) DeleteWordsByProject(ctx context.Context, projectID string) error {
	var exists int
	if err := r.db.GetContext(ctx, &exists,
		"SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2", projectID, r.ownerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vocab.NotFoundError("project", projectID)
		}
		return wrapDB("postgres.DeleteWordsByProject", err)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE project_id = $1", projectID); err != nil {
		return wrapDB("postgres.DeleteWordsByProject", err)
	}
	return nil
}
