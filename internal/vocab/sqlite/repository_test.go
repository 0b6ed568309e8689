package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvocab/scanvocab/internal/database"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestRepository_CreateProject(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		ownerID   string
		title     string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:    "creates a project with a trimmed title",
			ownerID: "local",
			title:   "  Airport Signs  ",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO projects \\(id, owner_id, title, is_synced, share_id, created_at\\) VALUES \\(\\?, \\?, \\?, \\?, \\?, \\?\\)").
					WithArgs("id-1", "local", "Airport Signs", false, nil, now).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "rejects a blank title",
			ownerID: "local",
			title:   "   ",
			wantErr: vocab.ErrValidation,
		},
		{
			name:    "rejects an empty owner",
			ownerID: "",
			title:   "Airport Signs",
			wantErr: vocab.ErrValidation,
		},
		{
			name:    "wraps database failures",
			ownerID: "local",
			title:   "Airport Signs",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO projects").
					WillReturnError(fmt.Errorf("disk I/O error"))
			},
			wantErr: vocab.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			repo.now = func() time.Time { return now }
			repo.newID = sequentialIDs()
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			got, err := repo.CreateProject(context.Background(), tt.ownerID, tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "id-1", got.ID)
			assert.Equal(t, "Airport Signs", got.Title)
			assert.Equal(t, now, got.CreatedAt)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetProject(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *vocab.Project
		wantErr   error
	}{
		{
			name: "returns the project",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "is_synced", "share_id", "created_at"}).
					AddRow("p1", "local", "Airport Signs", false, nil, now)
				mock.ExpectQuery("SELECT \\* FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnRows(rows)
			},
			want: &vocab.Project{ID: "p1", OwnerID: "local", Title: "Airport Signs", CreatedAt: now},
		},
		{
			name: "returns nil without an error for an unknown id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title", "is_synced", "share_id", "created_at"}))
			},
		},
		{
			name: "wraps database failures",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM projects WHERE id = \\?").
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: vocab.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			tt.setupMock(mock)

			got, err := repo.GetProject(context.Background(), "p1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateProject(t *testing.T) {
	tests := []struct {
		name      string
		update    vocab.ProjectUpdate
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:   "writes only the provided fields",
			update: vocab.ProjectUpdate{Title: lo.ToPtr("Renamed"), IsSynced: lo.ToPtr(true)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET title = \\?, is_synced = \\? WHERE id = \\?").
					WithArgs("Renamed", true, "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "clears the share id when set to empty",
			update: vocab.ProjectUpdate{ShareID: lo.ToPtr("")},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET share_id = \\? WHERE id = \\?").
					WithArgs(nil, "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "empty update is a no-op",
			update: vocab.ProjectUpdate{},
		},
		{
			name:    "rejects a blank title",
			update:  vocab.ProjectUpdate{Title: lo.ToPtr("  ")},
			wantErr: vocab.ErrValidation,
		},
		{
			name:   "unknown id fails with not found",
			update: vocab.ProjectUpdate{Title: lo.ToPtr("Renamed")},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET title = \\? WHERE id = \\?").
					WithArgs("Renamed", "p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: vocab.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			err = repo.UpdateProject(context.Background(), "p1", tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteProject(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "deletes the words before the project in one transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM words WHERE project_id = \\?").
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("DELETE FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "unknown id rolls back with not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM words WHERE project_id = \\?").
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: vocab.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			tt.setupMock(mock)

			err = repo.DeleteProject(context.Background(), "p1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateWords(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	inputs := []vocab.WordInput{
		{
			English:           "gate",
			Japanese:          "搭乗口",
			Distractors:       []string{"改札", "出口", "入口"},
			ExampleSentence:   "The gate closes at nine.",
			ExampleSentenceJa: "搭乗口は9時に閉まる。",
		},
		{
			English:     "baggage",
			Japanese:    "手荷物",
			Distractors: []string{"切符", "荷台", "座席"},
		},
	}

	tests := []struct {
		name      string
		inputs    []vocab.WordInput
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:   "creates the batch with a multi-row insert",
			inputs: inputs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT 1 FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
				mock.ExpectQuery("SELECT COALESCE\\(MAX\\(position\\), -1\\) FROM words WHERE project_id = \\?").
					WithArgs("p1").
					WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))
				mock.ExpectExec(regexp.QuoteMeta(database.BuildMultiRowInsert("words", wordColumns, 2))).
					WithArgs(
						"id-1", "p1", "gate", "搭乗口", `["改札","出口","入口"]`,
						"The gate closes at nine.", "搭乗口は9時に閉まる。", "new", 2.5,
						0, 0, false, nil, nil, 5, now,
						"id-2", "p1", "baggage", "手荷物", `["切符","荷台","座席"]`,
						"", "", "new", 2.5,
						0, 0, false, nil, nil, 6, now,
					).
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:   "unknown project rolls back with not found",
			inputs: inputs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT 1 FROM projects WHERE id = \\?").
					WithArgs("p1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: vocab.ErrNotFound,
		},
		{
			name:    "rejects an empty batch before touching the database",
			inputs:  nil,
			wantErr: vocab.ErrValidation,
		},
		{
			name: "rejects a word with the wrong distractor count",
			inputs: []vocab.WordInput{
				{English: "gate", Japanese: "搭乗口", Distractors: []string{"改札"}},
			},
			wantErr: vocab.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			repo.now = func() time.Time { return now }
			repo.newID = sequentialIDs()
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			got, err := repo.CreateWords(context.Background(), "p1", tt.inputs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.inputs))
			assert.Equal(t, "gate", got[0].English)
			assert.Equal(t, vocab.StatusNew, got[0].Status)
			assert.Equal(t, vocab.DefaultEaseFactor, got[0].EaseFactor)
			assert.Equal(t, 5, got[0].Position)
			assert.Equal(t, 6, got[1].Position)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetWords(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns the project words in insertion order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "project_id", "english", "japanese", "distractors",
					"example_sentence", "example_sentence_ja", "status", "ease_factor",
					"interval_days", "repetition_count", "is_favorite", "last_reviewed_at",
					"next_review_at", "position", "created_at",
				}).
					AddRow("w1", "p1", "gate", "搭乗口", `["改札","出口","入口"]`, "", "", "new", 2.5, 0, 0, false, nil, nil, 0, now).
					AddRow("w2", "p1", "baggage", "手荷物", `["切符","荷台","座席"]`, "", "", "review", 2.36, 1, 1, true, now, nil, 1, now)
				mock.ExpectQuery("SELECT \\* FROM words WHERE project_id = \\? ORDER BY created_at ASC, position ASC").
					WithArgs("p1").
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE project_id = \\?").
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			tt.setupMock(mock)

			got, err := repo.GetWords(context.Background(), "p1")
			if tt.wantErr {
				assert.ErrorIs(t, err, vocab.ErrUnavailable)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			assert.Equal(t, "gate", got[0].English)
			assert.Equal(t, vocab.StringList{"改札", "出口", "入口"}, got[0].Distractors)
			assert.Equal(t, vocab.StatusReview, got[1].Status)
			assert.True(t, got[1].IsFavorite)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateWord(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		update    vocab.WordUpdate
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "writes only the provided fields",
			update: vocab.WordUpdate{
				Status:         lo.ToPtr(vocab.StatusReview),
				LastReviewedAt: lo.ToPtr(now),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET status = \\?, last_reviewed_at = \\? WHERE id = \\?").
					WithArgs("review", now, "w1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "toggles the favorite flag alone",
			update: vocab.WordUpdate{IsFavorite: lo.ToPtr(true)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET is_favorite = \\? WHERE id = \\?").
					WithArgs(true, "w1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "empty update is a no-op",
			update: vocab.WordUpdate{},
		},
		{
			name:    "rejects an unknown status",
			update:  vocab.WordUpdate{Status: lo.ToPtr(vocab.Status("learned"))},
			wantErr: vocab.ErrValidation,
		},
		{
			name:    "rejects the wrong distractor count",
			update:  vocab.WordUpdate{Distractors: lo.ToPtr(vocab.StringList{"only one"})},
			wantErr: vocab.ErrValidation,
		},
		{
			name:   "unknown id fails with not found",
			update: vocab.WordUpdate{IsFavorite: lo.ToPtr(true)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET is_favorite = \\? WHERE id = \\?").
					WithArgs(true, "w1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: vocab.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			err = repo.UpdateWord(context.Background(), "w1", tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteWord(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "deletes the word",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM words WHERE id = \\?").
					WithArgs("w1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown id fails with not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM words WHERE id = \\?").
					WithArgs("w1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: vocab.ErrNotFound,
		},
		{
			name: "wraps database failures",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM words WHERE id = \\?").
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: vocab.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewRepository(sqlx.NewDb(db, "sqlite3"))
			tt.setupMock(mock)

			err = repo.DeleteWord(context.Background(), "w1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
