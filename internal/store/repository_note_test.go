// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func testContext() context.Context {
	log := zerolog.Nop()
	return log.WithContext(context.Background())
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows(noteColumns)
	for _, n := range notes {
		row, _ := toNoteRow(n)
		rows.AddRow(
			row.id, row.title, row.content, row.tags, row.category,
			row.isEncrypted, row.encrypted, row.salt, row.iv,
			row.createdAt, row.updatedAt,
		)
	}
	return rows
}

func TestNoteRepository_SaveNote(t *testing.T) {
	now := time.Now()
	note := models.Note{
		ID:        "note-1",
		Title:     "groceries",
		Content:   "milk, eggs",
		Tags:      []string{"home"},
		Category:  "personal",
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO notes").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveNote(testContext(), note)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO notes").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveNote(testContext(), note)
		assert.ErrorIs(t, err, ErrNoteNotSaved)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO notes").
			WillReturnError(assert.AnError)

		err := repo.SaveNote(testContext(), note)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNoteRepository_GetNote(t *testing.T) {
	t.Run("found plain note", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		want := models.Note{
			ID:       "note-1",
			Title:    "groceries",
			Content:  "milk, eggs",
			Tags:     []string{"home", "errands"},
			Category: "personal",
		}
		mock.ExpectQuery("SELECT (.+) FROM notes").
			WithArgs("note-1").
			WillReturnRows(noteRows(want))

		got, err := repo.GetNote(testContext(), "note-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("found encrypted note", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		want := models.Note{
			ID:          "note-2",
			Title:       "secret" + models.EncryptedTitleSuffix,
			Content:     models.EncryptedContentPlaceholder,
			IsEncrypted: true,
			EncryptionData: &models.EncryptionData{
				Encrypted: "Y2lwaGVydGV4dA==",
				Salt:      "c2FsdHNhbHRzYWx0cw==",
				IV:        "aXZpdml2aXZpdg==",
			},
		}
		mock.ExpectQuery("SELECT (.+) FROM notes").
			WithArgs("note-2").
			WillReturnRows(noteRows(want))

		got, err := repo.GetNote(testContext(), "note-2")
		require.NoError(t, err)
		require.NotNil(t, got.EncryptionData)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM notes").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(noteColumns))

		_, err := repo.GetNote(testContext(), "missing")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestNoteRepository_GetAllNotes(t *testing.T) {
	t.Run("returns all notes", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		first := models.Note{ID: "note-1", Title: "a", Content: "x"}
		second := models.Note{ID: "note-2", Title: "b", Content: "y", Tags: []string{"work"}}

		mock.ExpectQuery("SELECT (.+) FROM notes").
			WillReturnRows(noteRows(first, second))

		notes, err := repo.GetAllNotes(testContext(), NoteFilter{})
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, first, notes[0])
		assert.Equal(t, second, notes[1])
	})

	t.Run("filter is passed through as args", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM notes").
			WithArgs("work", `%"urgent"%`).
			WillReturnRows(sqlmock.NewRows(noteColumns))

		notes, err := repo.GetAllNotes(testContext(), NoteFilter{Category: "work", Tag: "urgent"})
		require.NoError(t, err)
		assert.Empty(t, notes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM notes").
			WillReturnError(assert.AnError)

		_, err := repo.GetAllNotes(testContext(), NoteFilter{})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestNoteRepository_UpdateNote(t *testing.T) {
	note := models.Note{ID: "note-1", Title: "updated", Content: "new content"}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE notes SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateNote(testContext(), note)
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE notes SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNote(testContext(), note)
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("note-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteNote(testContext(), "note-1")
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteNote(testContext(), "missing")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}
