// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// noteRow is the flat database representation of a [models.Note]. Tags are
// stored as a JSON array string; the encryption triple is nullable and only
// populated for encrypted notes.
type noteRow struct {
	id          string
	title       string
	content     string
	tags        string
	category    string
	isEncrypted bool
	encrypted   sql.NullString
	salt        sql.NullString
	iv          sql.NullString
	createdAt   *time.Time
	updatedAt   *time.Time
}

func toNoteRow(note models.Note) (noteRow, error) {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return noteRow{}, fmt.Errorf("%w: encode tags: %w", ErrBuildingSQLQuery, err)
	}

	row := noteRow{
		id:          note.ID,
		title:       note.Title,
		content:     note.Content,
		tags:        string(tagsJSON),
		category:    note.Category,
		isEncrypted: note.IsEncrypted,
		createdAt:   note.CreatedAt,
		updatedAt:   note.UpdatedAt,
	}
	if note.EncryptionData != nil {
		row.encrypted = sql.NullString{String: string(note.EncryptionData.Encrypted), Valid: true}
		row.salt = sql.NullString{String: note.EncryptionData.Salt, Valid: true}
		row.iv = sql.NullString{String: note.EncryptionData.IV, Valid: true}
	}

	return row, nil
}

func (r noteRow) toNote() (models.Note, error) {
	var tags []string
	if r.tags != "" {
		if err := json.Unmarshal([]byte(r.tags), &tags); err != nil {
			return models.Note{}, fmt.Errorf("%w: decode tags: %w", ErrScanningRow, err)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}

	note := models.Note{
		ID:          r.id,
		Title:       r.title,
		Content:     r.content,
		Tags:        tags,
		Category:    r.category,
		IsEncrypted: r.isEncrypted,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
	if r.isEncrypted && r.encrypted.Valid {
		note.EncryptionData = &models.EncryptionData{
			Encrypted: models.Ciphertext(r.encrypted.String),
			Salt:      r.salt.String,
			IV:        r.iv.String,
		}
	}

	return note, nil
}

func (n *noteRepository) SaveNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	row, err := toNoteRow(note)
	if err != nil {
		return err
	}

	query, args, err := buildInsertNoteQuery(row)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNote").
			Str("note_id", note.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNote").
			Str("note_id", note.ID).
			Msg("failed to execute insert for note")
		return fmt.Errorf("failed to save note (id=%s): %w", note.ID, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoteNotSaved
	}

	return nil
}

func (n *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row noteRow
	scanErr := n.DB.QueryRowContext(ctx, query, args...).Scan(
		&row.id,
		&row.title,
		&row.content,
		&row.tags,
		&row.category,
		&row.isEncrypted,
		&row.encrypted,
		&row.salt,
		&row.iv,
		&row.createdAt,
		&row.updatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "noteRepository.GetNote").
			Str("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return row.toNote()
}

func (n *noteRepository) GetAllNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAllNotes").
			Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note

	for rows.Next() {
		var row noteRow

		scanErr := rows.Scan(
			&row.id,
			&row.title,
			&row.content,
			&row.tags,
			&row.category,
			&row.isEncrypted,
			&row.encrypted,
			&row.salt,
			&row.iv,
			&row.createdAt,
			&row.updatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetAllNotes").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		note, err := row.toNote()
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetAllNotes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note rows: %w", rowsErr)
	}

	return notes, nil
}

func (n *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	row, err := toNoteRow(note)
	if err != nil {
		return err
	}

	query, args, err := buildUpdateNoteQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", note.ID).
			Msg("failed to execute update for note")
		return fmt.Errorf("failed to update note (id=%s): %w", note.ID, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (n *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to execute delete for note")
		return fmt.Errorf("failed to delete note (id=%s): %w", id, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
