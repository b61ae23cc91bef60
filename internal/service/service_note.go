// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ameledin/go-note-vault/internal/crypto"
	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/store"
	"github.com/ameledin/go-note-vault/internal/utils"
	"github.com/ameledin/go-note-vault/internal/validators"
	"github.com/ameledin/go-note-vault/models"
)

// Password acceptance threshold for encrypting a note. Enforced here, not in
// the scorer: the scorer only measures, the service decides.
const (
	minEncryptionScore     = 3
	minEncryptionPasswdLen = 8
)

type noteService struct {
	notes  store.NoteRepository
	engine crypto.EncryptionEngine
	scorer crypto.PasswordStrengthScorer
	ids    *utils.UUIDGenerator

	validate validators.Validator
	logger   *logger.Logger
}

func NewNoteService(notes store.NoteRepository, engine crypto.EncryptionEngine, scorer crypto.PasswordStrengthScorer, logger *logger.Logger) NoteService {
	return &noteService{
		notes:    notes,
		engine:   engine,
		scorer:   scorer,
		ids:      utils.NewUUIDGenerator(),
		validate: validators.NewNoteValidator(),
		logger:   logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validate.Validate(ctx, note, validators.FieldTitle, validators.FieldTags); err != nil {
		return models.Note{}, err
	}

	now := time.Now().UTC()
	note.ID = s.ids.Generate()
	note.IsEncrypted = false
	note.EncryptionData = nil
	note.CreatedAt = &now
	note.UpdatedAt = &now

	if err := s.notes.SaveNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("save created note: %w", err)
	}

	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	return s.notes.GetNote(ctx, id)
}

func (s *noteService) ListNotes(ctx context.Context, filter store.NoteFilter) ([]models.Note, error) {
	return s.notes.GetAllNotes(ctx, filter)
}

func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	prev, err := s.notes.GetNote(ctx, note.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("load existing note: %w", err)
	}
	if prev.IsEncrypted {
		return models.Note{}, ErrNoteEncrypted
	}
	if err = s.validate.Validate(ctx, note, validators.FieldTitle, validators.FieldTags); err != nil {
		return models.Note{}, err
	}

	now := time.Now().UTC()
	updated := prev
	updated.Title = note.Title
	updated.Content = note.Content
	updated.Tags = note.Tags
	updated.Category = note.Category
	updated.UpdatedAt = &now

	if err = s.notes.UpdateNote(ctx, updated); err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("load note for delete: %w", err)
	}
	if note.IsEncrypted {
		return ErrNoteEncrypted
	}

	return s.notes.DeleteNote(ctx, id)
}

func (s *noteService) EncryptNote(ctx context.Context, id string, password string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("load note for encryption: %w", err)
	}
	if note.IsEncrypted {
		return models.Note{}, ErrNoteEncrypted
	}

	assessment := s.scorer.Score(password)
	if assessment.Score < minEncryptionScore || len(password) < minEncryptionPasswdLen {
		return models.Note{}, fmt.Errorf("%w: %s", ErrWeakPassword, strings.Join(assessment.Feedback, "; "))
	}

	plaintext, err := json.Marshal(models.NotePlaintext{
		Title:    note.Title,
		Content:  note.Content,
		Tags:     note.Tags,
		Category: note.Category,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("encode note plaintext: %w", err)
	}

	encData, err := s.engine.Encrypt(string(plaintext), password)
	if err != nil {
		log.Err(err).
			Str("func", "noteService.EncryptNote").
			Str("note_id", id).
			Msg("encryption failed")
		return models.Note{}, err
	}

	now := time.Now().UTC()
	note.Title = note.Title + models.EncryptedTitleSuffix
	note.Content = models.EncryptedContentPlaceholder
	note.Tags = nil
	note.Category = ""
	note.IsEncrypted = true
	note.EncryptionData = &encData
	note.UpdatedAt = &now

	if err = s.notes.UpdateNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("persist encrypted note: %w", err)
	}

	return note, nil
}

func (s *noteService) DecryptNote(ctx context.Context, id string, password string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("load note for decryption: %w", err)
	}

	return s.decrypt(note, password)
}

// decrypt restores the plaintext fields of an encrypted note in memory. All
// decryption failures collapse to ErrWrongPassword.
func (s *noteService) decrypt(note models.Note, password string) (models.Note, error) {
	if !note.IsEncrypted || note.EncryptionData == nil {
		return models.Note{}, ErrNoteNotEncrypted
	}

	plaintext, err := s.engine.Decrypt(
		note.EncryptionData.Encrypted,
		password,
		note.EncryptionData.Salt,
		note.EncryptionData.IV,
	)
	if err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return models.Note{}, ErrWrongPassword
		}
		return models.Note{}, err
	}

	var fields models.NotePlaintext
	if err = json.Unmarshal([]byte(plaintext), &fields); err != nil {
		return models.Note{}, ErrWrongPassword
	}

	note.Title = fields.Title
	note.Content = fields.Content
	note.Tags = fields.Tags
	note.Category = fields.Category
	note.IsEncrypted = false
	note.EncryptionData = nil

	return note, nil
}

func (s *noteService) SwitchToDecrypted(ctx context.Context, id string, password string) (models.Note, error) {
	note, err := s.DecryptNote(ctx, id, password)
	if err != nil {
		return models.Note{}, err
	}

	now := time.Now().UTC()
	note.UpdatedAt = &now

	if err = s.notes.UpdateNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("persist decrypted note: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteEncrypted(ctx context.Context, id string, password string) error {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("load note for delete: %w", err)
	}
	if !note.IsEncrypted || note.EncryptionData == nil {
		return ErrNoteNotEncrypted
	}

	ok := s.engine.ValidatePassword(
		note.EncryptionData.Encrypted,
		password,
		note.EncryptionData.Salt,
		note.EncryptionData.IV,
	)
	if !ok {
		return ErrWrongPassword
	}

	return s.notes.DeleteNote(ctx, id)
}

func (s *noteService) AssessPassword(password string) models.PasswordStrengthAssessment {
	return s.scorer.Score(password)
}

func (s *noteService) GeneratePassword(length int) (string, error) {
	return s.engine.GenerateSecurePassword(length)
}
