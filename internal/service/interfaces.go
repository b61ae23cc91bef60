// SPDX-License-Identifier: Apache-2.0

// Package service contains the application layer of go-note-vault. It
// orchestrates the encryption engine, the local note repository, and the AI
// gateway, and enforces the rules the lower layers do not know about: the
// password acceptance threshold for encryption, the password gate before
// destructive actions, and the guarantee that encrypted content never leaves
// the device.
package service

import (
	"context"

	"github.com/ameledin/go-note-vault/internal/store"
	"github.com/ameledin/go-note-vault/models"
)

// NoteService manages the lifecycle of notes, including the transitions
// between plain and encrypted state.
type NoteService interface {
	// CreateNote stores a new plain note. The ID and timestamps are assigned
	// by the service; any values already present on the argument are ignored.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns a single note by ID. Encrypted notes are returned as
	// stored, with placeholder content and the encryption triple attached.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// ListNotes returns all notes matching the filter, most recently updated
	// first.
	ListNotes(ctx context.Context, filter store.NoteFilter) ([]models.Note, error)

	// UpdateNote replaces the editable fields of a plain note. Returns
	// ErrNoteEncrypted for encrypted notes; they must be decrypted first.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes a plain note. Returns ErrNoteEncrypted for encrypted
	// notes; use DeleteEncrypted, which requires the password.
	DeleteNote(ctx context.Context, id string) error

	// EncryptNote encrypts the note's plaintext fields with the supplied
	// password and persists placeholders in their place. The password must
	// meet the acceptance threshold (strength score of at least 3 and at
	// least 8 characters), otherwise ErrWeakPassword is returned with the
	// scorer's hints attached.
	EncryptNote(ctx context.Context, id string, password string) (models.Note, error)

	// DecryptNote returns the note with its plaintext fields restored in
	// memory. The stored record is left encrypted. Returns ErrWrongPassword
	// if the password does not match or the stored payload is corrupted; the
	// two causes are not distinguished.
	DecryptNote(ctx context.Context, id string, password string) (models.Note, error)

	// SwitchToDecrypted permanently converts an encrypted note back to a
	// plain one: it decrypts with the supplied password and persists the
	// restored plaintext fields.
	SwitchToDecrypted(ctx context.Context, id string, password string) (models.Note, error)

	// DeleteEncrypted removes an encrypted note after verifying the password
	// against the stored payload. Returns ErrWrongPassword without deleting
	// anything if verification fails.
	DeleteEncrypted(ctx context.Context, id string, password string) error

	// AssessPassword scores a candidate password. It never fails; any input
	// yields a score and a list of improvement hints.
	AssessPassword(password string) models.PasswordStrengthAssessment

	// GeneratePassword returns a random password of the given length drawn
	// from the engine's mixed-class charset. A non-positive length selects
	// the default.
	GeneratePassword(length int) (string, error)
}

// AIService exposes the AI-assisted features for plain notes. Every method
// loads the note first and returns ErrNoteEncrypted without contacting the
// gateway when the note is encrypted, and ErrAIDisabled when AI features are
// turned off in the configuration.
type AIService interface {
	CheckGrammar(ctx context.Context, noteID string) ([]models.GrammarIssue, error)
	Summarize(ctx context.Context, noteID string) (models.NoteInsight, error)
	SuggestTags(ctx context.Context, noteID string) ([]string, error)
	Translate(ctx context.Context, noteID string, targetLanguage string) (models.Translation, error)
}
