package store

import (
	"context"

	"github.com/ameledin/go-note-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteFilter narrows the result set of [NoteRepository.GetAllNotes].
// Zero-value fields are ignored.
type NoteFilter struct {
	// Category matches notes assigned to exactly this category.
	Category string

	// Tag matches notes carrying this tag.
	Tag string
}

// NoteRepository is the low-level local note store. It persists note records
// as-is: encryption and placeholder substitution happen in the service layer
// before a record reaches the repository, so the database never sees real
// plaintext of an encrypted note.
type NoteRepository interface {
	// SaveNote inserts a new note record.
	SaveNote(ctx context.Context, note models.Note) error

	// GetNote returns the note with the given ID.
	// Returns [ErrNoteNotFound] if no such note exists.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// GetAllNotes returns all notes matching filter, newest first.
	GetAllNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error)

	// UpdateNote overwrites the stored record with the same ID.
	// Returns [ErrNoteNotFound] if no such note exists.
	UpdateNote(ctx context.Context, note models.Note) error

	// DeleteNote removes the note with the given ID.
	// Returns [ErrNoteNotFound] if no such note exists.
	DeleteNote(ctx context.Context, id string) error
}
