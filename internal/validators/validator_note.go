package validators

import (
	"context"
	"strings"

	"github.com/ameledin/go-note-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldID             = "id"
	FieldTitle          = "title"
	FieldTags           = "tags"
	FieldEncryptionData = "encryption_data"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldTags, FieldEncryptionData}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyID
			}
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldTags:
			for _, tag := range note.Tags {
				if strings.TrimSpace(tag) == "" {
					return ErrEmptyTag
				}
			}
		case FieldEncryptionData:
			if err := validateEncryptionState(note); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEncryptionState enforces the coupling between the IsEncrypted flag
// and the encryption triple: an encrypted note must carry a complete triple,
// a plain note must carry none.
func validateEncryptionState(note models.Note) error {
	if note.IsEncrypted {
		if note.EncryptionData == nil {
			return ErrMissingEncryptionData
		}
		if note.EncryptionData.Encrypted == "" ||
			note.EncryptionData.Salt == "" ||
			note.EncryptionData.IV == "" {
			return ErrIncompleteEncryptionData
		}
		return nil
	}

	if note.EncryptionData != nil {
		return ErrUnexpectedEncryptionData
	}
	return nil
}
