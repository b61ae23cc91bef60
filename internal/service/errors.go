package service

import "errors"

var (
	ErrNoteEncrypted    = errors.New("note is encrypted")
	ErrNoteNotEncrypted = errors.New("note is not encrypted")
	ErrWeakPassword     = errors.New("password is too weak")
	ErrWrongPassword    = errors.New("wrong password or corrupted data")

	ErrAIDisabled = errors.New("ai features are disabled")
)
