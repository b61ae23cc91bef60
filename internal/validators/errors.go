package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID                  = errors.New("note ID cannot be empty")
	ErrEmptyTitle               = errors.New("note title cannot be empty")
	ErrEmptyTag                 = errors.New("tags cannot contain empty values")
	ErrMissingEncryptionData    = errors.New("encrypted note must carry encryption data")
	ErrIncompleteEncryptionData = errors.New("encryption data must carry ciphertext, salt and iv")
	ErrUnexpectedEncryptionData = errors.New("plain note cannot carry encryption data")
)
