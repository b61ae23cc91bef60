// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Placeholder values persisted for an encrypted note. The title stays
// user-visible with a marker suffix; the body is replaced entirely.
const (
	// EncryptedTitleSuffix is appended to the user-visible title of an
	// encrypted note so the list view can still show which note it is.
	EncryptedTitleSuffix = " 🔒"

	// EncryptedContentPlaceholder replaces the body of an encrypted note.
	EncryptedContentPlaceholder = "This note is encrypted."
)

// Ciphertext is a string alias representing base64-encoded encrypted content.
// The actual structure and meaning of the data are unknown to the database.
type Ciphertext string

// EncryptionData is the self-sufficient encrypted representation of a note.
// Given the correct password, the three fields alone reconstruct the
// original plaintext; no other persisted state is required.
type EncryptionData struct {
	// Encrypted holds the AES-GCM ciphertext with the authentication tag
	// appended, base64 encoded.
	Encrypted Ciphertext `json:"encrypted"`

	// Salt is the random 16-byte key-derivation salt, base64 encoded.
	// Unique per encryption operation; not secret.
	Salt string `json:"salt"`

	// IV is the random 12-byte GCM nonce, base64 encoded.
	// Unique per encryption operation.
	IV string `json:"iv"`
}

// Note is the primary persistence model of the vault.
// When IsEncrypted is true, Title and Content hold only user-visible
// placeholders and EncryptionData carries the real payload.
type Note struct {
	// ID is the unique identifier of the note (UUID).
	ID string `json:"id"`

	// Title is the human-readable note title.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Tags contains optional user-assigned labels.
	Tags []string `json:"tags,omitempty"`

	// Category is an optional logical container used to group notes.
	Category string `json:"category,omitempty"`

	// IsEncrypted indicates whether the note content is encrypted.
	IsEncrypted bool `json:"is_encrypted"`

	// EncryptionData holds the encrypted payload when IsEncrypted is true.
	EncryptionData *EncryptionData `json:"encryption_data,omitempty"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt *time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at"`
}

// NotePlaintext is the serialized structure handed to the encryption engine.
// The engine itself is content-agnostic and treats the JSON encoding of this
// value as an opaque blob.
type NotePlaintext struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}
