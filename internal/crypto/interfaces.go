package crypto

import "github.com/ameledin/go-note-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/encryption_engine_mock.go -package=mock

// EncryptionEngine performs all client-side cryptography for note content.
// It knows nothing about storage, the network or the notes themselves: both
// plaintext and password are opaque strings to it.
//
// Scheme:
//
//	salt, iv = 16 / 12 random bytes per call     (never reused)
//	key      = PBKDF2-SHA256(password, salt)     (100 000 iterations, 256 bit)
//	blob     = AES-256-GCM(key, iv, plaintext)   (tag appended)
//
// The derived key is ephemeral: it exists only for the duration of a single
// call and is never persisted.
type EncryptionEngine interface {
	// Encrypt encrypts plaintext with a key derived from password and a
	// fresh random salt, under a fresh random nonce. Ciphertext, salt and
	// nonce are each independently base64 encoded in the result.
	// Fails with [ErrEncryptionFailed] if the secure random source or a
	// cipher primitive is unavailable. Error messages never contain the
	// plaintext or the password.
	Encrypt(plaintext, password string) (models.EncryptionData, error)

	// Decrypt reverses Encrypt. It decodes the three base64 fields, derives
	// the key with the same fixed KDF parameters and opens the AES-GCM
	// ciphertext. Tag verification fails closed: a wrong password, a
	// tampered field or malformed encoding all return [ErrDecryptionFailed]
	// with no further detail, so callers cannot distinguish the causes.
	Decrypt(ciphertext models.Ciphertext, password, salt, iv string) (string, error)

	// ValidatePassword reports whether password decrypts the payload.
	// It never returns an error: every failure mode, including malformed
	// input, normalizes to false. Used to gate destructive actions on
	// encrypted notes before they are allowed to proceed.
	ValidatePassword(ciphertext models.Ciphertext, password, salt, iv string) bool

	// GenerateSecurePassword returns a random printable password of exactly
	// length characters drawn from a 4-class character set. Characters are
	// selected with rejection sampling so the distribution is unbiased.
	// A non-positive length falls back to [DefaultPasswordLength].
	GenerateSecurePassword(length int) (string, error)
}

// PasswordStrengthScorer rates candidate passwords for the UI.
type PasswordStrengthScorer interface {
	// Score returns a 0..6 strength score plus one improvement hint per
	// unmet criterion. Pure and total: it never fails, for any input.
	Score(password string) models.PasswordStrengthAssessment
}
