// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ameledin/go-note-vault/models"
)

const (
	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32

	// SaltSize is the length of the random key-derivation salt in bytes.
	SaltSize = 16

	// NonceSize is the standard AES-GCM nonce length in bytes.
	NonceSize = 12

	// KDFIterations is the fixed PBKDF2-SHA256 iteration count. It is a
	// constant of the engine rather than a per-payload field: changing it
	// makes previously encrypted payloads undecryptable.
	KDFIterations = 100_000
)

// encryptionEngine is the private implementation of [EncryptionEngine].
// It carries no mutable state; a single value can be shared by any number
// of concurrent callers.
type encryptionEngine struct{}

// NewEncryptionEngine constructs the production [EncryptionEngine]:
// PBKDF2-SHA256 key derivation at 100 000 iterations and AES-256-GCM
// authenticated encryption.
func NewEncryptionEngine() EncryptionEngine {
	return &encryptionEngine{}
}

// deriveKey stretches password and salt into a 256-bit AES key. Both
// Encrypt and Decrypt must use identical parameters or tag verification
// fails.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, KDFIterations, KeySize, sha256.New)
}

// Encrypt implements [EncryptionEngine]. Salt and nonce are freshly drawn
// from the OS CSPRNG on every call; reusing a (key, nonce) pair would break
// the GCM confidentiality and integrity guarantees.
func (e *encryptionEngine) Encrypt(plaintext, password string) (models.EncryptionData, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptionData{}, fmt.Errorf("generate salt: %w", ErrEncryptionFailed)
	}

	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptionData{}, fmt.Errorf("generate nonce: %w", ErrEncryptionFailed)
	}

	key := deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return models.EncryptionData{}, fmt.Errorf("create cipher: %w", ErrEncryptionFailed)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.EncryptionData{}, fmt.Errorf("create gcm: %w", ErrEncryptionFailed)
	}

	// Seal appends the 16-byte authentication tag to the ciphertext.
	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return models.EncryptionData{
		Encrypted: models.Ciphertext(base64.StdEncoding.EncodeToString(ciphertext)),
		Salt:      base64.StdEncoding.EncodeToString(salt),
		IV:        base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt implements [EncryptionEngine]. Every failure path returns the bare
// [ErrDecryptionFailed]: the caller must not be able to tell a wrong password
// from tampered ciphertext or a malformed field.
func (e *encryptionEngine) Decrypt(ciphertext models.Ciphertext, password, salt, iv string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(string(ciphertext))
	if err != nil {
		return "", ErrDecryptionFailed
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	ivBytes, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(ivBytes) != NonceSize {
		return "", ErrDecryptionFailed
	}

	key := deriveKey(password, saltBytes)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, ivBytes, blob, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// ValidatePassword implements [EncryptionEngine].
func (e *encryptionEngine) ValidatePassword(ciphertext models.Ciphertext, password, salt, iv string) bool {
	_, err := e.Decrypt(ciphertext, password, salt, iv)
	return err == nil
}
