package crypto

import "errors"

var (
	// ErrEncryptionFailed indicates that an encrypt operation could not be
	// completed (secure random source or cipher primitive unavailable).
	// The message never exposes plaintext or key material.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned on any decrypt failure regardless of
	// root cause. Wrong password and corrupted data are indistinguishable
	// by design to avoid a tamper oracle.
	ErrDecryptionFailed = errors.New("wrong password or corrupted data")
)
