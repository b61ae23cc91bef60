// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ameledin/go-note-vault/models"
)

// DefaultPasswordLength is used by GenerateSecurePassword when the caller
// passes a non-positive length.
const DefaultPasswordLength = 16

// passwordCharset spans all four character classes the strength scorer
// checks for (87 distinct characters). With length >= 12 the generated
// password exceeds the application acceptance threshold by construction.
const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{};:,.<>?"

// GenerateSecurePassword implements [EncryptionEngine]. Random bytes are
// rejection-sampled so no charset index is more likely than another.
func (e *encryptionEngine) GenerateSecurePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	// Largest multiple of len(passwordCharset) not exceeding 256; bytes at
	// or above it are discarded to avoid modulo bias.
	limit := 256 - 256%len(passwordCharset)

	var sb strings.Builder
	sb.Grow(length)

	buf := make([]byte, length)
	for sb.Len() < length {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("generate password: %w", ErrEncryptionFailed)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(passwordCharset[int(b)%len(passwordCharset)])
			if sb.Len() == length {
				break
			}
		}
	}

	return sb.String(), nil
}

// strengthScorer is the private implementation of [PasswordStrengthScorer].
type strengthScorer struct{}

// NewStrengthScorer constructs the production [PasswordStrengthScorer].
// The acceptance threshold (score >= 3 and length >= 8) is enforced by the
// caller; the scorer itself is advisory only.
func NewStrengthScorer() PasswordStrengthScorer {
	return &strengthScorer{}
}

// Score implements [PasswordStrengthScorer]. One point per criterion, one
// hint per unmet criterion, maximum 6.
func (s *strengthScorer) Score(password string) models.PasswordStrengthAssessment {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	var assessment models.PasswordStrengthAssessment
	criteria := []struct {
		met  bool
		hint string
	}{
		{len(password) >= 8, "Use at least 8 characters"},
		{len(password) >= 12, "Use 12 or more characters"},
		{hasLower, "Include lowercase letters"},
		{hasUpper, "Include uppercase letters"},
		{hasDigit, "Include numbers"},
		{hasSymbol, "Include symbols"},
	}
	for _, c := range criteria {
		if c.met {
			assessment.Score++
		} else {
			assessment.Feedback = append(assessment.Feedback, c.hint)
		}
	}

	return assessment
}
