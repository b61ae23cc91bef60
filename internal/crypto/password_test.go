package crypto

import (
	"strings"
	"testing"
)

func TestGenerateSecurePassword_ExactLength(t *testing.T) {
	engine := NewEncryptionEngine()

	for length := 8; length <= 64; length++ {
		password, err := engine.GenerateSecurePassword(length)
		if err != nil {
			t.Fatalf("GenerateSecurePassword(%d) error: %v", length, err)
		}
		if len(password) != length {
			t.Fatalf("len = %d, want %d", len(password), length)
		}
	}
}

func TestGenerateSecurePassword_DefaultLength(t *testing.T) {
	engine := NewEncryptionEngine()

	password, err := engine.GenerateSecurePassword(0)
	if err != nil {
		t.Fatalf("GenerateSecurePassword error: %v", err)
	}
	if len(password) != DefaultPasswordLength {
		t.Fatalf("len = %d, want %d", len(password), DefaultPasswordLength)
	}
}

func TestGenerateSecurePassword_CharsetOnly(t *testing.T) {
	engine := NewEncryptionEngine()

	password, err := engine.GenerateSecurePassword(256)
	if err != nil {
		t.Fatalf("GenerateSecurePassword error: %v", err)
	}
	for _, c := range password {
		if !strings.ContainsRune(passwordCharset, c) {
			t.Fatalf("character %q not in charset", c)
		}
	}
}

func TestGenerateSecurePassword_Distinct(t *testing.T) {
	engine := NewEncryptionEngine()

	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		password, err := engine.GenerateSecurePassword(16)
		if err != nil {
			t.Fatalf("GenerateSecurePassword error: %v", err)
		}
		if seen[password] {
			t.Fatalf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestScore_Criteria(t *testing.T) {
	scorer := NewStrengthScorer()

	cases := []struct {
		name     string
		password string
		score    int
	}{
		{"empty", "", 0},
		{"lowercase only short", "abc", 1},
		{"lowercase length 8", "aaaaaaaa", 2},
		{"all classes length 8", "Aa1!Aa1!", 5},
		{"all classes length 12", "Aa1!Aa1!Aa1!", 6},
		{"upper digits length 12", "AAAA1111BBBB", 4},
	}

	for _, tc := range cases {
		got := scorer.Score(tc.password)
		if got.Score != tc.score {
			t.Fatalf("%s: score = %d, want %d", tc.name, got.Score, tc.score)
		}
		if want := 6 - tc.score; len(got.Feedback) != want {
			t.Fatalf("%s: feedback entries = %d, want %d", tc.name, len(got.Feedback), want)
		}
	}
}

func TestScore_Monotonicity(t *testing.T) {
	scorer := NewStrengthScorer()

	weak := scorer.Score("aaaaaaaa")
	strong := scorer.Score("Aa1!Aa1!")
	if weak.Score >= strong.Score {
		t.Fatalf("expected %d < %d", weak.Score, strong.Score)
	}
}

func TestScore_TotalOnExtremeInput(t *testing.T) {
	scorer := NewStrengthScorer()

	// Must not panic or misbehave for empty, huge, or non-ASCII input.
	empty := scorer.Score("")
	if empty.Score != 0 || len(empty.Feedback) == 0 {
		t.Fatalf("empty input: score = %d, feedback = %v", empty.Score, empty.Feedback)
	}

	huge := scorer.Score(strings.Repeat("Aa1!", 100_000))
	if huge.Score != 6 {
		t.Fatalf("huge input: score = %d, want 6", huge.Score)
	}

	if got := scorer.Score("пароль密码"); got.Score == 0 {
		t.Fatalf("non-ASCII input should still earn class points, got 0")
	}
}

func TestGeneratedPasswordExceedsThreshold(t *testing.T) {
	engine := NewEncryptionEngine()
	scorer := NewStrengthScorer()

	// Acceptance threshold for enabling encryption is score >= 3. A
	// 16-character output over a 4-class charset clears it essentially
	// always; length alone contributes 2 points.
	for i := 0; i < 16; i++ {
		password, err := engine.GenerateSecurePassword(16)
		if err != nil {
			t.Fatalf("GenerateSecurePassword error: %v", err)
		}
		if got := scorer.Score(password); got.Score < 3 {
			t.Fatalf("generated password scored %d: %q", got.Score, password)
		}
	}
}
