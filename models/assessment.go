package models

// PasswordStrengthAssessment is the transient, UI-facing result of scoring a
// candidate password. It is a pure function of the password string and is
// never persisted.
type PasswordStrengthAssessment struct {
	// Score is the strength score in the range 0..6: one point each for
	// length >= 8, length >= 12, and presence of lowercase, uppercase,
	// digit and symbol characters.
	Score int `json:"score"`

	// Feedback contains a human-readable hint for every criterion the
	// password did not meet. Empty for a maximal-strength password.
	Feedback []string `json:"feedback,omitempty"`
}
