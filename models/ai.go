package models

// GrammarIssue is a single problem reported by the AI grammar check.
type GrammarIssue struct {
	// Offset is the rune offset of the issue in the checked text.
	Offset int `json:"offset"`

	// Length is the rune length of the flagged span.
	Length int `json:"length"`

	// Message describes the problem.
	Message string `json:"message"`

	// Suggestion is the proposed replacement text, if any.
	Suggestion string `json:"suggestion,omitempty"`
}

// NoteInsight is the structured result of the AI summarize/insights feature.
type NoteInsight struct {
	// Summary is a short summary of the note content.
	Summary string `json:"summary"`

	// KeyPoints lists the main points extracted from the note.
	KeyPoints []string `json:"key_points,omitempty"`
}

// Translation is the result of translating a note into a target language.
type Translation struct {
	// Language is the target language code the text was translated into.
	Language string `json:"language"`

	// Text is the translated content.
	Text string `json:"text"`
}
