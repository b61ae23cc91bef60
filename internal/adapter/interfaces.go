// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the external AI gateway.
//
// The primary abstraction is [AIGateway], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAIGateway]).
//
// Only plaintext note content is ever handed to this package; the service
// layer refuses to call it for encrypted notes. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/ameledin/go-note-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ai_gateway_mock.go -package=mock

// AIGateway defines transport-agnostic communication with the AI gateway.
// Implementations are responsible for serialisation, API key management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type AIGateway interface {
	// CheckGrammar submits plaintext note content for grammar and spelling
	// analysis and returns the issues found, each with an offset into the
	// submitted text. An empty slice means the text is clean.
	CheckGrammar(ctx context.Context, text string) ([]models.GrammarIssue, error)

	// Insights submits plaintext note content for summarisation and returns
	// a short summary plus the key points extracted from the text.
	Insights(ctx context.Context, text string) (models.NoteInsight, error)

	// SuggestTags submits plaintext note content and returns a list of
	// suggested tags derived from it.
	SuggestTags(ctx context.Context, text string) ([]string, error)

	// Translate submits plaintext note content and returns its translation
	// into the requested target language (e.g. "de", "fr").
	Translate(ctx context.Context, text string, targetLanguage string) (models.Translation, error)
}
