// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/ameledin/go-note-vault/internal/adapter"
	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/store"
	"github.com/ameledin/go-note-vault/models"
)

type aiService struct {
	notes    store.NoteRepository
	gateway  adapter.AIGateway
	disabled bool

	logger *logger.Logger
}

func NewAIService(notes store.NoteRepository, gateway adapter.AIGateway, cfg config.AI, logger *logger.Logger) AIService {
	return &aiService{
		notes:    notes,
		gateway:  gateway,
		disabled: cfg.Disabled,
		logger:   logger,
	}
}

// plainContent loads the note and returns its content, refusing encrypted
// notes. This is the single chokepoint through which note text reaches the
// gateway.
func (a *aiService) plainContent(ctx context.Context, noteID string) (string, error) {
	if a.disabled {
		return "", ErrAIDisabled
	}

	note, err := a.notes.GetNote(ctx, noteID)
	if err != nil {
		return "", fmt.Errorf("load note for ai request: %w", err)
	}
	if note.IsEncrypted {
		return "", ErrNoteEncrypted
	}

	return note.Content, nil
}

func (a *aiService) CheckGrammar(ctx context.Context, noteID string) ([]models.GrammarIssue, error) {
	text, err := a.plainContent(ctx, noteID)
	if err != nil {
		return nil, err
	}

	return a.gateway.CheckGrammar(ctx, text)
}

func (a *aiService) Summarize(ctx context.Context, noteID string) (models.NoteInsight, error) {
	text, err := a.plainContent(ctx, noteID)
	if err != nil {
		return models.NoteInsight{}, err
	}

	return a.gateway.Insights(ctx, text)
}

func (a *aiService) SuggestTags(ctx context.Context, noteID string) ([]string, error) {
	text, err := a.plainContent(ctx, noteID)
	if err != nil {
		return nil, err
	}

	return a.gateway.SuggestTags(ctx, text)
}

func (a *aiService) Translate(ctx context.Context, noteID string, targetLanguage string) (models.Translation, error) {
	text, err := a.plainContent(ctx, noteID)
	if err != nil {
		return models.Translation{}, err
	}

	return a.gateway.Translate(ctx, text, targetLanguage)
}
