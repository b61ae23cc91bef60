package service

import (
	"github.com/ameledin/go-note-vault/internal/adapter"
	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/internal/crypto"
	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/store"
)

type Services struct {
	NoteService NoteService
	AIService   AIService
}

func NewServices(storages *store.Storages, gateway adapter.AIGateway, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	engine := crypto.NewEncryptionEngine()
	scorer := crypto.NewStrengthScorer()

	return &Services{
		NoteService: NewNoteService(storages.NoteRepository, engine, scorer, logger),
		AIService:   NewAIService(storages.NoteRepository, gateway, cfg.AI, logger),
	}
}
