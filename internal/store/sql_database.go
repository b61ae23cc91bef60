package store

import (
	"database/sql"

	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
