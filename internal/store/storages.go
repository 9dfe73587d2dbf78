package store

import "github.com/arnarb/leikir-api/internal/logger"

// Storages bundles every repository behind its interface so the service
// layer depends on one constructor-injected value.
type Storages struct {
	TeamRepository TeamRepository
	GameRepository GameRepository
}

// NewStorages wires the PostgreSQL repositories over a shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TeamRepository: NewTeamRepository(db, log),
		GameRepository: NewGameRepository(db, log),
	}
}
