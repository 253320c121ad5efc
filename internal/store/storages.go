package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

const memoryDSNPrefix = "memory://"

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	TransactionRepository TransactionRepository

	db *DB
}

// NewStorages selects the backend by DSN: "memory://" builds the in-process
// repositories, "postgres://" and "postgresql://" connect to PostgreSQL and
// apply pending migrations before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	switch {
	case strings.HasPrefix(dsn, memoryDSNPrefix):
		log.Warn().Msg("using in-memory storage, data will be lost on restart")
		return NewMemoryStorages(), nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}

		return &Storages{
			UserRepository:        NewUserRepository(db, log),
			TransactionRepository: NewTransactionRepository(db, log),
			db:                    db,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// NewMemoryStorages returns empty in-memory repositories.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:        NewMemoryUserRepository(),
		TransactionRepository: NewMemoryTransactionRepository(),
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// redactDSN keeps only the scheme of dsn so that credentials never reach logs.
func redactDSN(dsn string) string {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return "<invalid>"
	}
	return scheme + "://..."
}
