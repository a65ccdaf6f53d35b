package store

import (
	"context"
	"fmt"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
)

type Storages struct {
	DocumentRepository DocumentRepository
	HistoryRepository  HistoryRepository
}

// NewStorages connects to the configured database, applies migrations, and
// constructs every repository. The returned DB handle is shared by all
// repositories; callers own its lifetime.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}

	storages := &Storages{
		DocumentRepository: NewDocumentRepository(db, log),
		HistoryRepository:  NewHistoryRepository(db, log),
	}

	return storages, db, nil
}
