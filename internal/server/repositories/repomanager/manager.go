package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/signly/internal/dbx"
	"github.com/dmitrijs2005/signly/internal/logging"
	"github.com/dmitrijs2005/signly/internal/server/repositories/creators"
	"github.com/dmitrijs2005/signly/internal/server/repositories/documents"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx and
// knows how to migrate its schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Documents(db dbx.DBTX) documents.Repository
	Creators(db dbx.DBTX) creators.Repository
}

// Storage backends.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to the chosen backend, verifies the connection and applies
// migrations. The caller owns the returned *sql.DB.
func Open(ctx context.Context, storage, dsn string, log logging.Logger) (*sql.DB, RepositoryManager, error) {
	var (
		driver string
		m      RepositoryManager
	)

	switch storage {
	case SQLite:
		driver, m = "sqlite", NewSQLiteRepositoryManager()
	case Postgres:
		driver, m = "pgx", NewPostgresRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", storage)
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", storage, err)
	}
	if storage == SQLite {
		// One writer at a time; also keeps in-memory databases on one connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", storage, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s: %w", storage, err)
	}

	log.Info(ctx, "storage ready", "storage", storage)
	return db, m, nil
}
