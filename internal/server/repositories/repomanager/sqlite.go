package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/signly/internal/dbx"
	"github.com/dmitrijs2005/signly/internal/server/migrations"
	"github.com/dmitrijs2005/signly/internal/server/repositories/creators"
	"github.com/dmitrijs2005/signly/internal/server/repositories/documents"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Creators(db dbx.DBTX) creators.Repository {
	return creators.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded sqlite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
