// Package storetest opens migrated in-memory SQLite databases for tests.
package storetest

import (
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/signly/internal/server/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

var (
	seq atomic.Int64
	// goose keeps its base FS and dialect in package state.
	gooseMu sync.Mutex
)

// OpenSQLite returns a fresh, fully migrated in-memory database that is
// closed when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", seq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	goose.SetLogger(goose.NopLogger())
	if err := goose.Up(db, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
