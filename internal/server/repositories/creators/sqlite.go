package creators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/dbx"
)

// SQLiteRepository keeps the id list as a JSON text column and edits it
// read-modify-write; callers run it inside a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, creator string) ([]string, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT document_ids FROM creators WHERE creator = ?`, creator).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return decodeIDs([]byte(raw))
}

func (r *SQLiteRepository) AddID(ctx context.Context, creator, id string) error {
	ids, err := r.Get(ctx, creator)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	raw, err := encodeIDs(appendID(ids, id))
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO creators (creator, document_ids)
		 VALUES (?, ?)
		 ON CONFLICT (creator) DO UPDATE SET document_ids = excluded.document_ids
		 `

	if _, err := r.db.ExecContext(ctx, query, creator, string(raw)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RemoveID(ctx context.Context, creator, id string) error {
	ids, err := r.Get(ctx, creator)
	if err != nil {
		return err
	}

	rest, ok := removeID(ids, id)
	if !ok {
		return common.ErrorNotFound
	}

	raw, err := encodeIDs(rest)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE creators SET document_ids = ? WHERE creator = ?`, string(raw), creator); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
