package creators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, creator string) ([]string, error) {
	query :=
		`SELECT document_ids FROM creators
		 WHERE creator = $1
		 `

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, creator).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return decodeIDs(raw)
}

func (r *PostgresRepository) AddID(ctx context.Context, creator, id string) error {
	query :=
		`INSERT INTO creators (creator, document_ids)
		 VALUES ($1, jsonb_build_array($2::text))
		 ON CONFLICT (creator) DO UPDATE
		 SET document_ids = creators.document_ids || jsonb_build_array($2::text)
		 `

	if _, err := r.db.ExecContext(ctx, query, creator, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveID relies on jsonb "-" which drops matching string elements and
// keeps the order of the rest.
func (r *PostgresRepository) RemoveID(ctx context.Context, creator, id string) error {
	query :=
		`UPDATE creators
		 SET document_ids = document_ids - $2::text
		 WHERE creator = $1 AND document_ids @> jsonb_build_array($2::text)
		 `

	res, err := r.db.ExecContext(ctx, query, creator, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
