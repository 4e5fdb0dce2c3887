package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/dbx"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t.UTC(), Valid: !t.IsZero()}
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) error {
	signers, err := encodeSigners(doc.Signers)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO documents (id, creator, content_digest, title, signing_deadline, created_at, completed_at, cancelled_at, attachment_key, signers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err = r.db.ExecContext(ctx, query,
		doc.ID, string(doc.Creator), doc.ContentDigest, doc.Title,
		doc.SigningDeadline.UTC(), doc.CreatedAt.UTC(),
		nullTime(doc.CompletedAt), nullTime(doc.CancelledAt),
		doc.AttachmentKey, signers)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", common.ErrDuplicateDocument, doc.ID)
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

const pgSelectDocument = `SELECT id, creator, content_digest, title, signing_deadline, created_at, completed_at, cancelled_at, attachment_key, signers
		 FROM documents
		 WHERE id = $1`

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Document, error) {
	return r.get(ctx, pgSelectDocument, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Document, error) {
	return r.get(ctx, pgSelectDocument+" FOR UPDATE", id)
}

func (r *PostgresRepository) get(ctx context.Context, query, id string) (*models.Document, error) {
	var (
		doc                  models.Document
		creator              string
		completed, cancelled sql.NullTime
		signers              []byte
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &creator, &doc.ContentDigest, &doc.Title,
		&doc.SigningDeadline, &doc.CreatedAt, &completed, &cancelled,
		&doc.AttachmentKey, &signers)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	doc.Creator = models.Identity(creator)
	doc.SigningDeadline = doc.SigningDeadline.UTC()
	doc.CreatedAt = doc.CreatedAt.UTC()
	if completed.Valid {
		doc.CompletedAt = completed.Time.UTC()
	}
	if cancelled.Valid {
		doc.CancelledAt = cancelled.Time.UTC()
	}
	if doc.Signers, err = decodeSigners(signers); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, doc *models.Document) error {
	signers, err := encodeSigners(doc.Signers)
	if err != nil {
		return err
	}

	query :=
		`UPDATE documents
		 SET signing_deadline = $2, completed_at = $3, cancelled_at = $4, attachment_key = $5, signers = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.SigningDeadline.UTC(),
		nullTime(doc.CompletedAt), nullTime(doc.CancelledAt),
		doc.AttachmentKey, signers)

	return affectedOne(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
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
