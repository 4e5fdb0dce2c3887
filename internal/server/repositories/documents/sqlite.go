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
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository stores timestamps as unix nanoseconds, 0 meaning unset.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

func isPrimaryKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

func (r *SQLiteRepository) Create(ctx context.Context, doc *models.Document) error {
	signers, err := encodeSigners(doc.Signers)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO documents (id, creator, content_digest, title, signing_deadline, created_at, completed_at, cancelled_at, attachment_key, signers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 `

	_, err = r.db.ExecContext(ctx, query,
		doc.ID, string(doc.Creator), doc.ContentDigest, doc.Title,
		toNanos(doc.SigningDeadline), toNanos(doc.CreatedAt),
		toNanos(doc.CompletedAt), toNanos(doc.CancelledAt),
		doc.AttachmentKey, string(signers))

	if err != nil {
		if isPrimaryKeyViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrDuplicateDocument, doc.ID)
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Get reads one document. SQLite serialises writers per database, so
// GetForUpdate needs no extra locking clause.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Document, error) {
	query :=
		`SELECT id, creator, content_digest, title, signing_deadline, created_at, completed_at, cancelled_at, attachment_key, signers
		 FROM documents
		 WHERE id = ?
		 `

	var (
		doc                  models.Document
		creator, signers     string
		deadline, created    int64
		completed, cancelled int64
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &creator, &doc.ContentDigest, &doc.Title,
		&deadline, &created, &completed, &cancelled,
		&doc.AttachmentKey, &signers)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	doc.Creator = models.Identity(creator)
	doc.SigningDeadline = fromNanos(deadline)
	doc.CreatedAt = fromNanos(created)
	doc.CompletedAt = fromNanos(completed)
	doc.CancelledAt = fromNanos(cancelled)
	if doc.Signers, err = decodeSigners([]byte(signers)); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *SQLiteRepository) GetForUpdate(ctx context.Context, id string) (*models.Document, error) {
	return r.Get(ctx, id)
}

func (r *SQLiteRepository) Update(ctx context.Context, doc *models.Document) error {
	signers, err := encodeSigners(doc.Signers)
	if err != nil {
		return err
	}

	query :=
		`UPDATE documents
		 SET signing_deadline = ?, completed_at = ?, cancelled_at = ?, attachment_key = ?, signers = ?
		 WHERE id = ?
		 `

	res, err := r.db.ExecContext(ctx, query,
		toNanos(doc.SigningDeadline), toNanos(doc.CompletedAt), toNanos(doc.CancelledAt),
		doc.AttachmentKey, string(signers), doc.ID)

	return affectedOne(res, err)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return affectedOne(res, err)
}
