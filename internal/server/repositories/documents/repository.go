// Package documents persists signature documents keyed by their id.
package documents

import (
	"context"

	"github.com/dmitrijs2005/signly/internal/server/models"
)

// Repository stores documents. Implementations return common.ErrorNotFound
// for unknown ids and common.ErrDuplicateDocument when Create collides.
type Repository interface {
	Create(ctx context.Context, doc *models.Document) error
	Get(ctx context.Context, id string) (*models.Document, error)
	// GetForUpdate is Get with a row lock where the backend supports one.
	GetForUpdate(ctx context.Context, id string) (*models.Document, error)
	// Update writes the mutable fields: deadline, completion, cancellation,
	// attachment key and signatures.
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id string) error
}
