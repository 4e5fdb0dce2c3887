// Package creators persists the per-creator index: the ordered list of
// document ids each account has created.
package creators

import "context"

// Repository maintains creator index entries. Get returns
// common.ErrorNotFound when the creator has no entry at all; an entry may
// exist with an empty list after every document was deleted.
type Repository interface {
	Get(ctx context.Context, creator string) ([]string, error)
	// AddID appends id to the creator's list, creating the entry if needed.
	AddID(ctx context.Context, creator, id string) error
	// RemoveID removes id from the list preserving the order of the rest.
	// It returns common.ErrorNotFound when either the entry or the id is
	// missing.
	RemoveID(ctx context.Context, creator, id string) error
}
