// Package models defines server-side data models persisted in the database
// and the document lifecycle rules that mutate them.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
)

// Identity is an opaque account name. Every operation receives the caller's
// identity explicitly; the service never reads it from ambient state.
type Identity string

// Signer is one party required to countersign a Document.
type Signer struct {
	Account  Identity
	SignedAt time.Time
}

// Signed reports whether the signer has already signed.
func (s Signer) Signed() bool { return !s.SignedAt.IsZero() }

// Document is an external file awaiting multi-party signature, tracked by
// its content digest. Zero timestamps mean "not yet".
type Document struct {
	ID              string
	Creator         Identity
	ContentDigest   string
	Title           string
	SigningDeadline time.Time
	CreatedAt       time.Time
	CompletedAt     time.Time
	CancelledAt     time.Time
	// AttachmentKey is the object-storage key of the uploaded file, if any.
	AttachmentKey string
	Signers       []Signer
}

// NewDocument builds a fresh Document. The signer list must be non-empty and
// free of duplicates; it is fixed from here on.
func NewDocument(id string, creator Identity, digest, title string, deadline, now time.Time, signers []Identity) (*Document, error) {
	if len(signers) == 0 {
		return nil, fmt.Errorf("%w: at least one signer is required", common.ErrInvalidDocument)
	}

	seen := make(map[Identity]struct{}, len(signers))
	list := make([]Signer, 0, len(signers))
	for _, account := range signers {
		if account == "" {
			return nil, fmt.Errorf("%w: empty signer account", common.ErrInvalidDocument)
		}
		if _, dup := seen[account]; dup {
			return nil, fmt.Errorf("%w: signer %s listed twice", common.ErrInvalidDocument, account)
		}
		seen[account] = struct{}{}
		list = append(list, Signer{Account: account})
	}

	return &Document{
		ID:              id,
		Creator:         creator,
		ContentDigest:   digest,
		Title:           title,
		SigningDeadline: deadline.UTC(),
		CreatedAt:       now.UTC(),
		Signers:         list,
	}, nil
}

// Cancelled reports whether the creator cancelled the document.
func (d *Document) Cancelled() bool { return !d.CancelledAt.IsZero() }

// Completed reports whether every required signer has signed.
func (d *Document) Completed() bool { return !d.CompletedAt.IsZero() }

// RequiresSigner reports whether account is among the required signers.
func (d *Document) RequiresSigner(account Identity) bool {
	return d.signerIndex(account) >= 0
}

// Pending returns the accounts that still have to sign, in signer order.
func (d *Document) Pending() []Identity {
	var out []Identity
	for _, s := range d.Signers {
		if !s.Signed() {
			out = append(out, s.Account)
		}
	}
	return out
}

func (d *Document) signerIndex(account Identity) int {
	for i, s := range d.Signers {
		if s.Account == account {
			return i
		}
	}
	return -1
}

// Sign records account's signature at now. When the last pending signer
// signs, CompletedAt is stamped with the same instant.
//
// Checks run in this order: cancelled, deadline passed (now >= deadline),
// not a required signer, already signed.
func (d *Document) Sign(account Identity, now time.Time) error {
	if d.Cancelled() {
		return common.ErrDocumentCancelled
	}
	if !now.Before(d.SigningDeadline) {
		return common.ErrDeadlinePassed
	}

	i := d.signerIndex(account)
	if i < 0 {
		return fmt.Errorf("%w: %s", common.ErrNotARequiredSigner, account)
	}
	if d.Signers[i].Signed() {
		return fmt.Errorf("%w: %s", common.ErrAlreadySigned, account)
	}

	d.Signers[i].SignedAt = now.UTC()

	if len(d.Pending()) == 0 {
		d.CompletedAt = now.UTC()
	}
	return nil
}

// Cancel makes the document permanently inert. Cancelling twice is rejected
// and leaves the original CancelledAt in place.
func (d *Document) Cancel(now time.Time) error {
	if d.Cancelled() {
		return common.ErrDocumentCancelled
	}
	d.CancelledAt = now.UTC()
	return nil
}

// ExtendDeadline moves the signing deadline later. The new deadline must be
// after both now and the current deadline and must not pass horizonEnd.
func (d *Document) ExtendDeadline(deadline, now, horizonEnd time.Time) error {
	if d.Cancelled() {
		return common.ErrDocumentCancelled
	}
	if d.Completed() {
		return fmt.Errorf("%w: document is already completed", common.ErrInvalidDeadline)
	}
	if !deadline.After(d.SigningDeadline) {
		return fmt.Errorf("%w: new deadline must be after %s", common.ErrInvalidDeadline, d.SigningDeadline.Format(time.RFC3339))
	}
	if !deadline.After(now) {
		return fmt.Errorf("%w: deadline is in the past", common.ErrInvalidDeadline)
	}
	if deadline.After(horizonEnd) {
		return fmt.Errorf("%w: deadline is beyond %s", common.ErrInvalidDeadline, horizonEnd.Format(time.RFC3339))
	}
	d.SigningDeadline = deadline.UTC()
	return nil
}

// FeeProof is whatever the caller attached to pay for a new document.
// Deposit is a decimal amount in the smallest currency unit.
type FeeProof struct {
	Deposit   string
	Reference string
}
