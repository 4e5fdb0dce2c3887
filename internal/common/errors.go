// Package common defines shared constants and sentinel errors used across
// client and server layers of signly. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Document creation.
	ErrDuplicateDocument = errors.New("document already registered")
	ErrInvalidDeadline   = errors.New("invalid signing deadline")
	ErrInsufficientFee   = errors.New("insufficient fee")
	ErrInvalidDocument   = errors.New("invalid document")

	// Signing.
	ErrDocumentCancelled  = errors.New("document has been cancelled")
	ErrDeadlinePassed     = errors.New("signing deadline has passed")
	ErrNotARequiredSigner = errors.New("account is not a required signer")
	ErrAlreadySigned      = errors.New("account has already signed")

	// Listing.
	ErrNoDocumentsForCreator = errors.New("no documents for creator")

	// Attachments.
	ErrAttachmentsDisabled = errors.New("attachments are disabled")
)

// reasons maps every caller-visible failure kind to a stable code that
// transports carry across the wire.
var reasons = []struct {
	err    error
	reason string
}{
	{ErrorNotFound, "NOT_FOUND"},
	{ErrNoDocumentsForCreator, "NO_DOCUMENTS_FOR_CREATOR"},
	{ErrDuplicateDocument, "DUPLICATE_DOCUMENT"},
	{ErrInvalidDeadline, "INVALID_DEADLINE"},
	{ErrInsufficientFee, "INSUFFICIENT_FEE"},
	{ErrInvalidDocument, "INVALID_DOCUMENT"},
	{ErrDocumentCancelled, "DOCUMENT_CANCELLED"},
	{ErrDeadlinePassed, "DEADLINE_PASSED"},
	{ErrNotARequiredSigner, "NOT_A_REQUIRED_SIGNER"},
	{ErrAlreadySigned, "ALREADY_SIGNED"},
	{ErrorUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidToken, "INVALID_TOKEN"},
	{ErrTokenExpired, "TOKEN_EXPIRED"},
	{ErrAttachmentsDisabled, "ATTACHMENTS_DISABLED"},
}

// Reason returns the wire code for err, or "INTERNAL" when err does not wrap
// one of the known failure kinds.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "INTERNAL"
}

// FromReason is the inverse of Reason. Unknown codes yield ErrorInternal.
func FromReason(reason string) error {
	for _, r := range reasons {
		if r.reason == reason {
			return r.err
		}
	}
	return ErrorInternal
}
