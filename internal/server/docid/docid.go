// Package docid produces document identifiers.
//
// In derived mode the id is the first 12 characters of the URL-safe base64
// encoding of sha256(creator + contentDigest). Registering the same content
// twice from the same creator therefore yields the same id and is rejected
// as a duplicate.
package docid

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/signly/internal/common"
)

// Length of a derived id.
const Length = 12

// MaxSuppliedLength bounds caller-supplied ids.
const MaxSuppliedLength = 64

var suppliedPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Derive returns the deterministic id for (creator, digest).
func Derive(creator, digest string) string {
	sum := sha256.Sum256([]byte(creator + digest))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:Length]
}

// ValidateSupplied checks an id taken verbatim from the caller.
func ValidateSupplied(id string) error {
	if id == "" || len(id) > MaxSuppliedLength || !suppliedPattern.MatchString(id) {
		return fmt.Errorf("%w: id must be 1-%d characters of [A-Za-z0-9_-]", common.ErrInvalidDocument, MaxSuppliedLength)
	}
	return nil
}
