package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestReason_RoundTrip(t *testing.T) {
	for _, r := range reasons {
		code := Reason(r.err)
		if code != r.reason {
			t.Fatalf("Reason(%v) = %q, want %q", r.err, code, r.reason)
		}
		if got := FromReason(code); !errors.Is(got, r.err) {
			t.Fatalf("FromReason(%q) = %v, want %v", code, got, r.err)
		}
	}
}

func TestReason_WrappedError(t *testing.T) {
	err := fmt.Errorf("sign doc-1: %w", ErrAlreadySigned)
	if got := Reason(err); got != "ALREADY_SIGNED" {
		t.Fatalf("want ALREADY_SIGNED, got %q", got)
	}
}

func TestReason_Unknown(t *testing.T) {
	if got := Reason(errors.New("boom")); got != "INTERNAL" {
		t.Fatalf("want INTERNAL, got %q", got)
	}
	if got := FromReason("SOMETHING_ELSE"); !errors.Is(got, ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", got)
	}
}
