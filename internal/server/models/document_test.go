package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDoc(t *testing.T, signers ...Identity) *Document {
	t.Helper()
	d, err := NewDocument("id1", "creator.testnet", "md5", "Lease", t0.Add(24*time.Hour), t0, signers)
	require.NoError(t, err)
	return d
}

func TestNewDocument_Validation(t *testing.T) {
	_, err := NewDocument("id", "c", "md5", "t", t0.Add(time.Hour), t0, nil)
	assert.ErrorIs(t, err, common.ErrInvalidDocument)

	_, err = NewDocument("id", "c", "md5", "t", t0.Add(time.Hour), t0, []Identity{"alice", "bob", "alice"})
	assert.ErrorIs(t, err, common.ErrInvalidDocument)

	_, err = NewDocument("id", "c", "md5", "t", t0.Add(time.Hour), t0, []Identity{"alice", ""})
	assert.ErrorIs(t, err, common.ErrInvalidDocument)
}

func TestNewDocument_PreservesSignerOrder(t *testing.T) {
	d := newDoc(t, "carol", "alice", "bob")

	assert.Equal(t, []Identity{"carol", "alice", "bob"}, d.Pending())
	assert.Equal(t, t0, d.CreatedAt)
	assert.False(t, d.Completed())
	assert.False(t, d.Cancelled())
}

func TestSign_CompletesOnLastSigner(t *testing.T) {
	d := newDoc(t, "alice", "bob")

	require.NoError(t, d.Sign("alice", t0.Add(time.Minute)))
	assert.False(t, d.Completed(), "one signer still pending")
	assert.Equal(t, []Identity{"bob"}, d.Pending())

	signedAt := t0.Add(2 * time.Minute)
	require.NoError(t, d.Sign("bob", signedAt))
	assert.True(t, d.Completed())
	assert.Equal(t, signedAt, d.CompletedAt)

	err := d.Sign("alice", t0.Add(3*time.Minute))
	assert.ErrorIs(t, err, common.ErrAlreadySigned)
	assert.Equal(t, signedAt, d.CompletedAt, "completion is stamped once")
}

func TestSign_OrderIndependent(t *testing.T) {
	orders := [][]Identity{
		{"a", "b", "c"},
		{"c", "b", "a"},
		{"b", "a", "c"},
	}
	for _, order := range orders {
		d := newDoc(t, "a", "b", "c")
		for i, who := range order {
			require.False(t, d.Completed())
			require.NoError(t, d.Sign(who, t0.Add(time.Duration(i+1)*time.Minute)))
		}
		assert.True(t, d.Completed(), "order %v", order)
	}
}

func TestSign_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(d *Document)
		signer  Identity
		at      time.Time
		want    error
	}{
		{name: "not required", signer: "mallory", at: t0.Add(time.Minute), want: common.ErrNotARequiredSigner},
		{name: "deadline reached exactly", signer: "alice", at: t0.Add(24 * time.Hour), want: common.ErrDeadlinePassed},
		{name: "after deadline with nobody signed", signer: "alice", at: t0.Add(48 * time.Hour), want: common.ErrDeadlinePassed},
		{
			name:    "cancelled wins over everything",
			prepare: func(d *Document) { require.NoError(t, d.Cancel(t0)) },
			signer:  "mallory",
			at:      t0.Add(48 * time.Hour),
			want:    common.ErrDocumentCancelled,
		},
		{
			name:    "already signed",
			prepare: func(d *Document) { require.NoError(t, d.Sign("alice", t0)) },
			signer:  "alice",
			at:      t0.Add(time.Hour),
			want:    common.ErrAlreadySigned,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDoc(t, "alice", "bob")
			if tt.prepare != nil {
				tt.prepare(d)
			}
			before := append([]Signer(nil), d.Signers...)
			err := d.Sign(tt.signer, tt.at)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
			assert.Equal(t, before, d.Signers, "rejected sign must not mutate signers")
		})
	}
}

func TestCancel_SecondCancelRejected(t *testing.T) {
	d := newDoc(t, "alice")

	require.NoError(t, d.Cancel(t0.Add(time.Minute)))
	assert.True(t, d.Cancelled())

	err := d.Cancel(t0.Add(time.Hour))
	assert.ErrorIs(t, err, common.ErrDocumentCancelled)
	assert.Equal(t, t0.Add(time.Minute), d.CancelledAt)
}

func TestExtendDeadline(t *testing.T) {
	horizon := t0.AddDate(0, 6, 0)

	d := newDoc(t, "alice")
	require.NoError(t, d.ExtendDeadline(t0.Add(72*time.Hour), t0, horizon))
	assert.Equal(t, t0.Add(72*time.Hour), d.SigningDeadline)

	assert.ErrorIs(t, d.ExtendDeadline(t0.Add(48*time.Hour), t0, horizon), common.ErrInvalidDeadline, "earlier than current")
	assert.ErrorIs(t, d.ExtendDeadline(horizon.Add(time.Second), t0, horizon), common.ErrInvalidDeadline, "beyond horizon")
	assert.NoError(t, d.ExtendDeadline(horizon, t0, horizon), "horizon itself is allowed")

	done := newDoc(t, "alice")
	require.NoError(t, done.Sign("alice", t0))
	assert.ErrorIs(t, done.ExtendDeadline(t0.Add(48*time.Hour), t0, horizon), common.ErrInvalidDeadline)

	cancelled := newDoc(t, "alice")
	require.NoError(t, cancelled.Cancel(t0))
	assert.ErrorIs(t, cancelled.ExtendDeadline(t0.Add(48*time.Hour), t0, horizon), common.ErrDocumentCancelled)
}

func TestRequiresSigner(t *testing.T) {
	d := newDoc(t, "alice", "bob")
	assert.True(t, d.RequiresSigner("bob"))
	assert.False(t, d.RequiresSigner("carol"))
}
