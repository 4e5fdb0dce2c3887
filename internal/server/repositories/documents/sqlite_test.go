package documents

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/storetest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(storetest.OpenSQLite(t))

	doc := sampleDocument()
	require.NoError(t, repo.Create(ctx, doc))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}

	signedAt := created.Add(90 * time.Minute)
	doc.Signers[1].SignedAt = signedAt
	doc.CancelledAt = signedAt.Add(time.Minute)
	doc.SigningDeadline = deadline.Add(24 * time.Hour)
	doc.AttachmentKey = "documents/2026/1/1/key"
	require.NoError(t, repo.Update(ctx, doc))

	got, err = repo.GetForUpdate(ctx, "abc")
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("updated document mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(storetest.OpenSQLite(t))

	require.NoError(t, repo.Create(ctx, sampleDocument()))
	err := repo.Create(ctx, sampleDocument())
	assert.ErrorIs(t, err, common.ErrDuplicateDocument)
}

func TestSQLite_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(storetest.OpenSQLite(t))

	_, err := repo.Get(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, repo.Update(ctx, &models.Document{ID: "ghost"}), common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "ghost"), common.ErrorNotFound)
}

func TestSQLite_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(storetest.OpenSQLite(t))

	require.NoError(t, repo.Create(ctx, sampleDocument()))
	require.NoError(t, repo.Delete(ctx, "abc"))

	_, err := repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
