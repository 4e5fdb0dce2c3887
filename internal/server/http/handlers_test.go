package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/signly/internal/logging"
	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/rpc"
	"github.com/dmitrijs2005/signly/internal/server/auth"
	"github.com/dmitrijs2005/signly/internal/server/config"
	"github.com/dmitrijs2005/signly/internal/server/fees"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"github.com/dmitrijs2005/signly/internal/server/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	svc := services.NewDocumentService(storetest.OpenSQLite(t), repomanager.NewSQLiteRepositoryManager(),
		fees.Noop{}, nil, cfg, logging.Nop{})

	return NewServer(":0", logging.Nop{}, svc, testSecret).Router()
}

func bearer(t *testing.T, account string) string {
	t.Helper()
	token, err := auth.GenerateToken(models.Identity(account), []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, h http.Handler, method, path, authz string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func decodeProto[T any, P interface {
	*T
	proto.Message
}](t *testing.T, rec *httptest.ResponseRecorder) P {
	t.Helper()
	m := P(new(T))
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), m), rec.Body.String())
	return m
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[errorResponse](t, rec)
	assert.Equal(t, code, body.Error.Code)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, rec.Header().Get(requestIDHeader), body.RequestID)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeProto[pb.PingResponse](t, rec).GetStatus())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestDocumentLifecycle(t *testing.T) {
	h := newTestRouter(t)
	deadline := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	rec := do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{
		ContentDigest: "md5", Title: "lease", Deadline: deadline, Signers: []string{"alice", "bob"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decodeProto[pb.Document](t, rec)
	assert.Equal(t, "carol", doc.GetCreator())
	assert.Equal(t, rpc.StatusPending, doc.GetStatus())
	require.Len(t, doc.GetSigners(), 2)

	rec = do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{
		ContentDigest: "md5", Title: "lease", Deadline: deadline, Signers: []string{"alice"},
	})
	assertError(t, rec, http.StatusConflict, "DUPLICATE_DOCUMENT")

	// reads are anonymous
	rec = do(t, h, http.MethodGet, "/api/v1/documents/"+doc.GetId(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, doc.GetId(), decodeProto[pb.Document](t, rec).GetId())

	rec = do(t, h, http.MethodGet, "/api/v1/documents?creator=carol", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeProto[pb.GetDocumentsResponse](t, rec)
	require.Len(t, list.GetDocuments(), 1)

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+doc.GetId()+"/signatures", bearer(t, "mallory"), nil)
	assertError(t, rec, http.StatusForbidden, "NOT_A_REQUIRED_SIGNER")

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+doc.GetId()+"/signatures", bearer(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+doc.GetId()+"/signatures", bearer(t, "alice"), nil)
	assertError(t, rec, http.StatusConflict, "ALREADY_SIGNED")

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+doc.GetId()+"/signatures", bearer(t, "bob"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	signed := decodeProto[pb.Document](t, rec)
	assert.Equal(t, rpc.StatusCompleted, signed.GetStatus())
	assert.True(t, signed.GetCompletedAt().IsValid())

	rec = do(t, h, http.MethodDelete, "/api/v1/documents/"+doc.GetId(), bearer(t, "carol"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/documents/"+doc.GetId(), "", nil)
	assertError(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestCancelAndExtend(t *testing.T) {
	h := newTestRouter(t)
	deadline := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	rec := do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{
		ContentDigest: "sha", Deadline: deadline, Signers: []string{"alice"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeProto[pb.Document](t, rec).GetId()

	later := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	rec = do(t, h, http.MethodPut, "/api/v1/documents/"+id+"/deadline", bearer(t, "carol"),
		deadlineRequest{Deadline: later.Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, later.Equal(decodeProto[pb.Document](t, rec).GetSigningDeadline().AsTime()))

	rec = do(t, h, http.MethodPut, "/api/v1/documents/"+id+"/deadline", bearer(t, "carol"), deadlineRequest{})
	assertError(t, rec, http.StatusBadRequest, "INVALID_REQUEST")

	rec = do(t, h, http.MethodPut, "/api/v1/documents/"+id+"/deadline", bearer(t, "carol"),
		deadlineRequest{Deadline: "tomorrow-ish"})
	assertError(t, rec, http.StatusBadRequest, "INVALID_DEADLINE")

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+id+"/cancel", bearer(t, "alice"), nil)
	assertError(t, rec, http.StatusNotFound, "NOT_FOUND")

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+id+"/cancel", bearer(t, "carol"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, rpc.StatusCancelled, decodeProto[pb.Document](t, rec).GetStatus())

	rec = do(t, h, http.MethodPost, "/api/v1/documents/"+id+"/signatures", bearer(t, "alice"), nil)
	assertError(t, rec, http.StatusConflict, "DOCUMENT_CANCELLED")
}

func TestCreate_Validation(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{Title: "x"})
	assertError(t, rec, http.StatusBadRequest, "INVALID_REQUEST")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "carol"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assertError(t, rec, http.StatusBadRequest, "INVALID_REQUEST")

	rec = do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{
		ContentDigest: "d", Deadline: "2000-01-01T00:00:00Z", Signers: []string{"alice"},
	})
	assertError(t, rec, http.StatusBadRequest, "INVALID_DEADLINE")
}

func TestAuthentication(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/documents", "", createRequest{ContentDigest: "d"})
	assertError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")

	rec = do(t, h, http.MethodGet, "/api/v1/documents/x", "Basic abc", nil)
	assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")

	rec = do(t, h, http.MethodGet, "/api/v1/documents/x", "Bearer garbage", nil)
	assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")

	expired, err := auth.GenerateToken("alice", []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	rec = do(t, h, http.MethodGet, "/api/v1/documents/x", "Bearer "+expired, nil)
	assertError(t, rec, http.StatusUnauthorized, "TOKEN_EXPIRED")

	rec = do(t, h, http.MethodGet, "/api/v1/documents", "", nil)
	assertError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")

	rec = do(t, h, http.MethodGet, "/api/v1/documents", bearer(t, "nobody"), nil)
	assertError(t, rec, http.StatusNotFound, "NO_DOCUMENTS_FOR_CREATOR")
}

func TestAttachment_Disabled(t *testing.T) {
	h := newTestRouter(t)
	deadline := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	rec := do(t, h, http.MethodPost, "/api/v1/documents", bearer(t, "carol"), createRequest{
		ContentDigest: "att", Deadline: deadline, Signers: []string{"alice"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeProto[pb.Document](t, rec).GetId()

	rec = do(t, h, http.MethodGet, "/api/v1/documents/"+id+"/attachment?mode=upload", bearer(t, "carol"), nil)
	assertError(t, rec, http.StatusNotImplemented, "ATTACHMENTS_DISABLED")
}

type stubService struct {
	documentService
	err        error
	attachment *services.Attachment
	mode       services.AttachmentMode
}

func (s *stubService) GetDocument(context.Context, string) (*models.Document, error) {
	return nil, s.err
}

func (s *stubService) AttachmentURL(_ context.Context, _ models.Identity, _ string, mode services.AttachmentMode) (*services.Attachment, error) {
	s.mode = mode
	return s.attachment, s.err
}

func TestInternalErrorsAreMasked(t *testing.T) {
	h := NewServer(":0", logging.Nop{}, &stubService{err: errors.New("db error: connection reset")}, testSecret).Router()

	rec := do(t, h, http.MethodGet, "/api/v1/documents/abc", "", nil)
	assertError(t, rec, http.StatusInternalServerError, "INTERNAL")
	assert.Equal(t, "internal error", decode[errorResponse](t, rec).Error.Message)
}

func TestAttachment_DefaultsToDownload(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubService{attachment: &services.Attachment{Key: "k", URL: "https://example/k", ExpiresAt: expires}}
	h := NewServer(":0", logging.Nop{}, stub, testSecret).Router()

	rec := do(t, h, http.MethodGet, "/api/v1/documents/abc/attachment", bearer(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, services.AttachmentDownload, stub.mode)

	got := decodeProto[pb.AttachmentURLResponse](t, rec)
	assert.Equal(t, "k", got.GetKey())
	assert.Equal(t, "https://example/k", got.GetUrl())
	assert.True(t, expires.Equal(got.GetExpiresAt().AsTime()))
	assert.Contains(t, rec.Body.String(), `"expires_at":"2030-01-01T00:00:00Z"`)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := NewServer("127.0.0.1:0", logging.Nop{}, nil, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
