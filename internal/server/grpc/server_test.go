package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
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
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "test-secret"

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, nil, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves a real DocumentService over an in-memory listener.
func startBufconn(t *testing.T) pb.SignlyServiceClient {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	svc := services.NewDocumentService(storetest.OpenSQLite(t), repomanager.NewSQLiteRepositoryManager(),
		fees.Noop{}, nil, cfg, logging.Nop{})

	srv, err := NewGRPCServer("bufnet", logging.Nop{}, svc, testSecret)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return pb.NewSignlyServiceClient(conn)
}

func as(t *testing.T, account string) context.Context {
	t.Helper()
	token, err := auth.GenerateToken(models.Identity(account), []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func reasonOf(t *testing.T, err error) (codes.Code, string) {
	t.Helper()
	st := status.Convert(err)
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return st.Code(), info.GetReason()
		}
	}
	return st.Code(), ""
}

func TestBufconn_Lifecycle(t *testing.T) {
	client := startBufconn(t)
	due := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	deadline := due.Format(time.RFC3339)

	pong, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	doc, err := client.CreateDocument(as(t, "carol"), &pb.CreateDocumentRequest{
		ContentDigest: "md5", Title: "lease", Deadline: deadline, Signers: []string{"alice", "bob"},
	})
	require.NoError(t, err)
	assert.Equal(t, rpc.StatusPending, doc.GetStatus())
	assert.Equal(t, "carol", doc.GetCreator())
	assert.True(t, doc.GetSigningDeadline().AsTime().Equal(due), "deadline travels as a timestamp")
	assert.Nil(t, doc.GetCompletedAt())

	_, err = client.CreateDocument(as(t, "carol"), &pb.CreateDocumentRequest{
		ContentDigest: "md5", Title: "lease", Deadline: deadline, Signers: []string{"alice"},
	})
	code, reason := reasonOf(t, err)
	assert.Equal(t, codes.AlreadyExists, code)
	assert.Equal(t, "DUPLICATE_DOCUMENT", reason)

	got, err := client.GetDocument(context.Background(), &pb.DocumentRequest{Id: doc.Id})
	require.NoError(t, err)
	assert.Equal(t, "lease", got.GetTitle())

	_, err = client.AddSign(as(t, "alice"), &pb.DocumentRequest{Id: doc.Id})
	require.NoError(t, err)
	signed, err := client.AddSign(as(t, "bob"), &pb.DocumentRequest{Id: doc.Id})
	require.NoError(t, err)
	assert.Equal(t, rpc.StatusCompleted, signed.GetStatus())
	assert.NotNil(t, signed.GetCompletedAt())

	_, err = client.AddSign(as(t, "alice"), &pb.DocumentRequest{Id: doc.Id})
	code, reason = reasonOf(t, err)
	assert.Equal(t, codes.FailedPrecondition, code)
	assert.Equal(t, "ALREADY_SIGNED", reason)

	list, err := client.GetDocuments(as(t, "carol"), &pb.GetDocumentsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetDocuments(), 1)

	_, err = client.CancelDocument(as(t, "alice"), &pb.DocumentRequest{Id: doc.Id})
	code, _ = reasonOf(t, err)
	assert.Equal(t, codes.NotFound, code)

	deleted, err := client.DeleteDocument(as(t, "carol"), &pb.DocumentRequest{Id: doc.Id})
	require.NoError(t, err)
	assert.Equal(t, doc.GetId(), deleted.GetId())

	_, err = client.GetDocument(context.Background(), &pb.DocumentRequest{Id: doc.Id})
	code, reason = reasonOf(t, err)
	assert.Equal(t, codes.NotFound, code)
	assert.Equal(t, "NOT_FOUND", reason)
}

func TestBufconn_Unauthenticated(t *testing.T) {
	client := startBufconn(t)

	_, err := client.AddSign(context.Background(), &pb.DocumentRequest{Id: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.GetDocuments(context.Background(), &pb.GetDocumentsRequest{})
	code, reason := reasonOf(t, err)
	assert.Equal(t, codes.Unauthenticated, code, "listing without creator or identity")
	assert.Equal(t, "UNAUTHORIZED", reason)

	_, err = client.GetDocuments(context.Background(), &pb.GetDocumentsRequest{Creator: "nobody"})
	code, reason = reasonOf(t, err)
	assert.Equal(t, codes.NotFound, code)
	assert.Equal(t, "NO_DOCUMENTS_FOR_CREATOR", reason)
}

func TestBufconn_AttachmentsDisabled(t *testing.T) {
	client := startBufconn(t)

	_, err := client.GetAttachmentURL(as(t, "carol"), &pb.AttachmentURLRequest{Id: "x", Mode: "upload"})
	code, reason := reasonOf(t, err)
	assert.Equal(t, codes.Unimplemented, code)
	assert.Equal(t, "ATTACHMENTS_DISABLED", reason)
}
