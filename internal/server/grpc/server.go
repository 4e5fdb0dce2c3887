package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/signly/internal/logging"
	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"google.golang.org/grpc"
)

// documentService is the part of services.DocumentService the transport uses.
type documentService interface {
	CreateDocument(ctx context.Context, caller models.Identity, in services.CreateDocumentInput) (*models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	GetDocuments(ctx context.Context, caller, creator models.Identity) ([]*models.Document, error)
	AddSign(ctx context.Context, caller models.Identity, id string) (*models.Document, error)
	CancelDocument(ctx context.Context, caller models.Identity, id string) (*models.Document, error)
	DeleteDocument(ctx context.Context, caller models.Identity, id string) (*models.Document, error)
	ExtendDeadline(ctx context.Context, caller models.Identity, id, deadline string) (*models.Document, error)
	AttachmentURL(ctx context.Context, caller models.Identity, id string, mode services.AttachmentMode) (*services.Attachment, error)
}

type GRPCServer struct {
	pb.UnimplementedSignlyServiceServer
	address   string
	documents documentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ds documentService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		documents: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterSignlyServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
