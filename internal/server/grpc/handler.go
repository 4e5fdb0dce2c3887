package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/rpc"
	"github.com/dmitrijs2005/signly/internal/server/auth"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"google.golang.org/grpc/codes"
)

func caller(ctx context.Context) models.Identity {
	id, _ := auth.IdentityFromContext(ctx)
	return id
}

// fail converts err to a status, logging the cause of internal failures
// since the client only sees a generic message.
func (s *GRPCServer) fail(ctx context.Context, err error) error {
	if codeOf(err) == codes.Internal {
		s.logger.Error(ctx, "document operation failed", "error", err)
	}
	return toStatus(err)
}

func (s *GRPCServer) document(ctx context.Context, doc *models.Document, err error) (*pb.Document, error) {
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return rpc.NewDocument(doc), nil
}

func (s *GRPCServer) CreateDocument(ctx context.Context, req *pb.CreateDocumentRequest) (*pb.Document, error) {
	doc, err := s.documents.CreateDocument(ctx, caller(ctx), rpc.CreateInput(req))
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) GetDocument(ctx context.Context, req *pb.DocumentRequest) (*pb.Document, error) {
	doc, err := s.documents.GetDocument(ctx, req.GetId())
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) GetDocuments(ctx context.Context, req *pb.GetDocumentsRequest) (*pb.GetDocumentsResponse, error) {
	docs, err := s.documents.GetDocuments(ctx, caller(ctx), models.Identity(req.GetCreator()))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.GetDocumentsResponse{Documents: rpc.NewDocuments(docs)}, nil
}

func (s *GRPCServer) AddSign(ctx context.Context, req *pb.DocumentRequest) (*pb.Document, error) {
	doc, err := s.documents.AddSign(ctx, caller(ctx), req.GetId())
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) CancelDocument(ctx context.Context, req *pb.DocumentRequest) (*pb.Document, error) {
	doc, err := s.documents.CancelDocument(ctx, caller(ctx), req.GetId())
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) DeleteDocument(ctx context.Context, req *pb.DocumentRequest) (*pb.Document, error) {
	doc, err := s.documents.DeleteDocument(ctx, caller(ctx), req.GetId())
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) ExtendDeadline(ctx context.Context, req *pb.ExtendDeadlineRequest) (*pb.Document, error) {
	doc, err := s.documents.ExtendDeadline(ctx, caller(ctx), req.GetId(), req.GetDeadline())
	return s.document(ctx, doc, err)
}

func (s *GRPCServer) GetAttachmentURL(ctx context.Context, req *pb.AttachmentURLRequest) (*pb.AttachmentURLResponse, error) {
	a, err := s.documents.AttachmentURL(ctx, caller(ctx), req.GetId(), services.AttachmentMode(req.GetMode()))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return rpc.NewAttachment(a), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
