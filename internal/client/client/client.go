package client

import (
	"context"

	pb "github.com/dmitrijs2005/signly/internal/proto"
)

// Client is the API contract the CLI relies on.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateDocument(ctx context.Context, req *pb.CreateDocumentRequest) (*pb.Document, error)
	GetDocument(ctx context.Context, id string) (*pb.Document, error)
	GetDocuments(ctx context.Context, creator string) ([]*pb.Document, error)
	AddSign(ctx context.Context, id string) (*pb.Document, error)
	CancelDocument(ctx context.Context, id string) (*pb.Document, error)
	DeleteDocument(ctx context.Context, id string) (*pb.Document, error)
	ExtendDeadline(ctx context.Context, id, deadline string) (*pb.Document, error)
	AttachmentURL(ctx context.Context, id, mode string) (*pb.AttachmentURLResponse, error)
}
