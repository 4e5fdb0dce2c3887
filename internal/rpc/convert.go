// Package rpc converts between the document service's domain types and the
// generated protobuf messages shared by the gRPC and REST transports.
package rpc

import (
	"time"

	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Document statuses as reported on the wire.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// JSON renders messages for REST responses and CLI output. Field names
// follow the .proto file and unset timestamps show as null.
var JSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t.UTC())
}

// NewDocument converts a stored document to its wire form.
func NewDocument(d *models.Document) *pb.Document {
	out := &pb.Document{
		Id:              d.ID,
		Creator:         string(d.Creator),
		ContentDigest:   d.ContentDigest,
		Title:           d.Title,
		Status:          StatusPending,
		SigningDeadline: timestamp(d.SigningDeadline),
		CreatedAt:       timestamp(d.CreatedAt),
		CompletedAt:     timestamp(d.CompletedAt),
		CancelledAt:     timestamp(d.CancelledAt),
		AttachmentKey:   d.AttachmentKey,
		Signers:         make([]*pb.Signer, 0, len(d.Signers)),
	}

	switch {
	case d.Cancelled():
		out.Status = StatusCancelled
	case d.Completed():
		out.Status = StatusCompleted
	}

	for _, s := range d.Signers {
		out.Signers = append(out.Signers, &pb.Signer{Account: string(s.Account), SignedAt: timestamp(s.SignedAt)})
	}
	return out
}

// NewDocuments converts a list, keeping order.
func NewDocuments(docs []*models.Document) []*pb.Document {
	out := make([]*pb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDocument(d))
	}
	return out
}

func NewAttachment(a *services.Attachment) *pb.AttachmentURLResponse {
	return &pb.AttachmentURLResponse{Key: a.Key, Url: a.URL, ExpiresAt: timestamp(a.ExpiresAt)}
}

func Identities(accounts []string) []models.Identity {
	out := make([]models.Identity, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, models.Identity(a))
	}
	return out
}

// CreateInput maps a create request onto the service input.
func CreateInput(req *pb.CreateDocumentRequest) services.CreateDocumentInput {
	return services.CreateDocumentInput{
		ID:            req.GetId(),
		ContentDigest: req.GetContentDigest(),
		Title:         req.GetTitle(),
		Deadline:      req.GetDeadline(),
		Signers:       Identities(req.GetSigners()),
		Fee:           models.FeeProof{Deposit: req.GetDeposit(), Reference: req.GetFeeReference()},
	}
}
