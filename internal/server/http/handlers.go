package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/rpc"
	"github.com/dmitrijs2005/signly/internal/server/auth"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"google.golang.org/protobuf/proto"
)

type createRequest struct {
	ID            string   `json:"id,omitempty"`
	ContentDigest string   `json:"content_digest"`
	Title         string   `json:"title"`
	Deadline      string   `json:"deadline"`
	Signers       []string `json:"signers"`
	Deposit       string   `json:"deposit,omitempty"`
	FeeReference  string   `json:"fee_reference,omitempty"`
}

func (b *createRequest) Bind(r *http.Request) error {
	b.ContentDigest = strings.TrimSpace(b.ContentDigest)
	if b.ContentDigest == "" {
		return errors.New("content_digest is required")
	}
	return nil
}

type deadlineRequest struct {
	Deadline string `json:"deadline"`
}

func (b *deadlineRequest) Bind(r *http.Request) error {
	if strings.TrimSpace(b.Deadline) == "" {
		return errors.New("deadline is required")
	}
	return nil
}

func callerOf(r *http.Request) models.Identity {
	id, _ := auth.IdentityFromContext(r.Context())
	return id
}

func (s *Server) respondDocument(w http.ResponseWriter, r *http.Request, status int, doc *models.Document, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondProto(w, r, status, rpc.NewDocument(doc))
}

// respondProto renders m in its protojson form.
func (s *Server) respondProto(w http.ResponseWriter, r *http.Request, status int, m proto.Message) {
	raw, err := rpc.JSON.Marshal(m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.Status(r, status)
	render.JSON(w, r, json.RawMessage(raw))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.respondProto(w, r, http.StatusOK, &pb.PingResponse{Status: "OK"})
}

func (s *Server) createDocument(w http.ResponseWriter, r *http.Request) {
	body := &createRequest{}
	if err := render.Bind(r, body); err != nil {
		s.writeBadRequest(w, r, err.Error())
		return
	}

	doc, err := s.documents.CreateDocument(r.Context(), callerOf(r), services.CreateDocumentInput{
		ID:            body.ID,
		ContentDigest: body.ContentDigest,
		Title:         body.Title,
		Deadline:      body.Deadline,
		Signers:       rpc.Identities(body.Signers),
		Fee:           models.FeeProof{Deposit: body.Deposit, Reference: body.FeeReference},
	})
	s.respondDocument(w, r, http.StatusCreated, doc, err)
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	creator := models.Identity(r.URL.Query().Get("creator"))

	docs, err := s.documents.GetDocuments(r.Context(), callerOf(r), creator)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondProto(w, r, http.StatusOK, &pb.GetDocumentsResponse{Documents: rpc.NewDocuments(docs)})
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.GetDocument(r.Context(), chi.URLParam(r, "id"))
	s.respondDocument(w, r, http.StatusOK, doc, err)
}

func (s *Server) addSign(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.AddSign(r.Context(), callerOf(r), chi.URLParam(r, "id"))
	s.respondDocument(w, r, http.StatusOK, doc, err)
}

func (s *Server) cancelDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.CancelDocument(r.Context(), callerOf(r), chi.URLParam(r, "id"))
	s.respondDocument(w, r, http.StatusOK, doc, err)
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.DeleteDocument(r.Context(), callerOf(r), chi.URLParam(r, "id"))
	s.respondDocument(w, r, http.StatusOK, doc, err)
}

func (s *Server) extendDeadline(w http.ResponseWriter, r *http.Request) {
	body := &deadlineRequest{}
	if err := render.Bind(r, body); err != nil {
		s.writeBadRequest(w, r, err.Error())
		return
	}

	doc, err := s.documents.ExtendDeadline(r.Context(), callerOf(r), chi.URLParam(r, "id"), body.Deadline)
	s.respondDocument(w, r, http.StatusOK, doc, err)
}

func (s *Server) attachmentURL(w http.ResponseWriter, r *http.Request) {
	mode := services.AttachmentMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = services.AttachmentDownload
	}

	a, err := s.documents.AttachmentURL(r.Context(), callerOf(r), chi.URLParam(r, "id"), mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondProto(w, r, http.StatusOK, rpc.NewAttachment(a))
}
