// Package http exposes the document service as a JSON REST API under
// /api/v1, routed with chi.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/signly/internal/logging"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 5 * time.Second

// documentService is the part of services.DocumentService the API uses.
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

type Server struct {
	address   string
	documents documentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, ds documentService, secretKey string) *Server {
	return &Server{
		address:   a,
		documents: ds,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the full handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Origin", "X-Requested-With"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identify)

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", s.listDocuments)
			r.With(s.requireIdentity).Post("/", s.createDocument)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getDocument)

				r.Group(func(r chi.Router) {
					r.Use(s.requireIdentity)
					r.Delete("/", s.deleteDocument)
					r.Post("/signatures", s.addSign)
					r.Post("/cancel", s.cancelDocument)
					r.Put("/deadline", s.extendDeadline)
					r.Get("/attachment", s.attachmentURL)
				})
			})
		})
	})

	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
