// Package services contains server-side business logic. This file implements
// DocumentService, which owns the document lifecycle: creation, signing,
// cancellation, deletion and deadline extension, plus the creator index
// that backs listing and ownership checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/dbx"
	"github.com/dmitrijs2005/signly/internal/logging"
	"github.com/dmitrijs2005/signly/internal/server/attachments"
	"github.com/dmitrijs2005/signly/internal/server/config"
	"github.com/dmitrijs2005/signly/internal/server/deadline"
	"github.com/dmitrijs2005/signly/internal/server/docid"
	"github.com/dmitrijs2005/signly/internal/server/fees"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/dmitrijs2005/signly/internal/server/repositories/repomanager"
)

// CreateDocumentInput is what a caller submits to register a document.
// ID is only read when the service runs in supplied-id mode; it falls back
// to ContentDigest when empty.
type CreateDocumentInput struct {
	ID            string
	ContentDigest string
	Title         string
	Deadline      string
	Signers       []models.Identity
	Fee           models.FeeProof
}

// AttachmentMode selects which presigned URL AttachmentURL returns.
type AttachmentMode string

const (
	AttachmentUpload   AttachmentMode = "upload"
	AttachmentDownload AttachmentMode = "download"
)

// Attachment is a presigned URL for a document's file.
type Attachment struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

type DocumentService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	fees          fees.Checker
	attachments   attachments.Store
	logger        logging.Logger
	now           func() time.Time
	idMode        string
	horizonMonths int
}

// NewDocumentService wires the service. store may be nil, which disables
// attachments.
func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, feeChecker fees.Checker,
	store attachments.Store, cfg *config.Config, logger logging.Logger) *DocumentService {

	horizon := cfg.DeadlineHorizonMonths
	if horizon <= 0 {
		horizon = deadline.DefaultHorizonMonths
	}
	if feeChecker == nil {
		feeChecker = fees.Noop{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}

	return &DocumentService{
		db:            db,
		repomanager:   m,
		fees:          feeChecker,
		attachments:   store,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
		idMode:        cfg.IDMode,
		horizonMonths: horizon,
	}
}

func requireCaller(caller models.Identity) error {
	if caller == "" {
		return fmt.Errorf("%w: caller identity is required", common.ErrorUnauthorized)
	}
	return nil
}

func (s *DocumentService) documentID(caller models.Identity, in CreateDocumentInput) (string, error) {
	if in.ContentDigest == "" {
		return "", fmt.Errorf("%w: content digest is required", common.ErrInvalidDocument)
	}

	if s.idMode == config.IDModeSupplied {
		id := in.ID
		if id == "" {
			id = in.ContentDigest
		}
		if err := docid.ValidateSupplied(id); err != nil {
			return "", err
		}
		return id, nil
	}

	return docid.Derive(string(caller), in.ContentDigest), nil
}

// CreateDocument registers a new document for caller. Checks run in order:
// fee, duplicate, deadline, signer list.
func (s *DocumentService) CreateDocument(ctx context.Context, caller models.Identity, in CreateDocumentInput) (*models.Document, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	if err := s.fees.Check(ctx, caller, in.Fee); err != nil {
		return nil, err
	}

	id, err := s.documentID(caller, in)
	if err != nil {
		return nil, err
	}

	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		docs := s.repomanager.Documents(tx)
		index := s.repomanager.Creators(tx)

		ids, err := index.Get(ctx, string(caller))
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		if slices.Contains(ids, id) {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateDocument, id)
		}

		_, err = docs.Get(ctx, id)
		switch {
		case err == nil:
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateDocument, id)
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}

		now := s.now()
		due, err := deadline.Parse(in.Deadline)
		if err != nil {
			return nil, err
		}
		if err := deadline.Validate(due, now, s.horizonMonths); err != nil {
			return nil, err
		}

		doc, err := models.NewDocument(id, caller, in.ContentDigest, in.Title, due, now, in.Signers)
		if err != nil {
			return nil, err
		}
		if s.attachments != nil {
			doc.AttachmentKey = s.attachments.NewKey(now)
		}

		if err := docs.Create(ctx, doc); err != nil {
			return nil, err
		}
		if err := index.AddID(ctx, string(caller), id); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "document created",
		"id", doc.ID, "creator", doc.Creator, "content_digest", doc.ContentDigest,
		"signers", len(doc.Signers), "deadline", doc.SigningDeadline)
	return doc, nil
}

// GetDocument returns the document stored under id.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.repomanager.Documents(s.db).Get(ctx, id)
}

// GetDocuments lists creator's documents in creation order. An empty
// creator means the caller. Ids whose document is gone are skipped.
func (s *DocumentService) GetDocuments(ctx context.Context, caller, creator models.Identity) ([]*models.Document, error) {
	if creator == "" {
		creator = caller
	}
	if creator == "" {
		return nil, fmt.Errorf("%w: no creator given", common.ErrorUnauthorized)
	}

	ids, err := s.repomanager.Creators(s.db).Get(ctx, string(creator))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s", common.ErrNoDocumentsForCreator, creator)
		}
		return nil, err
	}

	docs := s.repomanager.Documents(s.db)
	out := make([]*models.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := docs.Get(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.logger.Warn(ctx, "indexed document missing from store", "id", id, "creator", creator)
				continue
			}
			return nil, err
		}
		out = append(out, doc)
	}

	return out, nil
}

// AddSign records caller's signature on document id.
func (s *DocumentService) AddSign(ctx context.Context, caller models.Identity, id string) (*models.Document, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		docs := s.repomanager.Documents(tx)

		doc, err := docs.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := doc.Sign(caller, s.now()); err != nil {
			return nil, err
		}
		if err := docs.Update(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "document signed", "id", doc.ID, "signer", caller, "content_digest", doc.ContentDigest)
	if doc.Completed() {
		s.logger.Info(ctx, "document completed", "id", doc.ID, "creator", doc.Creator, "content_digest", doc.ContentDigest)
	}
	return doc, nil
}

// owned loads id for update after checking that caller's index lists it.
// A listed id with no stored document is a broken index and is reported.
func (s *DocumentService) owned(ctx context.Context, tx dbx.DBTX, caller models.Identity, id string) (*models.Document, error) {
	ids, err := s.repomanager.Creators(tx).Get(ctx, string(caller))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s has no documents", common.ErrorNotFound, caller)
		}
		return nil, err
	}
	if !slices.Contains(ids, id) {
		return nil, fmt.Errorf("%w: document %s is not owned by %s", common.ErrorNotFound, id, caller)
	}

	doc, err := s.repomanager.Documents(tx).GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "creator index references missing document", "id", id, "creator", caller)
			return nil, fmt.Errorf("%w: document %s is indexed for %s but missing from the store", common.ErrorNotFound, id, caller)
		}
		return nil, err
	}
	return doc, nil
}

// CancelDocument makes id permanently unsignable. Only its creator may do so.
func (s *DocumentService) CancelDocument(ctx context.Context, caller models.Identity, id string) (*models.Document, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		doc, err := s.owned(ctx, tx, caller, id)
		if err != nil {
			return nil, err
		}
		if err := doc.Cancel(s.now()); err != nil {
			return nil, err
		}
		if err := s.repomanager.Documents(tx).Update(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "document cancelled", "id", doc.ID, "creator", doc.Creator, "content_digest", doc.ContentDigest)
	return doc, nil
}

// DeleteDocument removes id from the store and from its creator's index and
// returns the removed record.
func (s *DocumentService) DeleteDocument(ctx context.Context, caller models.Identity, id string) (*models.Document, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		doc, err := s.owned(ctx, tx, caller, id)
		if err != nil {
			return nil, err
		}
		if err := s.repomanager.Creators(tx).RemoveID(ctx, string(caller), id); err != nil {
			return nil, err
		}
		if err := s.repomanager.Documents(tx).Delete(ctx, id); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "document deleted", "id", doc.ID, "creator", doc.Creator, "content_digest", doc.ContentDigest)
	return doc, nil
}

// ExtendDeadline moves the signing deadline of id later. The new deadline
// stays bounded by the horizon counted from creation.
func (s *DocumentService) ExtendDeadline(ctx context.Context, caller models.Identity, id, newDeadline string) (*models.Document, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		doc, err := s.owned(ctx, tx, caller, id)
		if err != nil {
			return nil, err
		}
		due, err := deadline.Parse(newDeadline)
		if err != nil {
			return nil, err
		}
		end := deadline.HorizonEnd(doc.CreatedAt, s.horizonMonths)
		if err := doc.ExtendDeadline(due, s.now(), end); err != nil {
			return nil, err
		}
		if err := s.repomanager.Documents(tx).Update(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "document deadline extended", "id", doc.ID, "creator", doc.Creator, "deadline", doc.SigningDeadline)
	return doc, nil
}

// AttachmentURL presigns an upload (creator only) or a download (creator or
// a required signer) of id's file.
func (s *DocumentService) AttachmentURL(ctx context.Context, caller models.Identity, id string, mode AttachmentMode) (*Attachment, error) {
	if s.attachments == nil {
		return nil, common.ErrAttachmentsDisabled
	}
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	switch mode {
	case AttachmentUpload:
		return s.uploadURL(ctx, caller, id)
	case AttachmentDownload:
		return s.downloadURL(ctx, caller, id)
	default:
		return nil, fmt.Errorf("%w: unknown attachment mode %q", common.ErrInvalidDocument, mode)
	}
}

func (s *DocumentService) uploadURL(ctx context.Context, caller models.Identity, id string) (*Attachment, error) {
	doc, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Document, error) {
		doc, err := s.owned(ctx, tx, caller, id)
		if err != nil {
			return nil, err
		}
		if doc.Cancelled() {
			return nil, common.ErrDocumentCancelled
		}
		// Documents created while attachments were off get a key on first upload.
		if doc.AttachmentKey == "" {
			doc.AttachmentKey = s.attachments.NewKey(s.now())
			if err := s.repomanager.Documents(tx).Update(ctx, doc); err != nil {
				return nil, err
			}
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	url, err := s.attachments.UploadURL(ctx, doc.AttachmentKey)
	if err != nil {
		return nil, err
	}
	return &Attachment{Key: doc.AttachmentKey, URL: url, ExpiresAt: s.now().Add(attachments.URLExpiry)}, nil
}

func (s *DocumentService) downloadURL(ctx context.Context, caller models.Identity, id string) (*Attachment, error) {
	doc, err := s.repomanager.Documents(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Creator != caller && !doc.RequiresSigner(caller) {
		return nil, fmt.Errorf("%w: %s", common.ErrNotARequiredSigner, caller)
	}
	if doc.AttachmentKey == "" {
		return nil, fmt.Errorf("%w: document %s has no attachment", common.ErrorNotFound, id)
	}

	url, err := s.attachments.DownloadURL(ctx, doc.AttachmentKey)
	if err != nil {
		return nil, err
	}
	return &Attachment{Key: doc.AttachmentKey, URL: url, ExpiresAt: s.now().Add(attachments.URLExpiry)}, nil
}
