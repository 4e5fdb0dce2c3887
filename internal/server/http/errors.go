package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/go-chi/render"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope every failed request gets.
type errorResponse struct {
	RequestID string    `json:"request_id"`
	Error     errorBody `json:"error"`
}

var statusTable = []struct {
	err    error
	status int
}{
	{common.ErrorNotFound, http.StatusNotFound},
	{common.ErrNoDocumentsForCreator, http.StatusNotFound},
	{common.ErrDuplicateDocument, http.StatusConflict},
	{common.ErrDocumentCancelled, http.StatusConflict},
	{common.ErrDeadlinePassed, http.StatusConflict},
	{common.ErrAlreadySigned, http.StatusConflict},
	{common.ErrInvalidDeadline, http.StatusBadRequest},
	{common.ErrInvalidDocument, http.StatusBadRequest},
	{common.ErrInsufficientFee, http.StatusPaymentRequired},
	{common.ErrNotARequiredSigner, http.StatusForbidden},
	{common.ErrorUnauthorized, http.StatusUnauthorized},
	{common.ErrInvalidToken, http.StatusUnauthorized},
	{common.ErrTokenExpired, http.StatusUnauthorized},
	{common.ErrAttachmentsDisabled, http.StatusNotImplemented},
}

func statusOf(err error) int {
	for _, e := range statusTable {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)

	body := errorBody{Code: common.Reason(err), Message: err.Error()}
	if code == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "error", err, "request_id", requestIDFrom(r.Context()))
		body.Message = common.ErrorInternal.Error()
	}

	render.Status(r, code)
	render.JSON(w, r, errorResponse{RequestID: requestIDFrom(r.Context()), Error: body})
}

// writeBadRequest reports a malformed request body or query.
func (s *Server) writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{
		RequestID: requestIDFrom(r.Context()),
		Error:     errorBody{Code: "INVALID_REQUEST", Message: msg},
	})
}
