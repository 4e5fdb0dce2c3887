package grpc

import (
	"errors"

	"github.com/dmitrijs2005/signly/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeTable = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrNoDocumentsForCreator, codes.NotFound},
	{common.ErrDuplicateDocument, codes.AlreadyExists},
	{common.ErrInvalidDeadline, codes.InvalidArgument},
	{common.ErrInvalidDocument, codes.InvalidArgument},
	{common.ErrInsufficientFee, codes.FailedPrecondition},
	{common.ErrDocumentCancelled, codes.FailedPrecondition},
	{common.ErrDeadlinePassed, codes.FailedPrecondition},
	{common.ErrAlreadySigned, codes.FailedPrecondition},
	{common.ErrNotARequiredSigner, codes.PermissionDenied},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrAttachmentsDisabled, codes.Unimplemented},
}

func codeOf(err error) codes.Code {
	for _, c := range codeTable {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return codes.Internal
}

// toStatus converts a service error into a status carrying an ErrorInfo
// with the failure reason. Internal failures keep their details server-side.
func toStatus(err error) error {
	code := codeOf(err)

	msg := err.Error()
	if code == codes.Internal {
		msg = common.ErrorInternal.Error()
	}

	st := status.New(code, msg)
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: common.Reason(err),
		Domain: common.ErrorDomain,
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}
