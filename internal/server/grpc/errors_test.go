package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err    error
		code   codes.Code
		reason string
	}{
		{fmt.Errorf("get x: %w", common.ErrorNotFound), codes.NotFound, "NOT_FOUND"},
		{common.ErrNoDocumentsForCreator, codes.NotFound, "NO_DOCUMENTS_FOR_CREATOR"},
		{common.ErrDuplicateDocument, codes.AlreadyExists, "DUPLICATE_DOCUMENT"},
		{common.ErrInvalidDeadline, codes.InvalidArgument, "INVALID_DEADLINE"},
		{common.ErrInsufficientFee, codes.FailedPrecondition, "INSUFFICIENT_FEE"},
		{common.ErrAlreadySigned, codes.FailedPrecondition, "ALREADY_SIGNED"},
		{common.ErrNotARequiredSigner, codes.PermissionDenied, "NOT_A_REQUIRED_SIGNER"},
		{common.ErrTokenExpired, codes.Unauthenticated, "TOKEN_EXPIRED"},
		{common.ErrAttachmentsDisabled, codes.Unimplemented, "ATTACHMENTS_DISABLED"},
		{errors.New("db error: connection reset"), codes.Internal, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.code, st.Code())

			require.Len(t, st.Details(), 1)
			info, ok := st.Details()[0].(*errdetails.ErrorInfo)
			require.True(t, ok)
			assert.Equal(t, tt.reason, info.GetReason())
			assert.Equal(t, common.ErrorDomain, info.GetDomain())
		})
	}
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	st := status.Convert(toStatus(errors.New("db error: password authentication failed")))
	assert.Equal(t, "internal error", st.Message())
}
