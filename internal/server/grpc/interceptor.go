package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods may be called anonymously. A token, if sent, is still verified.
var publicMethods = map[string]bool{
	pb.SignlyService_GetDocument_FullMethodName:  true,
	pb.SignlyService_GetDocuments_FullMethodName: true,
	pb.SignlyService_Ping_FullMethodName:         true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}

	if accessToken == "" {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	account, err := auth.GetAccountFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(auth.WithIdentity(ctx, account), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
