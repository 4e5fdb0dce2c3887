package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/signly/internal/common"
	pb "github.com/dmitrijs2005/signly/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SignlyServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewSignlyClient connects lazily to endpointURL. An empty token makes
// anonymous calls.
func NewSignlyClient(endpointURL, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	if err := c.InitGRPCClient(grpc.WithTransportCredentials(insecure.NewCredentials())); err != nil {
		return nil, err
	}
	return c, nil
}

// InitGRPCClient dials the endpoint with the token interceptor plus opts.
func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithUnaryInterceptor(s.accessTokenInterceptor)}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSignlyServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError turns a gRPC status into the matching sentinel from package
// common, keeping the server's message.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if st.Code() == codes.Unavailable {
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != common.ErrorDomain {
			continue
		}
		sentinel := common.FromReason(info.GetReason())
		if st.Message() == sentinel.Error() {
			return sentinel
		}
		return fmt.Errorf("%w: %s", sentinel, st.Message())
	}

	if st.Code() == codes.Unauthenticated {
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, st.Message())
	}
	return err
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx, &pb.PingRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateDocument(ctx context.Context, req *pb.CreateDocumentRequest) (*pb.Document, error) {
	doc, err := s.client.CreateDocument(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) GetDocument(ctx context.Context, id string) (*pb.Document, error) {
	doc, err := s.client.GetDocument(ctx, &pb.DocumentRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) GetDocuments(ctx context.Context, creator string) ([]*pb.Document, error) {
	resp, err := s.client.GetDocuments(ctx, &pb.GetDocumentsRequest{Creator: creator})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetDocuments(), nil
}

func (s *GRPCClient) AddSign(ctx context.Context, id string) (*pb.Document, error) {
	doc, err := s.client.AddSign(ctx, &pb.DocumentRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) CancelDocument(ctx context.Context, id string) (*pb.Document, error) {
	doc, err := s.client.CancelDocument(ctx, &pb.DocumentRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) DeleteDocument(ctx context.Context, id string) (*pb.Document, error) {
	doc, err := s.client.DeleteDocument(ctx, &pb.DocumentRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) ExtendDeadline(ctx context.Context, id, deadline string) (*pb.Document, error) {
	doc, err := s.client.ExtendDeadline(ctx, &pb.ExtendDeadlineRequest{Id: id, Deadline: deadline})
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *GRPCClient) AttachmentURL(ctx context.Context, id, mode string) (*pb.AttachmentURLResponse, error) {
	resp, err := s.client.GetAttachmentURL(ctx, &pb.AttachmentURLRequest{Id: id, Mode: mode})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}
