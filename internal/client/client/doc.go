// Package client talks to the signly gRPC service.
//
// GRPCClient owns a connection, attaches the caller's access token to every
// call through a unary interceptor and turns gRPC statuses back into the
// sentinel errors of package common, so callers can match rejections with
// errors.Is exactly as the server-side code does.
//
// Connection failures surface as ErrUnavailable.
package client
