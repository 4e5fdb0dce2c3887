// Package cli implements signly-cli, a one-shot command-line client for the
// signly gRPC service.
//
//	signly-cli [-a addr] [-k token] [-o seconds] <command> [flags]
//
// Every command prints a single JSON document on stdout. Failures print
// {"error": {"code": ..., "message": ...}} on stderr and exit non-zero.
// The token and digest commands work offline.
package cli
