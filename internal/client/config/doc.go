// Package config loads runtime configuration for the signly CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Global command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the signly gRPC endpoint
//	-k string   access token (see the "token" command)
//	-o int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJhbGciOi...",
//	  "request_timeout": "10s"
//	}
//
// GlobalFlags lists the flag names this package consumes so the CLI can
// separate them from the subcommand and its own flags.
package config
