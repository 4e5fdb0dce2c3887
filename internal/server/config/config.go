// Package config handles configuration for the signly server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Storage backends understood by the repository manager.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Document id strategies.
const (
	// IDModeDerived derives the id from the creator and the content digest.
	IDModeDerived = "derived"
	// IDModeSupplied takes the id the caller supplies.
	IDModeSupplied = "supplied"
)

// Config holds runtime settings for the signly server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses for the gRPC and REST endpoints.
//   - StorageType / DatabaseDSN: "sqlite" (modernc) or "postgres" (pgx) and its DSN.
//   - SecretKey: HMAC secret for caller identity tokens (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of tokens minted by the CLI.
//   - DeadlineHorizonMonths: how far past creation a signing deadline may lie.
//   - MinimumFee: minimum deposit, in the smallest currency unit; "0" disables the check.
//   - IDMode: "derived" or "supplied".
//   - S3*: attachment storage; an empty S3Bucket disables attachments.
type Config struct {
	EndpointAddrGRPC            string
	EndpointAddrHTTP            string
	StorageType                 string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	DeadlineHorizonMonths       int
	MinimumFee                  string
	IDMode                      string
	LogLevel                    string
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.StorageType = StorageSQLite
	c.DatabaseDSN = "file:signly.db?_pragma=busy_timeout(5000)"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.DeadlineHorizonMonths = 6
	c.MinimumFee = "100000000000000000000000"
	c.IDMode = IDModeDerived
	c.LogLevel = "info"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// AttachmentsEnabled reports whether an attachment bucket is configured.
func (c *Config) AttachmentsEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
