package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/signly/internal/flagx"
)

var serverFlags = []string{"-a", "-w", "-k", "-d", "-s", "-t", "-m", "-f", "-i", "-l", "-u", "-p", "-b", "-g", "-e"}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   REST bind address (e.g., ":8080")
//	-k string   storage type: sqlite | postgres
//	-d string   database DSN
//	-s string   token HMAC secret key
//	-t int      token validity, minutes
//	-m int      signing deadline horizon, months
//	-f string   minimum fee in the smallest unit ("0" disables)
//	-i string   id mode: derived | supplied
//	-l string   log level
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty disables attachments)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// os.Args is first filtered with flagx.FilterArgs so the -c/-config flag
// handled by parseJson does not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "REST address and port")
	fs.StringVar(&config.StorageType, "k", config.StorageType, "storage type (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.IntVar(&config.DeadlineHorizonMonths, "m", config.DeadlineHorizonMonths, "signing deadline horizon (in months)")
	fs.StringVar(&config.MinimumFee, "f", config.MinimumFee, "minimum fee per document")
	fs.StringVar(&config.IDMode, "i", config.IDMode, "document id mode (derived|supplied)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 attachment bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
