package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/signly/internal/flagx"
)

// GlobalFlags are the flags read by LoadConfig. Each takes a value.
var GlobalFlags = []string{"-a", "-k", "-o", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
// Only the global flags are considered, so subcommand flags pass through.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the signly server")
	fs.StringVar(&cfg.AccessToken, "k", cfg.AccessToken, "access token")
	timeout := fs.Int("o", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
