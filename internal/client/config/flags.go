package config

import (
	"flag"
	"os"
	"time"

	"github.com/amumal/amumal-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-n int      feed page size
//	-s string   local storage DSN
//	-t int      request timeout in seconds
//
// os.Args is filtered to the flags handled here, so the config-file flags
// parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "feed page size")
	fs.StringVar(&cfg.StorageDSN, "s", cfg.StorageDSN, "local storage DSN")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
