package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-q string   URL of the question/answer endpoint (default from Config)
//	-s string   URL of the corpus sync endpoint (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path of the local sqlite database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-q", "-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.QueryEndpointURL, "q", cfg.QueryEndpointURL, "URL of the question endpoint")
	fs.StringVar(&cfg.SyncEndpointURL, "s", cfg.SyncEndpointURL, "URL of the corpus sync endpoint")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
