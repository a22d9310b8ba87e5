package config

import (
	"flag"
	"os"

	"github.com/zarclabs/zarc-auth/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   server base URL (e.g., "http://localhost:8000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "e", config.ServerBaseURL, "auth server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
