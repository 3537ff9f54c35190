package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/filebox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-d string   download directory (default from Config)
//	-db string  local session database path (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-db"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "directory downloads are saved into")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
