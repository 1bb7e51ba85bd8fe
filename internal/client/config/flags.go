package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/jobapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   seed file
//	-l string   log level
//	-f string   log file
//
// os.Args is filtered with flagx.FilterArgs so that -c and other layers'
// flags do not make the parse fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SeedFile, "d", cfg.SeedFile, "seed data file (JSON)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
