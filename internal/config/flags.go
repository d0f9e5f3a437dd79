package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pwcred/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-w int      concurrent key derivations (0 = GOMAXPROCS)
//	-l string   log level
//	-f string   log format (text|json)
//	-t int      derivation slot wait timeout, seconds
//
// The function filters os.Args to only include the flags it knows about,
// so command arguments after them are not touched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-w", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "concurrent key derivations")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")
	acquireTimeout := fs.Int("t", int(cfg.AcquireTimeout.Seconds()), "derivation slot wait timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so a sub-second JSON timeout survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.AcquireTimeout = time.Duration(*acquireTimeout) * time.Second
		}
	})
}
