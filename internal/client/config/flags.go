package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/flagx"
)

// FlagsWithValue lists the flags of this package that take a value, so the
// caller can tell flag values apart from positional arguments.
var FlagsWithValue = []string{"-a", "-d", "-t", "-device", "-l", "-c", "-config", "--config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags known here are passed to the FlagSet (see
// flagx.FilterArgs); a malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-device", "-l", "-reset"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.StateDB, "d", cfg.StateDB, "path of the local state database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DeviceToken, "device", cfg.DeviceToken, "push device token to register after login")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.ResetState, "reset", cfg.ResetState, "clear the saved session and preferences")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
