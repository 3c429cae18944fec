package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-f string   backend URL the /v1 prefix is forwarded to
//	-k          skip TLS verification towards the backend
//	-d string   public directory with the web build
//	-o string   comma-separated CORS origins
//	-w int      shutdown timeout, seconds
//	-l string   log level
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-x string   S3 key prefix
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Only the flags known here are passed to the FlagSet (see
// flagx.FilterArgs); a malformed value panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-k", "-d", "-o", "-w", "-l", "-u", "-p", "-b", "-x", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.BackendURL, "f", config.BackendURL, "backend URL")
	fs.BoolVar(&config.InsecureBackend, "k", config.InsecureBackend, "skip backend TLS verification")
	fs.StringVar(&config.PublicDir, "d", config.PublicDir, "public directory")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins")
	shutdown := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Prefix, "x", config.S3Prefix, "S3 key prefix")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AllowedOrigins = splitList(*origins)
	config.ShutdownTimeout = time.Duration(*shutdown) * time.Second
}
