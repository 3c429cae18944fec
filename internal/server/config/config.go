// Package config handles configuration for the front server, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the GymFeed front server.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - BackendURL: base URL of the REST backend that /v1 is proxied to.
//   - InsecureBackend: skip TLS verification towards the backend.
//   - PublicDir: directory with the web build, used when S3Bucket is empty.
//   - S3Bucket / S3Prefix: bucket and key prefix holding the web build.
//   - S3Region / S3BaseEndpoint: object storage location.
//   - S3AccessKey / S3SecretKey: static credentials; empty means the SDK
//     default credential chain.
//   - AllowedOrigins: CORS origins, "*" for any.
//   - ShutdownTimeout: how long in-flight requests may finish on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr            string
	BackendURL      string
	InsecureBackend bool
	PublicDir       string
	S3Bucket        string
	S3Prefix        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.BackendURL = "http://localhost:8080"
	c.InsecureBackend = false
	c.PublicDir = "public"
	c.S3Bucket = ""
	c.S3Prefix = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.AllowedOrigins = []string{"*"}
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
