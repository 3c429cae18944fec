package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gymfeed/internal/flagx"
	"github.com/dmitrijs2005/gymfeed/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Pointer fields tell absent keys apart from zero values, and timex.Duration
// accepts both "10s" strings and integer nanoseconds.
type JsonConfig struct {
	Addr            *string         `json:"addr"`
	BackendURL      *string         `json:"backend_url"`
	InsecureBackend *bool           `json:"insecure_backend"`
	PublicDir       *string         `json:"public_dir"`
	S3Bucket        *string         `json:"s3_bucket"`
	S3Prefix        *string         `json:"s3_prefix"`
	S3Region        *string         `json:"s3_region"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint"`
	S3AccessKey     *string         `json:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key"`
	AllowedOrigins  []string        `json:"allowed_origins"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag into config. Without the flag nothing is loaded. If the
// file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Addr, c.Addr)
	setString(&config.BackendURL, c.BackendURL)
	if c.InsecureBackend != nil {
		config.InsecureBackend = *c.InsecureBackend
	}
	setString(&config.PublicDir, c.PublicDir)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Prefix, c.S3Prefix)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
