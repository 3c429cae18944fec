package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"addr":             ":9000",
		"backend_url":      "https://api.example",
		"insecure_backend": true,
		"public_dir":       "dist",
		"s3_bucket":        "bucket",
		"s3_prefix":        "web/",
		"s3_region":        "eu-west-1",
		"s3_base_endpoint": "http://minio:9000",
		"s3_access_key":    "ak",
		"s3_secret_key":    "sk",
		"allowed_origins":  []string{"https://gymfeed.example"},
		"shutdown_timeout": "5s",
		"log_level":        "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "https://api.example", cfg.BackendURL)
		assert.True(t, cfg.InsecureBackend)
		assert.Equal(t, "dist", cfg.PublicDir)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "web/", cfg.S3Prefix)
		assert.Equal(t, "eu-west-1", cfg.S3Region)
		assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
		assert.Equal(t, "ak", cfg.S3AccessKey)
		assert.Equal(t, "sk", cfg.S3SecretKey)
		assert.Equal(t, []string{"https://gymfeed.example"}, cfg.AllowedOrigins)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, "", "", map[string]any{"addr": ":1"})
		os.Args = []string{"testbin", "-c", partial}

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg)

		assert.Equal(t, ":1", cfg.Addr)
		assert.Equal(t, "public", cfg.PublicDir)
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{Addr: "defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.Addr)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})
}
