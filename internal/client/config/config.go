package config

import (
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/common"
)

// Config holds runtime settings for the GymFeed terminal client.
//
// Fields:
//   - APIBaseURL: base URL of the REST API, including the version prefix.
//   - StateDB: path of the SQLite file holding the session and preferences.
//   - RequestTimeout: per-request timeout of the API client.
//   - DeviceToken: push device token registered after login, if set.
//   - LogLevel: debug, info, warn or error.
//   - ResetState: wipe the local state database before starting.
type Config struct {
	APIBaseURL     string
	StateDB        string
	RequestTimeout time.Duration
	DeviceToken    string
	LogLevel       string
	ResetState     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000" + common.APIPrefix
	c.StateDB = "gymfeed.db"
	c.RequestTimeout = 10 * time.Second
	c.DeviceToken = ""
	c.LogLevel = "warn"
	c.ResetState = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
