package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gymfeed/internal/flagx"
	"github.com/dmitrijs2005/gymfeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell absent keys apart from empty values.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	StateDB        *string         `json:"state_db"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DeviceToken    *string         `json:"device_token"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing happens; read or decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StateDB != nil {
		cfg.StateDB = *jc.StateDB
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DeviceToken != nil {
		cfg.DeviceToken = *jc.DeviceToken
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
