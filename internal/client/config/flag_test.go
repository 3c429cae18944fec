package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api.test/v1", "-d", "/tmp/s.db", "-t", "5", "-device", "dev-1", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "http://api.test/v1",
				StateDB:        "/tmp/s.db",
				RequestTimeout: 5 * time.Second,
				DeviceToken:    "dev-1",
				LogLevel:       "debug",
			},
		},
		{
			name:     "foreign flags and positional route ignored",
			args:     []string{"cmd", "-c", "cfg.json", "/motivation", "-t", "7"},
			expected: &Config{RequestTimeout: 7 * time.Second},
		},
		{
			name:     "reset before a positional route",
			args:     []string{"cmd", "-reset", "/ranking"},
			expected: &Config{ResetState: true},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
