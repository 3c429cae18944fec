// Package config loads runtime configuration for the GymFeed terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the REST API (e.g. http://localhost:3000/v1)
//	-d string       path of the local state database
//	-t int          request timeout (seconds)
//	-device string  push device token to register after login
//	-l string       log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "api_base_url": "http://localhost:3000/v1",
//	  "state_db": "gymfeed.db",
//	  "request_timeout": "10s",
//	  "device_token": "",
//	  "log_level": "warn"
//	}
package config
