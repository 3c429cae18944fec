package config

import (
	"github.com/dmitrijs2005/gymfeed/internal/flagx"
)

// parseEnv overlays Config with the deployment environment:
//
//	PORT         listen port, becomes Addr ":PORT"
//	BACKEND_URL  backend base URL
//	PUBLIC_DIR   static assets directory
//	S3_BUCKET    bucket holding the static assets
func parseEnv(cfg *Config) {
	var port string
	flagx.EnvString(&port, "PORT")
	if port != "" {
		cfg.Addr = ":" + port
	}

	flagx.EnvString(&cfg.BackendURL, "BACKEND_URL")
	flagx.EnvString(&cfg.PublicDir, "PUBLIC_DIR")
	flagx.EnvString(&cfg.S3Bucket, "S3_BUCKET")
}
