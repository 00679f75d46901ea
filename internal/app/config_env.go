package app

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.URL == "" {
		cfg.URL = os.Getenv("VARATES_URL")
	}
	if cfg.Year == 0 {
		if n, err := strconv.Atoi(os.Getenv("VARATES_YEAR")); err == nil && n > 0 {
			cfg.Year = n
		}
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("VARATES_OUT")
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = os.Getenv("VARATES_SNAPSHOT")
	}
	if !cfg.RenderTimeoutSet {
		if d, err := time.ParseDuration(os.Getenv("RENDER_TIMEOUT")); err == nil && d > 0 {
			cfg.RenderTimeout = d
			cfg.RenderTimeoutSet = true
		}
	}
}
