package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
	URL      string `yaml:"url" json:"url"`
	Year     int    `yaml:"year" json:"year"`
	Out      string `yaml:"out" json:"out"`
	Preview  int    `yaml:"preview" json:"preview"`
	Snapshot string `yaml:"snapshot" json:"snapshot"`

	Render struct {
		// Timeout is a duration string like "20s".
		Timeout  string `yaml:"timeout" json:"timeout"`
		Headless *bool  `yaml:"headless" json:"headless"`
	} `yaml:"render" json:"render"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this function lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.URL == "" && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if cfg.Year == 0 && fc.Year > 0 {
		cfg.Year = fc.Year
	}
	if cfg.OutputPath == "" && fc.Out != "" {
		cfg.OutputPath = fc.Out
	}
	if cfg.Preview == 0 && fc.Preview > 0 {
		cfg.Preview = fc.Preview
	}
	if cfg.SnapshotPath == "" && fc.Snapshot != "" {
		cfg.SnapshotPath = fc.Snapshot
	}
	if !cfg.RenderTimeoutSet && fc.Render.Timeout != "" {
		if d, err := time.ParseDuration(fc.Render.Timeout); err == nil && d > 0 {
			cfg.RenderTimeout = d
		}
	}
	if !cfg.RenderHeadlessSet && fc.Render.Headless != nil {
		cfg.RenderHeadless = *fc.Render.Headless
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
