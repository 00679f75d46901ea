package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyEnvToConfig_FlagsWin(t *testing.T) {
	t.Setenv("VARATES_URL", "https://env.example/rates")
	t.Setenv("VARATES_YEAR", "2023")
	t.Setenv("RENDER_TIMEOUT", "30s")

	cfg := Config{URL: "https://flag.example/rates"}
	ApplyEnvToConfig(&cfg)

	if cfg.URL != "https://flag.example/rates" {
		t.Fatalf("URL = %q, explicit value must win over env", cfg.URL)
	}
	if cfg.Year != 2023 {
		t.Fatalf("Year = %d, want env fallback", cfg.Year)
	}
	if cfg.RenderTimeout != 30*time.Second {
		t.Fatalf("RenderTimeout = %v", cfg.RenderTimeout)
	}
}

func TestRenderTimeoutPrecedence(t *testing.T) {
	// An explicit flag holds against both env and file, even when its value
	// equals the built-in default.
	t.Setenv("RENDER_TIMEOUT", "30s")

	cfg := Config{RenderTimeout: 15 * time.Second, RenderTimeoutSet: true}
	ApplyEnvToConfig(&cfg)
	if cfg.RenderTimeout != 15*time.Second {
		t.Fatalf("env overrode explicit flag: %v", cfg.RenderTimeout)
	}

	var fc FileConfig
	fc.Render.Timeout = "20s"
	ApplyFileConfig(&cfg, fc)
	if cfg.RenderTimeout != 15*time.Second {
		t.Fatalf("file overrode explicit flag: %v", cfg.RenderTimeout)
	}

	// Without an explicit flag, env wins and the file no longer applies.
	cfg = Config{RenderTimeout: 15 * time.Second}
	ApplyEnvToConfig(&cfg)
	if cfg.RenderTimeout != 30*time.Second {
		t.Fatalf("env did not apply: %v", cfg.RenderTimeout)
	}
	ApplyFileConfig(&cfg, fc)
	if cfg.RenderTimeout != 30*time.Second {
		t.Fatalf("file overrode env: %v", cfg.RenderTimeout)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varates.yaml")
	content := `url: https://file.example/rates
year: 2024
out: rates.csv
render:
  timeout: 20s
  headless: false
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	cfg := Config{RenderHeadless: true}
	ApplyFileConfig(&cfg, fc)

	if cfg.URL != "https://file.example/rates" || cfg.Year != 2024 || cfg.OutputPath != "rates.csv" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.RenderTimeout != 20*time.Second {
		t.Fatalf("RenderTimeout = %v", cfg.RenderTimeout)
	}
	if cfg.RenderHeadless {
		t.Fatal("file config should switch headless off")
	}
	if !cfg.Verbose {
		t.Fatal("file config should enable verbose")
	}
}

func TestApplyFileConfig_DoesNotOverrideExplicit(t *testing.T) {
	fc := FileConfig{URL: "https://file.example", Year: 2020, Out: "file.csv"}
	cfg := Config{URL: "https://flag.example", Year: 2024, OutputPath: "flag.csv"}
	ApplyFileConfig(&cfg, fc)
	if cfg.URL != "https://flag.example" || cfg.Year != 2024 || cfg.OutputPath != "flag.csv" {
		t.Fatalf("file config must not override explicit values: %+v", cfg)
	}
}
