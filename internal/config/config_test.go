package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.FetchLimit != 100 {
		t.Errorf("fetch limit = %d, want 100", cfg.FetchLimit)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("fetch timeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.APIBase == "" {
		t.Error("api base must default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not fail: %v", err)
	}
	if cfg.FetchLimit != DefaultConfig().FetchLimit {
		t.Errorf("fetch limit = %d, want default", cfg.FetchLimit)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
api_base: https://board.example/api/v2
fetch_limit: 25
fetch_timeout: 3s
seal_date: 2026-06-01T00:00:00Z
data_dir: /tmp/lens
keyword_min_length: 3
extra_stop_words: [refactor, chore]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != "https://board.example/api/v2" {
		t.Errorf("api base = %q", cfg.APIBase)
	}
	if cfg.FetchLimit != 25 {
		t.Errorf("fetch limit = %d, want 25", cfg.FetchLimit)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("fetch timeout = %v, want 3s", cfg.FetchTimeout)
	}
	want := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.SealDate.Equal(want) {
		t.Errorf("seal date = %v, want %v", cfg.SealDate, want)
	}
	if cfg.KeywordMinLength != 3 {
		t.Errorf("keyword min length = %d, want 3", cfg.KeywordMinLength)
	}
	if len(cfg.ExtraStopWords) != 2 {
		t.Errorf("extra stop words = %v", cfg.ExtraStopWords)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fetch_limit: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOARDLENS_API_BASE", "https://env.example/api")
	t.Setenv("BOARDLENS_FETCH_LIMIT", "7")
	t.Setenv("BOARDLENS_FETCH_TIMEOUT", "30s")
	t.Setenv("BOARDLENS_SEAL_DATE", "2027-01-01T00:00:00Z")
	t.Setenv("BOARDLENS_DATA_DIR", "/tmp/envdata")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != "https://env.example/api" {
		t.Errorf("api base = %q", cfg.APIBase)
	}
	if cfg.FetchLimit != 7 {
		t.Errorf("fetch limit = %d, want 7", cfg.FetchLimit)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("fetch timeout = %v, want 30s", cfg.FetchTimeout)
	}
	if cfg.SealDate.Year() != 2027 {
		t.Errorf("seal date = %v, want 2027", cfg.SealDate)
	}
	if cfg.DataDir != "/tmp/envdata" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
}

func TestEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("BOARDLENS_FETCH_LIMIT", "-3")
	t.Setenv("BOARDLENS_FETCH_TIMEOUT", "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FetchLimit != DefaultConfig().FetchLimit {
		t.Errorf("invalid env limit applied: %d", cfg.FetchLimit)
	}
	if cfg.FetchTimeout != DefaultConfig().FetchTimeout {
		t.Errorf("invalid env timeout applied: %v", cfg.FetchTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty api base", func(c *Config) { c.APIBase = "" }},
		{"zero fetch limit", func(c *Config) { c.FetchLimit = 0 }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"negative rate", func(c *Config) { c.RequestsPerSecond = -1 }},
		{"negative min length", func(c *Config) { c.KeywordMinLength = -1 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
