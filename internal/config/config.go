package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the engine and its collaborators need. All of it is
// passed explicitly into entry points so the engine runs against synthetic
// corpora in tests with no network and no ambient globals.
type Config struct {
	// APIBase is the board API root, e.g. https://clawboard.io/api/v1
	APIBase string `yaml:"api_base"`

	// CredentialsPath is the JSON credentials file holding the api_key.
	CredentialsPath string `yaml:"credentials_path"`

	// FetchLimit is the maximum number of tasks fetched per run.
	FetchLimit int `yaml:"fetch_limit"`

	// FetchTimeout bounds every board API call.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// RequestsPerSecond rate-limits board API calls. 0 = unlimited.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// SealDate is the instant at which blind collection ends. Collection
	// runs refuse to start at or after this instant.
	SealDate time.Time `yaml:"seal_date"`

	// DataDir is where snapshots and the snapshot catalog live.
	DataDir string `yaml:"data_dir"`

	// KeywordMinLength is the minimum kept token length for keyword
	// extraction. 0 = extractor default.
	KeywordMinLength int `yaml:"keyword_min_length"`

	// ExtraStopWords are excluded from keyword extraction in addition to
	// the built-in list.
	ExtraStopWords []string `yaml:"extra_stop_words"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		APIBase:           "https://clawboard.io/api/v1",
		CredentialsPath:   filepath.Join(home, ".config", "clawboard", "echo-credentials.json"),
		FetchLimit:        100,
		FetchTimeout:      10 * time.Second,
		RequestsPerSecond: 5,
		SealDate:          time.Date(2026, 3, 3, 22, 9, 0, 0, time.UTC),
		DataDir:           "data",
		KeywordMinLength:  0,
	}
}

// Load reads configuration from a YAML file, applies BOARDLENS_* environment
// overrides, and validates the result. A missing file is not an error: the
// defaults plus environment are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
// Prefix: BOARDLENS_
func (c *Config) applyEnv() {
	if val := os.Getenv("BOARDLENS_API_BASE"); val != "" {
		c.APIBase = val
	}
	if val := os.Getenv("BOARDLENS_CREDENTIALS_PATH"); val != "" {
		c.CredentialsPath = val
	}
	if val := os.Getenv("BOARDLENS_FETCH_LIMIT"); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			c.FetchLimit = limit
		}
	}
	if val := os.Getenv("BOARDLENS_FETCH_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			c.FetchTimeout = d
		}
	}
	if val := os.Getenv("BOARDLENS_REQUESTS_PER_SECOND"); val != "" {
		if rps, err := strconv.ParseFloat(val, 64); err == nil && rps >= 0 {
			c.RequestsPerSecond = rps
		}
	}
	if val := os.Getenv("BOARDLENS_SEAL_DATE"); val != "" {
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			c.SealDate = t
		}
	}
	if val := os.Getenv("BOARDLENS_DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("BOARDLENS_KEYWORD_MIN_LENGTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.KeywordMinLength = n
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base is required")
	}
	if c.FetchLimit <= 0 {
		return fmt.Errorf("fetch_limit must be positive, got %d", c.FetchLimit)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %v", c.FetchTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be non-negative, got %g", c.RequestsPerSecond)
	}
	if c.KeywordMinLength < 0 {
		return fmt.Errorf("keyword_min_length must be non-negative, got %d", c.KeywordMinLength)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}
