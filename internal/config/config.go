// Package config loads pokecatch configuration from ~/.pokecatch/config.yaml,
// applies environment overrides and exposes the effective settings.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the catalog view: ten entries at start, twenty more per "load more".
const (
	DefaultBaseURL        = "https://pokeapi.co/api/v2"
	DefaultPageSize       = 10
	DefaultPageStep       = 20
	DefaultTimeout        = 15 * time.Second
	DefaultMaxConcurrency = 0
	DefaultUserAgent      = "pokecatch"
	DefaultOutputFormat   = "table"
	configFileName        = "config.yaml"
)

// Environment variables that override file values.
const (
	EnvHome         = "POKECATCH_HOME"
	EnvBaseURL      = "POKECATCH_BASE_URL"
	EnvPageSize     = "POKECATCH_PAGE_SIZE"
	EnvLogLevel     = "POKECATCH_LOG_LEVEL"
	EnvLogFormat    = "POKECATCH_LOG_FORMAT"
	EnvOutputFormat = "POKECATCH_OUTPUT_FORMAT"
)

// Config is the top-level configuration document.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	configPath string
}

// CatalogConfig controls how the catalog API is queried.
type CatalogConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"`
	PageStep int           `yaml:"page_step"`
	// MaxConcurrency bounds in-flight detail requests; 0 means one per entry.
	MaxConcurrency int    `yaml:"max_concurrency"`
	UserAgent      string `yaml:"user_agent"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", "pokecatch.log")
	}

	return &Config{
		Catalog: CatalogConfig{
			BaseURL:        DefaultBaseURL,
			Timeout:        DefaultTimeout,
			PageSize:       DefaultPageSize,
			PageStep:       DefaultPageStep,
			MaxConcurrency: DefaultMaxConcurrency,
			UserAgent:      DefaultUserAgent,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   logFile,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
	}
}

// New returns the defaults overlaid with the user's config file (if present)
// and environment overrides. File errors are ignored so a broken file never
// prevents startup; use Load to surface them.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = Default()
		cfg.ApplyEnv(os.LookupEnv)
	}
	return cfg
}

// Load reads ~/.pokecatch/config.yaml over the defaults and applies
// environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, configFileName)
	cfg.configPath = path

	if _, statErr := os.Stat(path); statErr == nil {
		if err = cfg.LoadFile(path); err != nil {
			return nil, err
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", path, statErr)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile decodes the YAML file at path onto cfg.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides file values with POKECATCH_* environment variables.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvBaseURL); ok && v != "" {
		c.Catalog.BaseURL = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Catalog.PageSize = n
		}
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks that the effective configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("catalog.base_url must be an absolute URL, got %q", c.Catalog.BaseURL)
	}
	if c.Catalog.PageSize < 0 {
		return fmt.Errorf("catalog.page_size must be >= 0, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.PageStep < 1 {
		return fmt.Errorf("catalog.page_step must be >= 1, got %d", c.Catalog.PageStep)
	}
	if c.Catalog.MaxConcurrency < 0 {
		return fmt.Errorf("catalog.max_concurrency must be >= 0, got %d", c.Catalog.MaxConcurrency)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must be >= 0, got %s", c.Catalog.Timeout)
	}
	switch c.Output.DefaultFormat {
	case "table", "json":
	default:
		return fmt.Errorf("output.default_format must be 'table' or 'json', got %q", c.Output.DefaultFormat)
	}
	return nil
}

// Path returns the file the config was loaded from (may not exist).
func (c *Config) Path() string {
	return c.configPath
}

// Save writes cfg as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
