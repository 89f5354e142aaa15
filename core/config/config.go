// Package config loads client configuration from YAML with env overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no path is given.
const DefaultPath = "config.yaml"

// Duration wraps time.Duration so YAML accepts "30s" style strings.
type Duration time.Duration

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the plain time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the client-side configuration.
type Config struct {
	BaseURL        string   `yaml:"baseURL"`
	RequestTimeout Duration `yaml:"requestTimeout"`
	RateLimitQPS   float64       `yaml:"rateLimitQPS"`
	RateLimitBurst int           `yaml:"rateLimitBurst"`
	LogLevel       string        `yaml:"logLevel"`

	// Upload limits mirror what the backend enforces so bad files are
	// rejected before any bytes move.
	MaxUploadBytes    int64    `yaml:"maxUploadBytes"`
	AllowedExtensions []string `yaml:"allowedExtensions"`
	MaxUploadParallel int      `yaml:"maxUploadParallel"`

	// ReconcileSchedule is a cron expression for periodic slice refetch.
	// Empty disables reconciliation.
	ReconcileSchedule string `yaml:"reconcileSchedule"`

	// AdminLoginAllowed enables the employee-portal "administrator"
	// username special case.
	AdminLoginAllowed bool `yaml:"adminLoginAllowed"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:           "https://api.frontdash.example.com",
		RequestTimeout:    Duration(30 * time.Second),
		RateLimitQPS:      10,
		RateLimitBurst:    20,
		LogLevel:          "info",
		MaxUploadBytes:    10 << 20,
		AllowedExtensions: []string{".pdf", ".png", ".jpg", ".jpeg"},
		MaxUploadParallel: 3,
	}
}

// Load reads the config file and applies FRONTDASH_* env overrides. A missing
// file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FRONTDASH_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("FRONTDASH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("FRONTDASH_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			cfg.RequestTimeout = Duration(d)
		}
	}
	if v := os.Getenv("FRONTDASH_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("FRONTDASH_ADMIN_LOGIN_ALLOWED"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.AdminLoginAllowed = b
		}
	}
	if v := os.Getenv("FRONTDASH_RECONCILE_SCHEDULE"); v != "" {
		cfg.ReconcileSchedule = strings.TrimSpace(v)
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: baseURL is required")
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = Duration(30 * time.Second)
	}
	if c.MaxUploadParallel <= 0 {
		c.MaxUploadParallel = 3
	}
	return nil
}
