package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = "10000"
	DefaultPlatformBaseURL = "https://api.servicem8.com/api_1.0"
	DefaultStatusValue     = "Sent"
	DefaultRateBurst       = 5
)

// Config is loaded once at start-up and passed to constructors by value.
type Config struct {
	Port           string         `yaml:"port"`
	AllowedOrigins string         `yaml:"allowed_origins"`
	Platform       PlatformConfig `yaml:"platform"`
	Log            LogConfig      `yaml:"log"`
}

// PlatformConfig describes the field-service platform the service talks to.
type PlatformConfig struct {
	BaseURL string `yaml:"base_url"`
	// StatusFieldUUID identifies the job custom field that records the PO status.
	StatusFieldUUID string        `yaml:"status_field_uuid"`
	StatusValue     string        `yaml:"status_value"`
	Timeout         time.Duration `yaml:"timeout"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
	RateBurst       int           `yaml:"rate_burst"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Default returns the built-in configuration. StatusFieldUUID has no default.
func Default() Config {
	return Config{
		Port: DefaultPort,
		Platform: PlatformConfig{
			BaseURL:     DefaultPlatformBaseURL,
			StatusValue: DefaultStatusValue,
			RateBurst:   DefaultRateBurst,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONFIG_FILE, and finally the process environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	setString(&c.Port, getenv("PORT"))
	setString(&c.AllowedOrigins, getenv("ALLOWED_ORIGINS"))
	setString(&c.Platform.BaseURL, getenv("PLATFORM_BASE_URL"))
	setString(&c.Platform.StatusFieldUUID, getenv("PO_STATUS_FIELD_UUID"))
	setString(&c.Platform.StatusValue, getenv("PO_STATUS_VALUE"))
	setString(&c.Log.Level, getenv("LOG_LEVEL"))
	setString(&c.Log.Format, getenv("LOG_FORMAT"))

	if v := getenv("PLATFORM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PLATFORM_TIMEOUT: %w", err)
		}
		c.Platform.Timeout = d
	}
	if v := getenv("PLATFORM_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PLATFORM_RATE_LIMIT: %w", err)
		}
		c.Platform.RateLimit = f
	}
	if v := getenv("PLATFORM_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PLATFORM_RATE_BURST: %w", err)
		}
		c.Platform.RateBurst = n
	}
	return nil
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Platform.StatusFieldUUID) == "" {
		return errors.New("PO_STATUS_FIELD_UUID is not set")
	}
	if c.Platform.BaseURL == "" {
		return errors.New("platform base URL is empty")
	}
	if c.Platform.Timeout < 0 {
		return fmt.Errorf("platform timeout must not be negative, got %s", c.Platform.Timeout)
	}
	if c.Platform.RateLimit < 0 {
		return fmt.Errorf("platform rate limit must not be negative, got %v", c.Platform.RateLimit)
	}
	if c.Platform.RateLimit > 0 && c.Platform.RateBurst < 1 {
		return fmt.Errorf("platform rate burst must be at least 1, got %d", c.Platform.RateBurst)
	}
	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
