// Package config loads jiai-terminal settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // Asia/Tokyo must resolve on hosts without zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/ngmaloney/jiai-terminal/internal/database"
)

// DefaultPath is where the config file is looked up when no path is given
const DefaultPath = "jiai.yaml"

// Config holds all jiai-terminal configuration.
type Config struct {
	// Defaults for a request when the user gives none
	Defaults DefaultsConfig `yaml:"defaults"`

	// Open-Meteo endpoints
	API APIConfig `yaml:"api"`

	// Star rating thresholds
	Scoring ScoringConfig `yaml:"scoring"`

	// Spot registry storage
	Database DatabaseConfig `yaml:"database"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// JSON endpoint
	Server ServerConfig `yaml:"server"`
}

// DefaultsConfig seeds a request.
type DefaultsConfig struct {
	Place    string `yaml:"place"`
	Style    string `yaml:"style"`
	Timezone string `yaml:"timezone"`
}

// APIConfig configures the remote sampler and geocoder.
type APIConfig struct {
	ForecastURL  string `yaml:"forecast_url"`
	MarineURL    string `yaml:"marine_url"`
	GeocodingURL string `yaml:"geocoding_url"`
	Timeout      string `yaml:"timeout"`
	UserAgent    string `yaml:"user_agent"`
}

// ScoringConfig holds the tuning constants of the star rating.
// None of them is a contract; they differ across every dashboard variant.
type ScoringConfig struct {
	Base            int     `yaml:"base"`
	SweetSpotMinCm  float64 `yaml:"sweet_spot_min_cm"`
	SweetSpotMaxCm  float64 `yaml:"sweet_spot_max_cm"`
	SweetSpotBonus  int     `yaml:"sweet_spot_bonus"`
	LowPressure     float64 `yaml:"low_pressure_hpa"`
	VeryLowPressure float64 `yaml:"very_low_pressure_hpa"`
	WindMin         float64 `yaml:"wind_min_ms"`
	WindMax         float64 `yaml:"wind_max_ms"`
}

// DatabaseConfig configures the sqlite file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used by the TUI so logs stay off the alt screen
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Place:    "観音崎",
			Style:    "タイラバ",
			Timezone: "Asia/Tokyo",
		},
		API: APIConfig{
			ForecastURL:  "https://api.open-meteo.com/v1/forecast",
			MarineURL:    "https://marine-api.open-meteo.com/v1/marine",
			GeocodingURL: "https://geocoding-api.open-meteo.com/v1/search",
			Timeout:      "5s",
			UserAgent:    "JiaiTerminal/1.0 (github.com/ngmaloney/jiai-terminal)",
		},
		Scoring: ScoringConfig{
			Base:            1,
			SweetSpotMinCm:  8,
			SweetSpotMaxCm:  30,
			SweetSpotBonus:  2,
			LowPressure:     1012,
			VeryLowPressure: 1005,
			WindMin:         1,
			WindMax:         6,
		},
		Database: DatabaseConfig{
			Path: database.DBPath(),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join("data", "jiai.log"),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("JIAI_DB"); path != "" {
		c.Database.Path = path
	}
	if level := os.Getenv("JIAI_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if timeout := os.Getenv("JIAI_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if addr := os.Getenv("JIAI_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if tz := os.Getenv("JIAI_TZ"); tz != "" {
		c.Defaults.Timezone = tz
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("invalid api.timeout %q: %w", c.API.Timeout, err)
	}
	if _, err := time.LoadLocation(c.Defaults.Timezone); err != nil {
		return fmt.Errorf("invalid defaults.timezone %q: %w", c.Defaults.Timezone, err)
	}
	if c.Scoring.SweetSpotMinCm > c.Scoring.SweetSpotMaxCm {
		return fmt.Errorf("scoring.sweet_spot_min_cm (%.1f) exceeds sweet_spot_max_cm (%.1f)",
			c.Scoring.SweetSpotMinCm, c.Scoring.SweetSpotMaxCm)
	}
	if c.Scoring.WindMin > c.Scoring.WindMax {
		return fmt.Errorf("scoring.wind_min_ms (%.1f) exceeds wind_max_ms (%.1f)",
			c.Scoring.WindMin, c.Scoring.WindMax)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

// GetAPITimeout returns the per-call HTTP timeout.
func (c *Config) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// GetLocation returns the dashboard time zone, falling back to local time.
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Defaults.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
