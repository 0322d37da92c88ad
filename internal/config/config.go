package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vertextoedge/docfetch/internal/catalog"
)

// Config represents the entire application configuration.
// The table of pages to fetch is compiled in and is not part of it.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig contains output directory settings
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// FetchConfig contains HTTP settings
type FetchConfig struct {
	UserAgent   string `mapstructure:"user_agent"`
	Timeout     string `mapstructure:"timeout"`      // "0" disables the timeout
	MinInterval string `mapstructure:"min_interval"` // Spacing between requests
}

// HistoryConfig contains run history settings
type HistoryConfig struct {
	Path string `mapstructure:"path"` // Empty disables history
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration. An empty configPath uses the defaults only,
// which reproduce the compiled-in behaviour.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("output.dir", catalog.DefaultOutputDir)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0")
	v.SetDefault("fetch.timeout", "0s")
	v.SetDefault("fetch.min_interval", "0s")
	v.SetDefault("history.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir is required")
	}
	if strings.TrimSpace(c.Fetch.UserAgent) == "" {
		return fmt.Errorf("fetch.user_agent is required")
	}

	// Validate durations
	if d, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("invalid fetch.timeout: %w", err)
	} else if d < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}
	if d, err := time.ParseDuration(c.Fetch.MinInterval); err != nil {
		return fmt.Errorf("invalid fetch.min_interval: %w", err)
	} else if d < 0 {
		return fmt.Errorf("fetch.min_interval must not be negative")
	}

	// Validate logging config
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	return nil
}

// GetTimeout returns the request timeout as time.Duration
func (c *FetchConfig) GetTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// GetMinInterval returns the request spacing as time.Duration
func (c *FetchConfig) GetMinInterval() time.Duration {
	d, _ := time.ParseDuration(c.MinInterval)
	return d
}

// Enabled reports whether run history should be recorded
func (c *HistoryConfig) Enabled() bool {
	return c.Path != ""
}
