package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. BGGXML_BGG_TIMEOUT for bgg.timeout.
const EnvPrefix = "BGGXML"

// Load loads the configuration. An explicit configPath must exist; otherwise
// the standard locations are searched and a missing file leaves the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".bggxml"))
		}

		// Check /etc
		v.AddConfigPath("/etc/bggxml/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// BGG defaults
	v.SetDefault("bgg.base_url", "https://boardgamegeek.com/xmlapi2")
	v.SetDefault("bgg.timeout", 30*time.Second)
	v.SetDefault("bgg.user_agent", "bggxml")
	v.SetDefault("bgg.retry_delay", time.Second)

	// Collection defaults
	v.SetDefault("collection.timeout", 90*time.Second)
	v.SetDefault("collection.brief", false)
	v.SetDefault("collection.stats", true)

	v.SetDefault("batch.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.BGG.BaseURL == "" {
		return fmt.Errorf("bgg.base_url is required")
	}
	if u, err := url.Parse(cfg.BGG.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("bgg.base_url must be an absolute URL: %s", cfg.BGG.BaseURL)
	}

	if cfg.BGG.Timeout <= 0 {
		return fmt.Errorf("bgg.timeout must be positive")
	}
	if cfg.BGG.RetryDelay <= 0 {
		return fmt.Errorf("bgg.retry_delay must be positive")
	}
	if cfg.Collection.Timeout < 0 {
		return fmt.Errorf("collection.timeout must not be negative")
	}
	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1")
	}

	for name, expr := range cfg.Filter.Presets {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q is empty", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
