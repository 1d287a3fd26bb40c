package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	BGG        BGGConfig        `mapstructure:"bgg"`
	Collection CollectionConfig `mapstructure:"collection"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// BGGConfig holds BoardGameGeek API connection details
type BGGConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	UserAgent  string        `mapstructure:"user_agent"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// CollectionConfig contains defaults for collection requests
type CollectionConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Brief   bool          `mapstructure:"brief"`
	Stats   bool          `mapstructure:"stats"`
}

// BatchConfig controls batched game lookups
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
