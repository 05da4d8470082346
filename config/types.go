package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	FBR     FBRConfig     `mapstructure:"fbr"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FBRConfig holds FBR API connection details and request policy
type FBRConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MinInterval time.Duration `mapstructure:"min_interval"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

// OutputConfig controls table preview rendering
type OutputConfig struct {
	PreviewRows int `mapstructure:"preview_rows"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
