package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from file, environment, and defaults.
// A missing config file is not an error: the keygen command has to work on a
// fresh machine with nothing but defaults.
func Load(configPath string) (*Config, error) {
	// Pick up FBR_API_KEY from a local .env if one exists.
	_ = godotenv.Load(".env")

	v := viper.New()

	// Set default values
	setDefaults(v)

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
			v.AddConfigPath(filepath.Join(home, ".fbrfetch"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fbrfetch/")
	}

	// The generated key is usually persisted as a shell export rather than
	// written to the config file.
	_ = v.BindEnv("fbr.api_key", "FBR_API_KEY")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
	// FBR defaults
	v.SetDefault("fbr.base_url", "https://fbrapi.com")
	v.SetDefault("fbr.timeout", "30s")
	v.SetDefault("fbr.min_interval", "3s")
	v.SetDefault("fbr.max_attempts", 3)

	// Output defaults
	v.SetDefault("output.preview_rows", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.FBR.BaseURL == "" {
		return fmt.Errorf("fbr.base_url is required")
	}

	if cfg.FBR.Timeout <= 0 {
		return fmt.Errorf("fbr.timeout must be positive")
	}

	if cfg.FBR.MinInterval < 0 {
		return fmt.Errorf("fbr.min_interval cannot be negative")
	}

	if cfg.FBR.MaxAttempts < 1 {
		return fmt.Errorf("fbr.max_attempts must be at least 1")
	}

	if cfg.Output.PreviewRows < 1 {
		return fmt.Errorf("output.preview_rows must be at least 1")
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
