package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		FBR: FBRConfig{
			BaseURL:     "https://fbrapi.com",
			Timeout:     30 * time.Second,
			MinInterval: 3 * time.Second,
			MaxAttempts: 3,
		},
		Output: OutputConfig{
			PreviewRows: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.FBR.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.FBR.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative min interval",
			mutate:  func(c *Config) { c.FBR.MinInterval = -time.Second },
			wantErr: true,
		},
		{
			name:   "zero min interval is allowed",
			mutate: func(c *Config) { c.FBR.MinInterval = 0 },
		},
		{
			name:    "zero max attempts",
			mutate:  func(c *Config) { c.FBR.MaxAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "zero preview rows",
			mutate:  func(c *Config) { c.Output.PreviewRows = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `fbr:
  api_key: file-key
  min_interval: 1s
output:
  preview_rows: 5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FBR.APIKey != "file-key" {
		t.Errorf("FBR.APIKey = %q, want %q", cfg.FBR.APIKey, "file-key")
	}
	if cfg.FBR.MinInterval != time.Second {
		t.Errorf("FBR.MinInterval = %v, want 1s", cfg.FBR.MinInterval)
	}
	if cfg.Output.PreviewRows != 5 {
		t.Errorf("Output.PreviewRows = %d, want 5", cfg.Output.PreviewRows)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	// Defaults fill the gaps the file does not set.
	if cfg.FBR.BaseURL != "https://fbrapi.com" {
		t.Errorf("FBR.BaseURL = %q, want default", cfg.FBR.BaseURL)
	}
	if cfg.FBR.Timeout != 30*time.Second {
		t.Errorf("FBR.Timeout = %v, want default 30s", cfg.FBR.Timeout)
	}
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FBR_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FBR.APIKey != "env-key" {
		t.Errorf("FBR.APIKey = %q, want %q", cfg.FBR.APIKey, "env-key")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("fbr:\n  max_attempts: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected validation error, got nil")
	}
}
