package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// DefaultConfigPath is where the CLI looks for its configuration when no path is given.
const DefaultConfigPath = "~/.books/config.toml"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Google   GoogleConfig   `toml:"google"`
	Library  LibraryConfig  `toml:"library"`
	Sync     SyncConfig     `toml:"sync"`
	Database DatabaseConfig `toml:"database"`
}

// GoogleConfig contains the books API endpoint and credentials.
type GoogleConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// LibraryConfig contains the library file location.
type LibraryConfig struct {
	Output string `toml:"output"`
}

// SyncConfig tunes the lookup fan-out.
type SyncConfig struct {
	Workers   int     `toml:"workers"`
	RateLimit float64 `toml:"rate_limit"`
	Timeout   int     `toml:"timeout"`
}

// DatabaseConfig contains sync history database settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Values missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
//
// Missing parent directories are created.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the settings required to reach the books API.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Google.BaseURL) == "" {
		return fmt.Errorf("%w: google.base_url is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Google.APIKey) == "" {
		return fmt.Errorf("%w: google.api_key is required", ErrMissingCredentials)
	}
	if c.Sync.Workers < 0 {
		return fmt.Errorf("%w: sync.workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// RequestTimeout returns the per-request HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	if c.Sync.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Sync.Timeout) * time.Second
}
