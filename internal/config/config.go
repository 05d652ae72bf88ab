package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/parley-chat/parley/internal/errors"
)

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name ("dark" or "light")
	Endpoint             string `json:"endpoint,omitempty"`              // Chat endpoint URL for the HTTP producer
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications when a reply arrives

	mu       sync.RWMutex
	filePath string
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.E(errors.Op("config.Load"), errors.KindConfig, "could not resolve config path", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. A missing file yields a
// config with defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Theme {
	case "", "dark", "light":
	default:
		return errors.ConfigInvalid("unknown theme: " + c.Theme)
	}

	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.ConfigInvalid("endpoint is not a valid URL: " + c.Endpoint)
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns the path this config was loaded from.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetEndpoint returns the configured chat endpoint URL
func (c *Config) GetEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Endpoint
}

// SetEndpoint sets the chat endpoint URL
func (c *Config) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Endpoint = endpoint
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
