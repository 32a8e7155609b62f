// Package config holds the persisted operator settings, most importantly
// the admin session token. The config is read once at startup, before the
// first routing decision, so the session gate never renders against an
// unchecked store.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joinme/admin-tui/internal/errors"
)

// DefaultAPIBaseURL is used when the operator has not configured a server.
const DefaultAPIBaseURL = "http://localhost:3000"

// DefaultIDPrefixLength is the number of id characters shown in tables
// before the ellipsis.
const DefaultIDPrefixLength = 8

// Config holds the application configuration
type Config struct {
	Token                string `json:"token,omitempty"`                 // Admin session token (opaque)
	APIBaseURL           string `json:"api_base_url,omitempty"`          // Admin API server base URL
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on failed deletes
	IDPrefixLength       int    `json:"id_prefix_length,omitempty"`      // Shortened id length for table display

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".joinme-admin"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, or returns a fresh one
// if the file doesn't exist yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Tests use this to stay
// out of the operator's home directory.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		filePath: path,
	}

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

// Validate checks the loaded config for values that would misbehave later.
func (c *Config) Validate() error {
	if c.Token != "" && strings.TrimSpace(c.Token) == "" {
		return errors.E(errors.Op("config.Validate"), errors.KindInvalid, "token is whitespace")
	}
	if c.IDPrefixLength < 0 {
		return errors.E(errors.Op("config.Validate"), errors.KindInvalid, "id_prefix_length must not be negative")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saveLocked()
}

func (c *Config) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// HasToken reports whether a session credential is currently persisted.
func (c *Config) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Token != ""
}

// GetToken returns the stored session token, or "" when logged out.
func (c *Config) GetToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Token
}

// SetToken stores the session credential and persists it. The in-memory
// state always flips to authenticated; a failed write is reported so the
// caller can warn that the session won't survive a restart.
func (c *Config) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = token
	return c.saveLocked()
}

// ClearToken erases the session credential. Idempotent.
func (c *Config) ClearToken() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Token == "" {
		return nil
	}
	c.Token = ""
	return c.saveLocked()
}

// GetAPIBaseURL returns the configured API server, or the default.
func (c *Config) GetAPIBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.APIBaseURL == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(c.APIBaseURL, "/")
}

// SetAPIBaseURL overrides the API server for this and future runs.
func (c *Config) SetAPIBaseURL(url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIBaseURL = strings.TrimRight(url, "/")
	return c.saveLocked()
}

// GetNotificationsEnabled returns whether desktop notifications are on.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
	return c.saveLocked()
}

// GetIDPrefixLength returns the shortened-id length for table display.
func (c *Config) GetIDPrefixLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.IDPrefixLength == 0 {
		return DefaultIDPrefixLength
	}
	return c.IDPrefixLength
}

// Path returns the file this config persists to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}
