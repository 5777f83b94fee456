// Package config handles the configuration directory and stored session
// tokens.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"anylist/internal/service"
)

const (
	// AppName is the application directory name.
	AppName = "anylist"

	// TokensFile is the stored session tokens filename.
	TokensFile = "tokens.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/anylist or $HOME/.config/anylist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokensPath returns the path to the stored tokens file.
func (c *Config) TokensPath() string {
	return filepath.Join(c.Dir, TokensFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasTokens checks if the tokens file exists.
func (c *Config) HasTokens() bool {
	_, err := os.Stat(c.TokensPath())
	return err == nil
}

// SaveTokens writes session tokens to the tokens file with mode 0600.
func (c *Config) SaveTokens(tokens service.SavedTokens) error {
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	if err := os.WriteFile(c.TokensPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write tokens file: %w", err)
	}
	return nil
}

// LoadTokens reads session tokens from the tokens file.
func (c *Config) LoadTokens() (service.SavedTokens, error) {
	data, err := os.ReadFile(c.TokensPath())
	if err != nil {
		return service.SavedTokens{}, err
	}
	var tokens service.SavedTokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return service.SavedTokens{}, fmt.Errorf("failed to parse tokens file: %w", err)
	}
	return tokens, nil
}

// RemoveTokens deletes the tokens file.
func (c *Config) RemoveTokens() error {
	return os.Remove(c.TokensPath())
}
