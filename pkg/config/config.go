package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataDir     string `json:"data_dir,omitempty"`     // where schedule CSV/XLSX files live
	WWWDir      string `json:"www_dir,omitempty"`      // where rendered HTML pages are written
	AccentColor string `json:"accent_color,omitempty"` // terminal accent for the interactive flow
}

// Default directories when neither flags nor config set them, relative to
// the working directory like the rest of the repo layout.
const (
	DefaultDataDir = "../data"
	DefaultWWWDir  = "../www"
)

// getConfigPath returns the absolute path to ~/.bhs-calendar.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".bhs-calendar.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveDataDir picks the data directory: explicit flag value, then config,
// then the repo default.
func (c *AppConfig) ResolveDataDir(flag string) string {
	if flag != "" {
		return flag
	}
	if c != nil && c.DataDir != "" {
		return c.DataDir
	}
	return DefaultDataDir
}

// ResolveWWWDir picks the output directory with the same precedence.
func (c *AppConfig) ResolveWWWDir(flag string) string {
	if flag != "" {
		return flag
	}
	if c != nil && c.WWWDir != "" {
		return c.WWWDir
	}
	return DefaultWWWDir
}
