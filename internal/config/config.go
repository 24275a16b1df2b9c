package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir      = ".wishlane"
	configFileName = "config.json"

	// DefaultBaseURL is the hosted Wishlane endpoint used when no
	// override is configured.
	DefaultBaseURL = "https://wishlane.app"

	envAPIKey  = "WISHLANE_API_KEY"
	envBaseURL = "WISHLANE_API_URL"
)

// Config is the immutable startup configuration. It is resolved once
// in Load and passed by value to the API client; nothing reads these
// settings from the environment after startup.
type Config struct {
	APIKey    string `json:"api_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// Path returns the config file location (~/.wishlane/config.json).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// Load resolves configuration in precedence order: environment
// variables, then the system keyring (API key only), then the config
// file, then defaults. A missing config file is not an error; the
// caller decides whether a missing API key is fatal.
func Load() (*Config, error) {
	cfg := &Config{}

	if path, err := Path(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	if cfg.APIKey == "" {
		if key, err := LookupAPIKey(); err == nil && key != "" {
			cfg.APIKey = key
		}
	}

	if key := os.Getenv(envAPIKey); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv(envBaseURL); base != "" {
		cfg.BaseURL = base
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}

// LoadFile reads only the config file, without env or keyring
// overlays. Use this when mutating settings so values sourced from
// the environment are never written back to disk.
func LoadFile() (*Config, error) {
	cfg := &Config{}
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file, creating ~/.wishlane if needed. The
// API key is only written here when keyring storage is unavailable.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
