// Package config resolves the CLI's configuration: environment variables
// (optionally from a .env file) first, then the user config file at
// ~/.config/rentwheels/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	configDirName  = "rentwheels"
	configFileName = "config.json"
)

// Config is the CLI configuration. The API base URL is the one value the
// client cannot run without.
type Config struct {
	// APIURL is the base URL of the RentWheels API, e.g.
	// "https://api.rentwheels.example.com/api".
	APIURL string `env:"RENTWHEELS_API_URL"`

	// LogLevel controls diagnostic output (debug, info, warn, error).
	LogLevel string `env:"RENTWHEELS_LOG_LEVEL" envDefault:"warn"`
}

// fileConfig is the on-disk shape of the user config file.
type fileConfig struct {
	APIURL string `json:"api_url"`
}

// GetConfigPath returns the path to the user config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// Load resolves the configuration. Environment variables win over the user
// config file; a .env in the working directory is honored if present.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.APIURL == "" {
		fromFile, err := loadFile()
		if err != nil {
			return nil, err
		}
		cfg.APIURL = fromFile.APIURL
	}

	if cfg.APIURL == "" {
		return nil, errors.New("API URL is not configured (set RENTWHEELS_API_URL or run 'rentwheels init <api-url>')")
	}
	if _, err := url.ParseRequestURI(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", cfg.APIURL, err)
	}

	return cfg, nil
}

// APIHost returns the host part of the API URL, used to key the session store.
func (c *Config) APIHost() string {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" {
		return c.APIURL
	}
	return u.Host
}

func loadFile() (*fileConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// SetAPIURL writes the API base URL to the user config file, creating the
// config directory if needed.
func SetAPIURL(apiURL string) error {
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}

	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(fileConfig{APIURL: apiURL}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
