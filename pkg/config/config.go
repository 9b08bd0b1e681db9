// Package config loads and saves the zenodo-go CLI configuration file.
//
// The file is TOML, located at $XDG_CONFIG_HOME/zenodo-go/config.toml
// (falling back to ~/.config/zenodo-go/config.toml):
//
//	access_token = "..."
//	sandbox = true
//
//	[proxies]
//	http = "http://proxy.example.com:3128"
//	https = "http://proxy.example.com:3128"
//
// Command-line flags always override file values; the library itself never
// reads this file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the directory name under the user config dir.
const appName = "zenodo-go"

// Config mirrors the TOML configuration file.
type Config struct {
	AccessToken string            `toml:"access_token"`
	Sandbox     bool              `toml:"sandbox"`
	Proxies     map[string]string `toml:"proxies"`
}

// Path returns the configuration file path, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration from path. An empty path uses [Path].
// A missing file is not an error; it yields a zero Config.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to path with owner-only permissions.
// An empty path uses [Path]. Parent directories are created as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
