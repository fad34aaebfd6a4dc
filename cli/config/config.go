// Package config handles CLI configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load. Environment values
// override the config file.
const (
	EnvURL       = "NETBOX_URL"
	EnvToken     = "NETBOX_TOKEN"
	EnvVerifySSL = "NETBOX_VERIFY_SSL"
)

// Config represents the CLI configuration.
type Config struct {
	// URL is the base NetBox instance URL, without the /api suffix.
	URL string `yaml:"url"`

	// Token is the NetBox API token.
	Token string `yaml:"token"`

	// VerifySSL controls TLS certificate verification. Defaults to
	// true; set false only for lab instances with self-signed certs.
	VerifySSL bool `yaml:"verify_ssl"`

	// Timeout is the per-request timeout as a Go duration string,
	// e.g. "30s". Empty uses the client default.
	Timeout string `yaml:"timeout,omitempty"`

	// RateLimit caps outgoing requests per minute. Zero disables
	// rate limiting.
	RateLimit int `yaml:"rate_limit,omitempty"`

	// Burst is the rate limiter burst size. Zero with RateLimit set
	// means a burst of 1.
	Burst int `yaml:"burst,omitempty"`
}

// ValidationError reports a missing required setting, naming the
// environment variable that supplies it.
type ValidationError struct {
	Variable string
	Example  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required setting %s (e.g. %s=%s)", e.Variable, e.Variable, e.Example)
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.netbox-mcp/config.yaml
// - Windows: %USERPROFILE%\.netbox-mcp\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".netbox-mcp", "config.yaml")
}

// Load reads configuration from the given path and overlays the
// NETBOX_* environment variables on top. A missing config file is not
// an error; the environment alone can carry a full configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{VerifySSL: true}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Missing config file is not an error
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if v := os.Getenv(EnvURL); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvVerifySSL); v != "" {
		cfg.VerifySSL = truthy(v)
	}

	return cfg, nil
}

// Validate checks that the settings required to reach a NetBox
// instance are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return &ValidationError{Variable: EnvURL, Example: "https://netbox.example.com"}
	}
	if c.Token == "" {
		return &ValidationError{Variable: EnvToken, Example: "0123456789abcdef0123456789abcdef01234567"}
	}
	return nil
}

// truthy interprets the usual affirmative spellings. Everything else
// is false.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
