package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv(EnvURL, "https://netbox.example.com")
	t.Setenv(EnvToken, "abc123")
	t.Setenv(EnvVerifySSL, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.URL != "https://netbox.example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Token != "abc123" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if !cfg.VerifySSL {
		t.Errorf("VerifySSL = false, want default true")
	}
}

func TestLoadFileWithEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "url: https://file.example.com\ntoken: from-file\nrate_limit: 120\nburst: 5\ntimeout: 45s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(EnvURL, "https://env.example.com")
	t.Setenv(EnvToken, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Environment wins over file.
	if cfg.URL != "https://env.example.com" {
		t.Errorf("URL = %q, want env override", cfg.URL)
	}
	// File values untouched by environment survive.
	if cfg.Token != "from-file" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.RateLimit != 120 || cfg.Burst != 5 {
		t.Errorf("RateLimit/Burst = %d/%d, want 120/5", cfg.RateLimit, cfg.Burst)
	}
	if cfg.Timeout != "45s" {
		t.Errorf("Timeout = %q, want 45s", cfg.Timeout)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("url: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want parse error")
	}
}

func TestValidateNamesMissingVariable(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing url", Config{Token: "t"}, "NETBOX_URL"},
		{"missing token", Config{URL: "https://nb"}, "NETBOX_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %s", err.Error(), tt.want)
			}
			if !strings.Contains(err.Error(), tt.want+"=") {
				t.Errorf("error %q does not show an example value", err.Error())
			}
		})
	}
}

func TestValidateComplete(t *testing.T) {
	cfg := Config{URL: "https://nb", Token: "t"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{" yes ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"banana", false},
	}

	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVerifySSLFromEnvironment(t *testing.T) {
	t.Setenv(EnvVerifySSL, "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VerifySSL {
		t.Errorf("VerifySSL = true, want false from environment")
	}
}
