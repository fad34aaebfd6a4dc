package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# NetBox connection
NETBOX_URL=https://netbox.example.com

NETBOX_TOKEN="secret-token"
EXTRA='single quoted'
SPACED = padded value
NOEQUALS
=novalue
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	for _, key := range []string{"NETBOX_URL", "NETBOX_TOKEN", "EXTRA", "SPACED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"NETBOX_URL", "https://netbox.example.com"},
		{"NETBOX_TOKEN", "secret-token"},
		{"EXTRA", "single quoted"},
		{"SPACED", "padded value"},
	}
	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadDotEnvOverridesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NETBOX_URL=https://from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("NETBOX_URL", "https://preexisting")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("NETBOX_URL"); got != "https://from-dotenv" {
		t.Errorf("NETBOX_URL = %q, want dotenv value", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("LoadDotEnv() error = %v, want nil for missing file", err)
	}
}
