package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9999"
upstream:
  base_url: http://records.internal:8080
  timeout: 10s
jwt:
  secret: test-secret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://records.internal:8080" {
		t.Errorf("unexpected base URL: %q", cfg.Upstream.BaseURL)
	}
	if cfg.UpstreamTimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.UpstreamTimeout())
	}
	// Untouched sections keep their defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  base_url: http://records.internal:8080
jwt:
  secret: file-secret
`)

	t.Setenv("UPSTREAM_BASE_URL", "http://other-host:7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Upstream.BaseURL != "http://other-host:7070" {
		t.Errorf("env override not applied: %q", cfg.Upstream.BaseURL)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("env override not applied: %q", cfg.JWT.Secret)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing jwt secret", `
upstream:
  base_url: http://records.internal:8080
`},
		{"relative base url", `
upstream:
  base_url: records.internal
jwt:
  secret: s
`},
		{"bad timeout", `
upstream:
  base_url: http://records.internal:8080
  timeout: soon
jwt:
  secret: s
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port, got %q", cfg.Server.Port)
	}
}
