package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{"PO_STATUS_FIELD_UUID": "field-1"}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("port: got %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.Platform.BaseURL != DefaultPlatformBaseURL {
		t.Errorf("base url: got %q", cfg.Platform.BaseURL)
	}
	if cfg.Platform.StatusValue != "Sent" {
		t.Errorf("status value: got %q, want Sent", cfg.Platform.StatusValue)
	}
	if cfg.Platform.Timeout != 0 {
		t.Errorf("timeout: got %s, want 0", cfg.Platform.Timeout)
	}
	if cfg.Platform.RateLimit != 0 {
		t.Errorf("rate limit: got %v, want 0", cfg.Platform.RateLimit)
	}
}

func TestLoad_MissingStatusField(t *testing.T) {
	if _, err := load(envFrom(nil)); err == nil {
		t.Fatal("expected error when PO_STATUS_FIELD_UUID is unset")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"PORT":                 "8081",
		"PO_STATUS_FIELD_UUID": "field-2",
		"PLATFORM_BASE_URL":    "http://localhost:9999",
		"PLATFORM_TIMEOUT":     "15s",
		"PLATFORM_RATE_LIMIT":  "2.5",
		"PLATFORM_RATE_BURST":  "3",
		"LOG_FORMAT":           "console",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8081" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.Platform.BaseURL != "http://localhost:9999" {
		t.Errorf("base url: got %q", cfg.Platform.BaseURL)
	}
	if cfg.Platform.Timeout != 15*time.Second {
		t.Errorf("timeout: got %s", cfg.Platform.Timeout)
	}
	if cfg.Platform.RateLimit != 2.5 || cfg.Platform.RateBurst != 3 {
		t.Errorf("rate: got %v/%d", cfg.Platform.RateLimit, cfg.Platform.RateBurst)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("log format: got %q", cfg.Log.Format)
	}
}

func TestLoad_MalformedValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"timeout", "PLATFORM_TIMEOUT", "soon"},
		{"rate limit", "PLATFORM_RATE_LIMIT", "fast"},
		{"rate burst", "PLATFORM_RATE_BURST", "1.5"},
		{"negative rate", "PLATFORM_RATE_LIMIT", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(envFrom(map[string]string{
				"PO_STATUS_FIELD_UUID": "field-1",
				tt.key:                 tt.val,
			}))
			if err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "7000"
platform:
  base_url: http://platform.test
  status_field_uuid: from-file
  timeout: 20s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(envFrom(map[string]string{
		"CONFIG_FILE": path,
		"PORT":        "7001",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7001" {
		t.Errorf("env should win over file: got port %q", cfg.Port)
	}
	if cfg.Platform.StatusFieldUUID != "from-file" {
		t.Errorf("status field: got %q", cfg.Platform.StatusFieldUUID)
	}
	if cfg.Platform.Timeout != 20*time.Second {
		t.Errorf("timeout: got %s", cfg.Platform.Timeout)
	}
	if cfg.Platform.StatusValue != "Sent" {
		t.Errorf("status value default lost: got %q", cfg.Platform.StatusValue)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(envFrom(map[string]string{
		"CONFIG_FILE":          filepath.Join(t.TempDir(), "absent.yaml"),
		"PO_STATUS_FIELD_UUID": "field-1",
	}))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
