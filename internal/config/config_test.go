package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "groq" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("default temperature = %g", cfg.Temperature)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("default addr = %q", cfg.Addr)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := strings.TrimSpace(`
provider: anthropic
model: claude-sonnet-4-20250514
temperature: 0.7
max_tokens: 2048
request_timeout: 90s
addr: ":9090"
log_level: verbose
`)
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("temperature = %g", cfg.Temperature)
	}
	if cfg.MaxTokens != 2048 {
		t.Errorf("max_tokens = %d", cfg.MaxTokens)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("request_timeout = %s", cfg.RequestTimeout)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.LogLevel != "verbose" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONTENT_PROVIDER", "openai")
	t.Setenv("CONTENT_MODEL", "gpt-4o-mini")
	t.Setenv("CONTENT_REQUEST_TIMEOUT", "45s")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.RequestTimeout != 45*time.Second {
		t.Errorf("request_timeout = %s", cfg.RequestTimeout)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("CONTENT_PROVIDER", "cohere")

	if _, err := Load(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("request_timeout: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable request_timeout")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("CONTENT_LOG_LEVEL", "chatty")

	if _, err := Load(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
