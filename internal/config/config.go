// Package config loads the application configuration from an optional YAML
// file plus environment-variable overrides. API keys are never part of the
// file: providers read them from the environment directly.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the config file looked up when no path is given.
	DefaultConfigFile = "config.yaml"

	defaultProvider       = "groq"
	defaultModel          = "llama-3.3-70b-versatile"
	defaultTemperature    = 0.2
	defaultMaxTokens      = 4096
	defaultRequestTimeout = 2 * time.Minute
	defaultAddr           = ":8080"
	defaultLogLevel       = "standard"
)

// Config holds the runtime configuration for the content service.
type Config struct {
	// Provider selects the LLM backend: "groq", "openai", or "anthropic".
	Provider string `yaml:"provider"`

	// Model is the model identifier sent with every request.
	Model string `yaml:"model"`

	// Temperature is the sampling temperature for all tasks.
	Temperature float32 `yaml:"temperature"`

	// MaxTokens caps each completion.
	MaxTokens int `yaml:"max_tokens"`

	// RequestTimeout bounds each individual LLM request.
	RequestTimeout time.Duration `yaml:"-"`

	// Addr is the HTTP listen address for serve mode.
	Addr string `yaml:"addr"`

	// LogLevel controls middleware logging: "minimal", "standard", "verbose".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider:       defaultProvider,
		Model:          defaultModel,
		Temperature:    defaultTemperature,
		MaxTokens:      defaultMaxTokens,
		RequestTimeout: defaultRequestTimeout,
		Addr:           defaultAddr,
		LogLevel:       defaultLogLevel,
	}
}

// fileConfig mirrors Config for YAML decoding. Durations are written as
// strings like "90s" and parsed explicitly.
type fileConfig struct {
	Config         `yaml:",inline"`
	RequestTimeout string `yaml:"request_timeout"`
}

// Load builds the configuration in three layers: defaults, then the YAML file
// at path (a missing file is not an error), then CONTENT_* environment
// variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		parsed := fileConfig{Config: cfg}
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg = parsed.Config
		if parsed.RequestTimeout != "" {
			d, err := time.ParseDuration(parsed.RequestTimeout)
			if err != nil {
				return Config{}, fmt.Errorf("config: parse request_timeout: %w", err)
			}
			cfg.RequestTimeout = d
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CONTENT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("CONTENT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CONTENT_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			c.Temperature = float32(f)
		}
	}
	if v := os.Getenv("CONTENT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv("CONTENT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("CONTENT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("CONTENT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Model = strings.TrimSpace(c.Model)
	c.Addr = strings.TrimSpace(c.Addr)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func (c Config) validate() error {
	switch c.Provider {
	case "groq", "openai", "anthropic":
	default:
		return fmt.Errorf("provider must be 'groq', 'openai', or 'anthropic', got %q", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.LogLevel {
	case "minimal", "standard", "verbose":
	default:
		return fmt.Errorf("log_level must be 'minimal', 'standard', or 'verbose', got %q", c.LogLevel)
	}
	return nil
}
