// Package config handles YAML configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/eduardolat/quickgen/internal/randstr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTranslateEndpoint is the MyMemory translation API
	DefaultTranslateEndpoint = "https://api.mymemory.translated.net/get"

	// DefaultFromLanguage is the default source language
	DefaultFromLanguage = "en-US"

	// DefaultToLanguage is the default target language
	DefaultToLanguage = "hi-IN"

	// DefaultTimeoutSeconds is the default HTTP request timeout
	DefaultTimeoutSeconds = 10
)

// DefaultConfigPath returns ~/.config/quickgen/config.yaml, or an empty
// string when the user config directory cannot be determined
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quickgen", "config.yaml")
}

// Config represents the complete application configuration
type Config struct {
	Generator Generator `yaml:"generator"`
	Clipboard Clipboard `yaml:"clipboard"`
	Translate Translate `yaml:"translate"`
}

// Generator holds the default generator settings
type Generator struct {
	Length    *int  `yaml:"length"`
	Uppercase *bool `yaml:"uppercase"`
	Digits    *bool `yaml:"digits"`
	Symbols   *bool `yaml:"symbols"`
	Secure    *bool `yaml:"secure"`
}

// GetLength returns the configured length (default: 12). Out of range values
// are clamped, never rejected.
func (g Generator) GetLength() int {
	if g.Length == nil {
		return randstr.DefaultLength
	}
	return randstr.Clamp(*g.Length)
}

// IsUppercase returns true if uppercase letters are enabled (default: false)
func (g Generator) IsUppercase() bool {
	return g.Uppercase != nil && *g.Uppercase
}

// IsDigits returns true if digits are enabled (default: false)
func (g Generator) IsDigits() bool {
	return g.Digits != nil && *g.Digits
}

// IsSymbols returns true if symbols are enabled (default: false)
func (g Generator) IsSymbols() bool {
	return g.Symbols != nil && *g.Symbols
}

// IsSecure returns true if the cryptographic generator is used (default: false)
func (g Generator) IsSecure() bool {
	return g.Secure != nil && *g.Secure
}

// Clipboard controls the copy behaviour of the generate command
type Clipboard struct {
	Enabled *bool `yaml:"enabled"`
}

// IsEnabled returns true if generated values are copied (default: true)
func (c Clipboard) IsEnabled() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// Translate configures the translation API client
type Translate struct {
	Endpoint       string `yaml:"endpoint"`
	From           string `yaml:"from"`
	To             string `yaml:"to"`
	Email          string `yaml:"email"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds *int   `yaml:"timeout_seconds"`
}

// GetEndpoint returns the API endpoint (default: MyMemory)
func (t Translate) GetEndpoint() string {
	if t.Endpoint == "" {
		return DefaultTranslateEndpoint
	}
	return t.Endpoint
}

// GetFrom returns the default source language (default: en-US)
func (t Translate) GetFrom() string {
	if t.From == "" {
		return DefaultFromLanguage
	}
	return t.From
}

// GetTo returns the default target language (default: hi-IN)
func (t Translate) GetTo() string {
	if t.To == "" {
		return DefaultToLanguage
	}
	return t.To
}

// GetTimeoutSeconds returns the timeout in seconds (default: 10)
func (t Translate) GetTimeoutSeconds() int {
	if t.TimeoutSeconds == nil {
		return DefaultTimeoutSeconds
	}
	return *t.TimeoutSeconds
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// LoadOptional behaves like Load but returns an empty configuration when the
// file does not exist
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse parses YAML configuration data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	endpoint := c.Translate.GetEndpoint()
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("config: translate endpoint %q is not a valid URL: %w", endpoint, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("config: translate endpoint %q must use http or https", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("config: translate endpoint %q has no host", endpoint)
	}

	if c.Translate.GetTimeoutSeconds() <= 0 {
		return errors.New("config: translate timeout_seconds must be positive")
	}

	if strings.TrimSpace(c.Translate.GetFrom()) == "" || strings.TrimSpace(c.Translate.GetTo()) == "" {
		return errors.New("config: translate languages cannot be blank")
	}

	return nil
}
