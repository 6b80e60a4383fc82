package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "QUICKGEN_"

// envOverrides mirrors the settings that can be set from the environment.
// Fields are prefilled from the file configuration, so unset variables keep
// the file value.
type envOverrides struct {
	Length    int  `env:"LENGTH"`
	Uppercase bool `env:"UPPERCASE"`
	Digits    bool `env:"DIGITS"`
	Symbols   bool `env:"SYMBOLS"`
	Secure    bool `env:"SECURE"`
	Clipboard bool `env:"CLIPBOARD"`

	Endpoint       string `env:"TRANSLATE_ENDPOINT"`
	From           string `env:"TRANSLATE_FROM"`
	To             string `env:"TRANSLATE_TO"`
	Email          string `env:"TRANSLATE_EMAIL"`
	APIKey         string `env:"TRANSLATE_API_KEY"`
	TimeoutSeconds int    `env:"TRANSLATE_TIMEOUT_SECONDS"`
}

// LoadDotEnv loads variables from the given .env files (default: ./.env).
// Missing files are ignored; variables already set are not overwritten.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	return nil
}

// ApplyEnv overrides the configuration with QUICKGEN_* environment variables
// and validates the result
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

func (c *Config) applyEnv(opts env.Options) error {
	o := envOverrides{
		Length:         c.Generator.GetLength(),
		Uppercase:      c.Generator.IsUppercase(),
		Digits:         c.Generator.IsDigits(),
		Symbols:        c.Generator.IsSymbols(),
		Secure:         c.Generator.IsSecure(),
		Clipboard:      c.Clipboard.IsEnabled(),
		Endpoint:       c.Translate.Endpoint,
		From:           c.Translate.From,
		To:             c.Translate.To,
		Email:          c.Translate.Email,
		APIKey:         c.Translate.APIKey,
		TimeoutSeconds: c.Translate.GetTimeoutSeconds(),
	}

	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	c.Generator = Generator{
		Length:    &o.Length,
		Uppercase: &o.Uppercase,
		Digits:    &o.Digits,
		Symbols:   &o.Symbols,
		Secure:    &o.Secure,
	}
	c.Clipboard = Clipboard{Enabled: &o.Clipboard}
	c.Translate = Translate{
		Endpoint:       o.Endpoint,
		From:           o.From,
		To:             o.To,
		Email:          o.Email,
		APIKey:         o.APIKey,
		TimeoutSeconds: &o.TimeoutSeconds,
	}

	return c.Validate()
}
