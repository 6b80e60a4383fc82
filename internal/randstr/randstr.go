// Package randstr generates random strings from a configurable alphabet.
package randstr

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// MinLength is the shortest string that will be generated
	MinLength = 6
	// MaxLength is the longest string that will be generated
	MaxLength = 100
	// DefaultLength is used when no length is configured
	DefaultLength = 12
)

// Character classes, appended to the alphabet in this order.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{}|;:',.<>?/`~"
)

// Config describes the string to generate
type Config struct {
	Length           int  `json:"length" yaml:"length"`
	IncludeUppercase bool `json:"include_uppercase" yaml:"include_uppercase"`
	IncludeDigits    bool `json:"include_digits" yaml:"include_digits"`
	IncludeSymbols   bool `json:"include_symbols" yaml:"include_symbols"`
}

// DefaultConfig returns the configuration used on first load
func DefaultConfig() Config {
	return Config{Length: DefaultLength}
}

// Generated is a single generation result. It is never modified after
// creation; a regeneration produces a new value.
type Generated struct {
	Value string
	// Revision is the logical revision at which the value was produced.
	// Generate leaves it at zero; the session owning the value assigns it.
	Revision uint64
}

// Clamp forces length into [MinLength, MaxLength]
func Clamp(length int) int {
	return min(max(length, MinLength), MaxLength)
}

// Normalize returns a copy of c with the length clamped
func (c Config) Normalize() Config {
	c.Length = Clamp(c.Length)
	return c
}

// Alphabet returns the characters eligible for selection.
// Lowercase letters are always present, so the result is never empty.
func (c Config) Alphabet() string {
	var b strings.Builder
	b.Grow(len(Lowercase) + len(Uppercase) + len(Digits) + len(Symbols))

	b.WriteString(Lowercase)
	if c.IncludeUppercase {
		b.WriteString(Uppercase)
	}
	if c.IncludeDigits {
		b.WriteString(Digits)
	}
	if c.IncludeSymbols {
		b.WriteString(Symbols)
	}

	return b.String()
}

// Generate builds a string of Clamp(cfg.Length) characters, each drawn
// uniformly and with replacement from cfg.Alphabet().
// A nil src falls back to the package default source.
func Generate(cfg Config, src Source) Generated {
	if src == nil {
		src = defaultSource
	}

	cfg = cfg.Normalize()
	alphabet := cfg.Alphabet()

	result := make([]byte, cfg.Length)
	for i := range result {
		result[i] = alphabet[src.IntN(len(alphabet))]
	}

	return Generated{Value: string(result)}
}

// GenerateSecure is like Generate but draws from crypto/rand through
// go-nanoid. Use it when the output is a credential.
func GenerateSecure(cfg Config) (Generated, error) {
	cfg = cfg.Normalize()

	value, err := gonanoid.Generate(cfg.Alphabet(), cfg.Length)
	if err != nil {
		return Generated{}, fmt.Errorf("failed to generate secure string: %w", err)
	}

	return Generated{Value: value}, nil
}

// MustGenerateSecure calls GenerateSecure and panics on error.
func MustGenerateSecure(cfg Config) Generated {
	g, err := GenerateSecure(cfg)
	if err != nil {
		panic(err)
	}
	return g
}
