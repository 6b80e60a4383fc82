// Package speech reads text aloud through the host's speech synthesizer.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnavailable indicates no speech engine is installed
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Speaker reads text aloud
type Speaker interface {
	Speak(ctx context.Context, text, lang string) error
}

// engine describes a command line speech synthesizer
type engine struct {
	name string
	args func(text, voice string) []string
}

var engines = map[string][]engine{
	"darwin": {
		{name: "say", args: func(text, _ string) []string { return []string{text} }},
	},
	"linux": {
		{name: "espeak-ng", args: espeakArgs},
		{name: "espeak", args: espeakArgs},
		{name: "spd-say", args: func(text, voice string) []string { return []string{"--wait", "-l", voice, text} }},
	},
}

func espeakArgs(text, voice string) []string {
	return []string{"-v", voice, text}
}

// Command speaks by running the first available synthesizer on PATH
type Command struct {
	goos string
	// lookPath and run allow for dependency injection in tests
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// New creates a Command for the current platform
func New() *Command {
	return &Command{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// Speak implements Speaker. lang is a BCP 47 tag; only its base language is
// passed to the engine.
func (c *Command) Speak(ctx context.Context, text, lang string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	path, eng, err := c.find()
	if err != nil {
		return err
	}

	if err := c.run(ctx, path, eng.args(text, voiceFor(lang))...); err != nil {
		return fmt.Errorf("%s failed: %w", eng.name, err)
	}

	return nil
}

func (c *Command) find() (string, engine, error) {
	for _, eng := range engines[c.goos] {
		path, err := c.lookPath(eng.name)
		if err == nil {
			return path, eng, nil
		}
	}
	return "", engine{}, fmt.Errorf("%w: no supported engine found on %s", ErrUnavailable, c.goos)
}

// voiceFor maps "hi-IN" to "hi". Unknown tags fall back to English.
func voiceFor(lang string) string {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if base.String() == "und" {
		return "en"
	}
	return base.String()
}
