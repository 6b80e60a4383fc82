package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslate verifies a translation is printed to stdout.
func TestTranslate(t *testing.T) {
	res := runQuickGen(t, "", nil, "translate", "-to", "fr-FR", "Hello", "world")

	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Equal(t, "Bonjour le monde\n", res.stdout)
}

// TestTranslateDefaultTarget verifies the default language pair en-US|hi-IN.
func TestTranslateDefaultTarget(t *testing.T) {
	res := runQuickGen(t, "Hello", nil, "translate")

	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Equal(t, "नमस्ते\n", res.stdout)
}

// TestTranslateFailures verifies error handling and exit codes.
func TestTranslateFailures(t *testing.T) {
	tests := []struct {
		name     string
		env      []string
		args     []string
		exitCode int
		message  string
	}{
		{
			name:     "empty text",
			args:     []string{"translate", "-to", "fr-FR"},
			exitCode: 2,
			message:  "please enter some text",
		},
		{
			name:     "invalid language",
			args:     []string{"translate", "-to", "??", "Hello"},
			exitCode: 2,
			message:  "unsupported language",
		},
		{
			name:     "unsupported pair",
			args:     []string{"translate", "-to", "de-DE", "Hello"},
			exitCode: 1,
			message:  "INVALID LANGUAGE PAIR SPECIFIED",
		},
		{
			name:     "server error",
			env:      []string{"QUICKGEN_TRANSLATE_ENDPOINT=" + mockURL("/error")},
			args:     []string{"translate", "-to", "fr-FR", "Hello"},
			exitCode: 1,
			message:  "HTTP status 500",
		},
		{
			name:     "html response",
			env:      []string{"QUICKGEN_TRANSLATE_ENDPOINT=" + mockURL("/html")},
			args:     []string{"translate", "-to", "fr-FR", "Hello"},
			exitCode: 1,
			message:  "unexpected response",
		},
		{
			name:     "timeout",
			env:      []string{"QUICKGEN_TRANSLATE_ENDPOINT=" + mockURL("/slow"), "QUICKGEN_TRANSLATE_TIMEOUT_SECONDS=1"},
			args:     []string{"translate", "-to", "fr-FR", "Hello"},
			exitCode: 1,
			message:  "could not connect to the translation service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runQuickGen(t, "", tt.env, tt.args...)

			assert.Equal(t, tt.exitCode, res.exitCode)
			assert.Contains(t, res.stderr, tt.message)
			assert.Empty(t, res.stdout)
		})
	}
}

// TestLanguages verifies the language list.
func TestLanguages(t *testing.T) {
	res := runQuickGen(t, "", nil, "languages")

	require.Equal(t, 0, res.exitCode)
	assert.Contains(t, res.stdout, "fr-FR")
	assert.Contains(t, res.stdout, "French")
}
