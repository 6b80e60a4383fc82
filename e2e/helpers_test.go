package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// result captures one run of the binary
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// runQuickGen executes the binary with an isolated environment: no user
// config, no .env file, no inherited QUICKGEN_* variables
func runQuickGen(t *testing.T, stdin string, extraEnv []string, args ...string) result {
	t.Helper()

	dir := t.TempDir()

	cmd := exec.Command(env.binaryPath, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(cleanEnviron(),
		"HOME="+dir,
		"XDG_CONFIG_HOME="+filepath.Join(dir, ".config"),
		"QUICKGEN_TRANSLATE_ENDPOINT="+env.mockServerURL+"/get",
		"QUICKGEN_CLIPBOARD=false",
	)
	cmd.Env = append(cmd.Env, extraEnv...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}

	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			res.exitCode = exitError.ExitCode()
			return res
		}
		t.Fatalf("Failed to run quickgen: %v\nStderr: %s", err, res.stderr)
	}

	return res
}

func cleanEnviron() []string {
	out := make([]string, 0)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "QUICKGEN_") || strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "XDG_CONFIG_HOME=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}

// createConfig writes a config file with the given content
func createConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content = strings.ReplaceAll(content, "${MOCK_SERVER_URL}", env.mockServerURL)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	return path
}

// outputLines returns the non-empty stdout lines
func outputLines(r result) []string {
	var lines []string
	for _, line := range strings.Split(r.stdout, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func mockURL(path string) string {
	return fmt.Sprintf("%s%s", env.mockServerURL, path)
}
