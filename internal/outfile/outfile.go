// Package outfile saves generated values to a file, one per line.
//
// Files are always replaced atomically with mode 0600: the new content is
// written to a hidden temp file next to the target and renamed over it.
package outfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// FileMode is the permission mode for written files (0600)
	FileMode = 0600
	// TempFilePrefix is the prefix for temporary files
	TempFilePrefix = ".quickgen_"

	tempIDAlphabet = "abcdefghijklmnopqrstuvwxyz"
	tempIDLength   = 6
)

var (
	// ErrNoValues is returned when there is nothing to write
	ErrNoValues = errors.New("no values to write")
	// ErrLineBreak is returned when a value would span several lines
	ErrLineBreak = errors.New("value contains a line break")
)

// Mode selects what happens to the values already in the file
type Mode int

const (
	// Replace discards the previous content
	Replace Mode = iota
	// Append keeps the previous content and adds the new values after it
	Append
)

// Writer saves values to files
type Writer struct {
	// idGenerator allows for dependency injection in tests
	idGenerator func() (string, error)
}

// New creates a new Writer
func New() *Writer {
	return NewWithDeps(func() (string, error) {
		return gonanoid.Generate(tempIDAlphabet, tempIDLength)
	})
}

// NewWithDeps creates a new Writer with a custom temp ID generator (for testing)
func NewWithDeps(idGen func() (string, error)) *Writer {
	return &Writer{idGenerator: idGen}
}

// Result describes a completed write
type Result struct {
	// Path is the cleaned path of the file
	Path string
	// Changed is false when the file already held exactly this content
	Changed bool
	// Lines is the number of values the file holds afterwards
	Lines int
}

// WriteValues saves values to path, one per line with a trailing newline.
func (w *Writer) WriteValues(path string, values []string, mode Mode) (*Result, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	for i, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return nil, fmt.Errorf("%w: value %d", ErrLineBreak, i+1)
		}
	}

	path = filepath.Clean(path)

	previous, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}

	content := render(previous, values, mode)
	result := &Result{Path: path, Lines: bytes.Count(content, []byte("\n"))}

	if bytes.Equal(previous, content) {
		return result, nil
	}

	if err := w.replace(path, content); err != nil {
		return nil, err
	}

	result.Changed = true
	return result, nil
}

// render builds the final file content
func render(previous []byte, values []string, mode Mode) []byte {
	var buf bytes.Buffer

	if mode == Append && len(previous) > 0 {
		buf.Write(previous)
		if previous[len(previous)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	for _, v := range values {
		buf.WriteString(v)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// replace swaps the file at path for one holding content
func (w *Writer) replace(path string, content []byte) error {
	dir := filepath.Dir(path)

	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("output directory is not a directory: %s", dir)
	}

	id, err := w.idGenerator()
	if err != nil {
		return fmt.Errorf("failed to generate temp file ID: %w", err)
	}
	tempPath := filepath.Join(dir, TempFilePrefix+filepath.Base(path)+"."+id)

	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, FileMode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := fill(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// fill writes content to f and closes it; umask may have narrowed the mode
func fill(f *os.File, content []byte) error {
	if err := f.Chmod(FileMode); err != nil {
		return fmt.Errorf("failed to set temp file permissions: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}
