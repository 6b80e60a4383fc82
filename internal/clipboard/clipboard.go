// Package clipboard abstracts writing text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the platform denied or does not provide clipboard access
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// Copy writes value through w. Any failure is reported as ErrUnavailable,
// wrapping the underlying cause.
func Copy(w Writer, value string) error {
	if w == nil {
		return fmt.Errorf("%w: no clipboard writer configured", ErrUnavailable)
	}

	if err := w.WriteAll(value); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// System writes to the host clipboard using xclip, xsel or wl-copy on Linux,
// pbcopy on macOS and the Win32 API on Windows
type System struct{}

// NewSystem returns a Writer backed by the host clipboard
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found on this host
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll implements Writer
func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrUnavailable)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	// Err, when set, is returned by every write
	Err error
}

// NewMemory returns an empty in-memory clipboard
func NewMemory() *Memory {
	return &Memory{}
}

// WriteAll implements Writer. The last write wins.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.text = text
	m.writes++
	return nil
}

// Text returns the current clipboard content
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
