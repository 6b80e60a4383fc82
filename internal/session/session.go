// Package session owns the generator state observed by the CLI: the current
// configuration, the current value and the copy feedback status.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/eduardolat/quickgen/internal/clipboard"
	"github.com/eduardolat/quickgen/internal/randstr"
	"github.com/google/uuid"
)

// DefaultCopiedDuration is how long the copied status stays visible
const DefaultCopiedDuration = 2 * time.Second

// State is the observable status of a session
type State int

const (
	Idle State = iota
	Generating
	Ready
	CopiedTransient
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Ready:
		return "ready"
	case CopiedTransient:
		return "copied"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the generator state for one interactive context
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	cfg      randstr.Config
	current  randstr.Generated
	revision uint64
	state    State
	copiedAt time.Time

	secure         bool
	source         randstr.Source
	clip           clipboard.Writer
	copiedDuration time.Duration
	logger         *slog.Logger
	// timeNow allows for dependency injection in tests
	timeNow func() time.Time
}

// Option configures a Session
type Option func(*Session)

// WithConfig sets the initial configuration
func WithConfig(cfg randstr.Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithSource sets the random source used for generation
func WithSource(src randstr.Source) Option {
	return func(s *Session) { s.source = src }
}

// WithSecure switches generation to the cryptographically secure generator
func WithSecure(secure bool) Option {
	return func(s *Session) { s.secure = secure }
}

// WithClipboard sets the clipboard writer used by Copy
func WithClipboard(w clipboard.Writer) Option {
	return func(s *Session) { s.clip = w }
}

// WithCopiedDuration sets how long CopiedTransient lasts
func WithCopiedDuration(d time.Duration) Option {
	return func(s *Session) { s.copiedDuration = d }
}

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source (for testing). A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.timeNow = now
		}
	}
}

// New creates a session and performs the initial generation
func New(opts ...Option) *Session {
	s := &Session{
		id:             uuid.New(),
		cfg:            randstr.DefaultConfig(),
		state:          Idle,
		source:         randstr.NewSource(),
		clip:           clipboard.NewSystem(),
		copiedDuration: DefaultCopiedDuration,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeNow:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = s.cfg.Normalize()
	s.generateLocked()

	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the current (normalized) configuration
func (s *Session) Config() randstr.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Current returns the current generated value
func (s *Session) Current() randstr.Generated {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// State returns the observable state. CopiedTransient reverts to Ready once
// the copied duration has elapsed.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireCopiedLocked()
	return s.state
}

// SetConfig replaces the configuration and regenerates
func (s *Session) SetConfig(cfg randstr.Config) randstr.Generated {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Normalize()
	return s.generateLocked()
}

// SetLength changes the length (clamped) and regenerates
func (s *Session) SetLength(length int) randstr.Generated {
	return s.update(func(c *randstr.Config) { c.Length = length })
}

// SetUppercase toggles uppercase letters and regenerates
func (s *Session) SetUppercase(on bool) randstr.Generated {
	return s.update(func(c *randstr.Config) { c.IncludeUppercase = on })
}

// SetDigits toggles digits and regenerates
func (s *Session) SetDigits(on bool) randstr.Generated {
	return s.update(func(c *randstr.Config) { c.IncludeDigits = on })
}

// SetSymbols toggles symbols and regenerates
func (s *Session) SetSymbols(on bool) randstr.Generated {
	return s.update(func(c *randstr.Config) { c.IncludeSymbols = on })
}

// Regenerate produces a new value with the current configuration
func (s *Session) Regenerate() randstr.Generated {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateLocked()
}

// Copy writes the current value to the clipboard. On success the session
// enters CopiedTransient. Errors wrap clipboard.ErrUnavailable and leave the
// state untouched.
func (s *Session) Copy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireCopiedLocked()

	if err := clipboard.Copy(s.clip, s.current.Value); err != nil {
		s.logger.Warn("failed to copy to clipboard",
			"session", s.id.String(),
			"error", err)
		return err
	}

	s.state = CopiedTransient
	s.copiedAt = s.timeNow()

	s.logger.Debug("copied to clipboard",
		"session", s.id.String(),
		"revision", s.current.Revision)

	return nil
}

// CopiedUntil returns when the copied status expires, or the zero time if
// the session is not in CopiedTransient
func (s *Session) CopiedUntil() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireCopiedLocked()
	if s.state != CopiedTransient {
		return time.Time{}
	}
	return s.copiedAt.Add(s.copiedDuration)
}

func (s *Session) update(fn func(c *randstr.Config)) randstr.Generated {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg
	fn(&cfg)
	s.cfg = cfg.Normalize()

	return s.generateLocked()
}

// generateLocked runs Generating -> Ready synchronously. Caller holds mu.
func (s *Session) generateLocked() randstr.Generated {
	s.state = Generating

	var g randstr.Generated
	if s.secure {
		// crypto/rand does not return errors on supported platforms
		g = randstr.MustGenerateSecure(s.cfg)
	} else {
		g = randstr.Generate(s.cfg, s.source)
	}

	s.revision++
	g.Revision = s.revision
	s.current = g
	s.copiedAt = time.Time{}
	s.state = Ready

	s.logger.Debug("generated value",
		"session", s.id.String(),
		"revision", g.Revision,
		"length", s.cfg.Length,
		"uppercase", s.cfg.IncludeUppercase,
		"digits", s.cfg.IncludeDigits,
		"symbols", s.cfg.IncludeSymbols)

	return g
}

func (s *Session) expireCopiedLocked() {
	if s.state != CopiedTransient {
		return
	}
	if !s.timeNow().Before(s.copiedAt.Add(s.copiedDuration)) {
		s.state = Ready
		s.copiedAt = time.Time{}
	}
}
