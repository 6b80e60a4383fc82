package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eduardolat/quickgen/internal/outfile"
	"github.com/eduardolat/quickgen/internal/randstr"
	"github.com/eduardolat/quickgen/internal/session"
)

func (a *app) runGenerate(_ context.Context, args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	gen := a.cfg.Generator
	length := fs.Int("length", gen.GetLength(), fmt.Sprintf("String length, clamped to [%d, %d]", randstr.MinLength, randstr.MaxLength))
	fs.IntVar(length, "l", gen.GetLength(), "String length (shorthand)")
	upper := fs.Bool("uppercase", gen.IsUppercase(), "Include uppercase letters")
	fs.BoolVar(upper, "u", gen.IsUppercase(), "Include uppercase letters (shorthand)")
	digits := fs.Bool("digits", gen.IsDigits(), "Include digits (0-9)")
	fs.BoolVar(digits, "d", gen.IsDigits(), "Include digits (shorthand)")
	symbols := fs.Bool("symbols", gen.IsSymbols(), "Include symbols")
	fs.BoolVar(symbols, "s", gen.IsSymbols(), "Include symbols (shorthand)")
	count := fs.Int("count", 1, "Number of strings to generate")
	fs.IntVar(count, "n", 1, "Number of strings (shorthand)")
	secure := fs.Bool("secure", gen.IsSecure(), "Use a cryptographically secure random source")
	seed := fs.Uint64("seed", 0, "Seed for reproducible output (0: random, ignored with -secure)")
	copyValue := fs.Bool("copy", a.cfg.Clipboard.IsEnabled(), "Copy the generated string to the clipboard")
	out := fs.String("out", "", "Also write the generated string(s) to this file (mode 0600)")
	appendOut := fs.Bool("append", false, "Add to the -out file instead of replacing it")
	interactive := fs.Bool("i", false, "Interactive mode")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	if *count < 1 {
		fmt.Fprintf(a.stderr, "Error: -count must be at least 1\n")
		return ExitUsage
	}

	copyExplicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "copy" {
			copyExplicit = true
		}
	})

	if *length != randstr.Clamp(*length) {
		a.logger.Debug("length out of range, clamping",
			"requested", *length,
			"used", randstr.Clamp(*length))
	}

	opts := []session.Option{
		session.WithConfig(randstr.Config{
			Length:           *length,
			IncludeUppercase: *upper,
			IncludeDigits:    *digits,
			IncludeSymbols:   *symbols,
		}),
		session.WithSecure(*secure),
		session.WithClipboard(a.newClipboard()),
		session.WithLogger(a.logger),
	}
	if *seed != 0 && !*secure {
		opts = append(opts, session.WithSource(randstr.NewSeededSource(*seed)))
	}

	s := session.New(opts...)

	if *interactive {
		return a.interactive(s, a.stdin)
	}

	values := make([]string, 0, *count)
	values = append(values, s.Current().Value)
	for len(values) < *count {
		values = append(values, s.Regenerate().Value)
	}

	for _, v := range values {
		fmt.Fprintln(a.stdout, v)
	}

	if *out != "" {
		mode := outfile.Replace
		if *appendOut {
			mode = outfile.Append
		}
		result, err := outfile.New().WriteValues(*out, values, mode)
		if err != nil {
			a.logger.Error("failed to write output file",
				"path", *out,
				"error", err)
			return ExitFailure
		}
		a.logger.Info("wrote output file",
			"path", result.Path,
			"changed", result.Changed,
			"lines", result.Lines)
	}

	// With several values there is no single one to copy
	if !*copyValue || *count > 1 {
		return ExitSuccess
	}

	if err := s.Copy(); err != nil {
		if copyExplicit {
			a.logger.Error("failed to copy to clipboard", "error", err)
			return ExitFailure
		}
		a.logger.Warn("could not copy to clipboard, use -copy=false to disable",
			"error", err)
		return ExitSuccess
	}

	a.logger.Info("copied to clipboard")
	return ExitSuccess
}

const interactiveHelp = `Commands:
  <enter>, r       regenerate
  l <n>            set length
  u [on|off]       toggle uppercase letters
  d [on|off]       toggle digits
  s [on|off]       toggle symbols
  c                copy to clipboard
  ?                show this help
  q                quit
`

// interactive drives a session from line-based commands
func (a *app) interactive(s *session.Session, in io.Reader) int {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(a.stdout, "=== QuickGen (interactive mode) ===")
	fmt.Fprint(a.stdout, interactiveHelp)
	a.show(s)

	for {
		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			break
		}

		fields := strings.Fields(scanner.Text())
		cmd := ""
		if len(fields) > 0 {
			cmd = strings.ToLower(fields[0])
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		cfg := s.Config()

		switch cmd {
		case "", "r", "regen":
			s.Regenerate()
		case "l", "length":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(a.stdout, "invalid length %q\n", arg)
				continue
			}
			s.SetLength(n)
		case "u", "upper", "uppercase":
			s.SetUppercase(toggle(arg, cfg.IncludeUppercase))
		case "d", "digits":
			s.SetDigits(toggle(arg, cfg.IncludeDigits))
		case "s", "symbols":
			s.SetSymbols(toggle(arg, cfg.IncludeSymbols))
		case "c", "copy":
			if err := s.Copy(); err != nil {
				fmt.Fprintf(a.stdout, "copy failed: %v\n", err)
				continue
			}
			fmt.Fprintf(a.stdout, "Copied! (%s)\n", s.State())
			continue
		case "?", "h", "help":
			fmt.Fprint(a.stdout, interactiveHelp)
			continue
		case "q", "quit", "exit":
			return ExitSuccess
		default:
			fmt.Fprintf(a.stdout, "unknown command %q, type ? for help\n", cmd)
			continue
		}

		a.show(s)
	}

	if err := scanner.Err(); err != nil {
		a.logger.Error("failed to read input", "error", err)
		return ExitFailure
	}
	return ExitSuccess
}

func (a *app) show(s *session.Session) {
	cfg := s.Config()
	g := s.Current()
	fmt.Fprintf(a.stdout, "[%d] %s\n", g.Revision, g.Value)
	fmt.Fprintf(a.stdout, "    length=%d uppercase=%s digits=%s symbols=%s\n",
		cfg.Length, onOff(cfg.IncludeUppercase), onOff(cfg.IncludeDigits), onOff(cfg.IncludeSymbols))
}

// toggle parses on/off, or flips current when arg is empty
func toggle(arg string, current bool) bool {
	switch strings.ToLower(arg) {
	case "on", "yes", "y", "true", "1":
		return true
	case "off", "no", "n", "false", "0":
		return false
	default:
		return !current
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
