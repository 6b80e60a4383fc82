// QuickGen is a small command line toolbox: a random string generator with
// clipboard support and a text translator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eduardolat/quickgen/internal/clipboard"
	"github.com/eduardolat/quickgen/internal/config"
	"github.com/eduardolat/quickgen/internal/router"
	"github.com/eduardolat/quickgen/internal/speech"
	"github.com/eduardolat/quickgen/internal/version"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ASCII art banner for the CLI
const banner = `
  ___        _      _     ____            
 / _ \ _   _(_) ___| | __/ ___| ___ _ __  
| | | | | | | |/ __| |/ / |  _ / _ \ '_ \ 
| |_| | |_| | | (__|   <| |_| |  __/ | | |
 \__\_\\__,_|_|\___|_|\_\\____|\___|_| |_|
`

// app carries the process-wide dependencies shared by all commands
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Overridable in tests
	newClipboard func() clipboard.Writer
	newSpeaker   func() speech.Speaker
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newApp(stdin, stdout, stderr).run(args)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:        stdin,
		stdout:       stdout,
		stderr:       stderr,
		newClipboard: func() clipboard.Writer { return clipboard.NewSystem() },
		newSpeaker:   func() speech.Speaker { return speech.New() },
	}
}

func (a *app) run(args []string) int {
	fs := flag.NewFlagSet("quickgen", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	// Define CLI flags
	configPath := fs.String("config", "", "Path to the configuration file (default: "+config.DefaultConfigPath()+")")
	envFile := fs.String("env-file", ".env", "Path to a .env file with QUICKGEN_* variables")
	showVersion := fs.Bool("version", false, "Show version information and exit")
	debug := fs.Bool("debug", false, "Enable debug logging (most verbose)")
	quiet := fs.Bool("quiet", false, "Show only warnings and errors")
	silent := fs.Bool("silent", false, "Show only errors (most quiet)")

	r := a.router(fs)
	fs.Usage = func() { a.printUsage(fs, r) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	if *showVersion {
		a.printVersion()
		return ExitSuccess
	}

	// Setup logger with hierarchy: debug > default > quiet > silent
	var logLevel slog.Level
	switch {
	case *debug:
		logLevel = slog.LevelDebug
	case *silent:
		logLevel = slog.LevelError
	case *quiet:
		logLevel = slog.LevelWarn
	default:
		logLevel = slog.LevelInfo
	}

	// Logs go to stderr so generated values can be piped
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := a.loadConfig(*configPath, *envFile)
	if err != nil {
		a.logger.Error("failed to load configuration", "error", err)
		return ExitFailure
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"length", cfg.Generator.GetLength(),
		"uppercase", cfg.Generator.IsUppercase(),
		"digits", cfg.Generator.IsDigits(),
		"symbols", cfg.Generator.IsSymbols(),
		"secure", cfg.Generator.IsSecure(),
		"clipboard", cfg.Clipboard.IsEnabled(),
		"translate_endpoint", cfg.Translate.GetEndpoint())

	// Setup context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return r.Dispatch(ctx, fs.Args())
}

func (a *app) loadConfig(path, envFile string) (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *app) router(fs *flag.FlagSet) *router.Router {
	r := router.New("home")

	r.Register(router.Panel{
		Name:    "home",
		Summary: "Show this help",
		Run: func(_ context.Context, args []string) int {
			fs.Usage()
			if len(args) > 0 {
				fmt.Fprintf(a.stderr, "\nUnknown command: %s\n", args[0])
				return ExitUsage
			}
			return ExitSuccess
		},
	}, "help")
	r.Register(router.Panel{
		Name:    "generate",
		Summary: "Generate a random string and copy it to the clipboard",
		Run:     a.runGenerate,
	}, "gen", "password")
	r.Register(router.Panel{
		Name:    "translate",
		Summary: "Translate text with the configured translation API",
		Run:     a.runTranslate,
	})
	r.Register(router.Panel{
		Name:    "languages",
		Summary: "List the suggested translation languages",
		Run:     a.runLanguages,
	}, "langs")
	r.Register(router.Panel{
		Name:    "version",
		Summary: "Show version information",
		Run: func(context.Context, []string) int {
			a.printVersion()
			return ExitSuccess
		},
	})

	return r
}

func (a *app) printVersion() {
	fmt.Fprint(a.stdout, banner)
	fmt.Fprintf(a.stdout, "Version: %s\n", version.Version)
	fmt.Fprintf(a.stdout, "Commit:  %s\n", version.Commit)
	fmt.Fprintf(a.stdout, "Built:   %s\n", version.Date)
	fmt.Fprintln(a.stdout)
}

func (a *app) printUsage(fs *flag.FlagSet, r *router.Router) {
	w := a.stderr
	fmt.Fprint(w, banner)
	fmt.Fprintf(w, "\nRandom strings and quick translations\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  quickgen [options] <command> [command options]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, p := range r.Panels() {
		fmt.Fprintf(w, "  %-11s %s\n", p.Name, p.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  QUICKGEN_LENGTH, QUICKGEN_UPPERCASE, QUICKGEN_DIGITS, QUICKGEN_SYMBOLS,\n")
	fmt.Fprintf(w, "  QUICKGEN_SECURE, QUICKGEN_CLIPBOARD, QUICKGEN_TRANSLATE_ENDPOINT,\n")
	fmt.Fprintf(w, "  QUICKGEN_TRANSLATE_FROM, QUICKGEN_TRANSLATE_TO, QUICKGEN_TRANSLATE_EMAIL,\n")
	fmt.Fprintf(w, "  QUICKGEN_TRANSLATE_API_KEY, QUICKGEN_TRANSLATE_TIMEOUT_SECONDS\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  quickgen generate -l 20 -u -d -s        # 20 chars, all classes\n")
	fmt.Fprintf(w, "  quickgen generate -secure -n 5 -copy=false\n")
	fmt.Fprintf(w, "  quickgen generate -i                    # interactive mode\n")
	fmt.Fprintf(w, "  quickgen translate -to fr-FR Hello world\n")
	fmt.Fprintf(w, "  quickgen translate -from hi -to en -swap -speak -source Hello\n")
	fmt.Fprintf(w, "\nExit Codes:\n")
	fmt.Fprintf(w, "  0  Success\n")
	fmt.Fprintf(w, "  1  Failure\n")
	fmt.Fprintf(w, "  2  Usage error\n")
}
