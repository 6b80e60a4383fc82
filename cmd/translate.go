package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eduardolat/quickgen/internal/clipboard"
	"github.com/eduardolat/quickgen/internal/translate"
	"golang.org/x/text/language"
)

// maxInputSize limits text read from stdin
const maxInputSize = 64 * 1024

func (a *app) runTranslate(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	tc := a.cfg.Translate
	from := fs.String("from", tc.GetFrom(), "Source language (BCP 47, e.g. en-US)")
	to := fs.String("to", tc.GetTo(), "Target language (BCP 47, e.g. hi-IN)")
	copyValue := fs.Bool("copy", false, "Copy the translation to the clipboard")
	speak := fs.Bool("speak", false, "Read the translation aloud")
	swap := fs.Bool("swap", false, "Swap the source and target languages")
	source := fs.Bool("source", false, "Apply -copy and -speak to the source text instead of the translation")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" || text == "-" {
		data, err := io.ReadAll(io.LimitReader(a.stdin, maxInputSize))
		if err != nil {
			a.logger.Error("failed to read text from stdin", "error", err)
			return ExitFailure
		}
		text = strings.TrimSpace(string(data))
	}

	client := translate.NewWithClientAndLogger(translate.Options{
		Endpoint: tc.GetEndpoint(),
		Email:    tc.Email,
		APIKey:   tc.APIKey,
		Timeout:  time.Duration(tc.GetTimeoutSeconds()) * time.Second,
	}, &http.Client{}, a.logger)

	req := translate.Request{Text: text, From: a.regional(*from), To: a.regional(*to)}
	if *swap {
		req.From, req.To = req.To, req.From
	}

	return a.translateWith(ctx, client, req, outputActions{copy: *copyValue, speak: *speak, source: *source})
}

// outputActions selects what happens with a text besides printing it
type outputActions struct {
	copy   bool
	speak  bool
	source bool
}

// regional expands a bare language such as "fr" to the offered regional tag
// ("fr-FR"). Other codes are returned unchanged.
func (a *app) regional(code string) string {
	tag, err := translate.ParseLanguage(code)
	if err != nil {
		return code
	}
	if _, conf := tag.Region(); conf == language.Exact {
		return code
	}

	l, ok := translate.Closest(tag)
	if !ok {
		return code
	}

	a.logger.Debug("expanded language", "requested", code, "used", l.Code())
	return l.Code()
}

func (a *app) translateWith(ctx context.Context, t translate.Translator, req translate.Request, actions outputActions) int {
	result, err := t.Translate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, translate.ErrEmptyText):
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return ExitUsage
		case errors.Is(err, translate.ErrUnsupportedLanguage):
			fmt.Fprintf(a.stderr, "Error: %v (see 'quickgen languages')\n", err)
			return ExitUsage
		default:
			a.logger.Error("translation failed",
				"from", req.From,
				"to", req.To,
				"error", err)
			return ExitFailure
		}
	}

	a.logger.Debug("translation received",
		"from", result.From,
		"to", result.To,
		"match", result.Match)

	fmt.Fprintln(a.stdout, result.Text)

	text, lang, what := result.Text, result.To, "translation"
	if actions.source {
		text, lang, what = req.Text, result.From, "source text"
	}

	code := ExitSuccess

	if actions.copy {
		if err := clipboard.Copy(a.newClipboard(), text); err != nil {
			a.logger.Error("failed to copy to clipboard", "error", err)
			code = ExitFailure
		} else {
			a.logger.Info("copied to clipboard", "text", what)
		}
	}

	if actions.speak {
		if err := a.newSpeaker().Speak(ctx, text, lang); err != nil {
			a.logger.Error("failed to speak", "text", what, "error", err)
			code = ExitFailure
		}
	}

	return code
}
