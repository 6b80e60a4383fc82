// Package translate calls a MyMemory-compatible translation API.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eduardolat/quickgen/internal/version"
)

const (
	// MaxResponseSize is the maximum response body size (1MB)
	MaxResponseSize = 1024 * 1024

	// DefaultTimeout is used when Options.Timeout is zero
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrEmptyText indicates there is nothing to translate
	ErrEmptyText = errors.New("please enter some text to translate")
	// ErrUnexpectedResponse indicates the API answered without a translation
	ErrUnexpectedResponse = errors.New("translation failed: unexpected response")
)

// Request is a single translation request
type Request struct {
	Text string
	From string
	To   string
}

// Result contains the translated text
type Result struct {
	Text string
	// From and To are the canonical language tags sent to the API
	From string
	To   string
	// Match is the API's confidence score, when reported
	Match float64
	// StatusCode is the HTTP status code
	StatusCode int
}

// Translator translates text between two languages
type Translator interface {
	Translate(ctx context.Context, req Request) (*Result, error)
}

// Options configures a Client
type Options struct {
	Endpoint string
	// Email is sent as the "de" parameter, which raises the free quota
	Email string
	// APIKey is sent as the "key" parameter
	APIKey  string
	Timeout time.Duration
}

// Client talks to the translation API over HTTP
type Client struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
}

// New creates a new Client with the default HTTP client and a no-op logger
func New(opts Options) *Client {
	return NewWithClientAndLogger(opts, &http.Client{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewWithClientAndLogger creates a new Client with a custom HTTP client and logger
func NewWithClientAndLogger(opts Options, client *http.Client, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		opts:   opts,
		client: client,
		logger: logger,
	}
}

type apiResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  json.RawMessage `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
}

// Translate sends the text to the API and returns the translation
func (c *Client) Translate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	from, err := ParseLanguage(req.From)
	if err != nil {
		return nil, err
	}
	to, err := ParseLanguage(req.To)
	if err != nil {
		return nil, err
	}

	result := &Result{From: from.String(), To: to.String()}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	u, err := url.Parse(c.opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("q", req.Text)
	q.Set("langpair", result.From+"|"+result.To)
	if c.opts.Email != "" {
		q.Set("de", c.opts.Email)
	}
	if c.opts.APIKey != "" {
		q.Set("key", c.opts.APIKey)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", version.UserAgent())
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("executing translation request",
		"endpoint", c.opts.Endpoint,
		"from", result.From,
		"to", result.To,
		"chars", len(req.Text),
		"timeout", c.opts.Timeout.String())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("could not connect to the translation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("%w: HTTP status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return result, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return result, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	// responseStatus is a number on success and sometimes a string on errors
	if status := strings.Trim(string(payload.ResponseStatus), `"`); status != "" && status != "200" {
		detail := payload.ResponseDetails
		if detail == "" {
			detail = "status " + status
		}
		return result, fmt.Errorf("%w: %s", ErrUnexpectedResponse, detail)
	}

	if payload.ResponseData.TranslatedText == "" {
		return result, fmt.Errorf("%w: no translated text", ErrUnexpectedResponse)
	}

	result.Text = payload.ResponseData.TranslatedText
	result.Match = payload.ResponseData.Match

	return result, nil
}
