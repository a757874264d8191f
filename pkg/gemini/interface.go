package gemini

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	pkghttp "gemini-client/pkg/http"
	"gemini-client/pkg/log"
	"gemini-client/pkg/metrics"
)

// IGemini defines the interface for Google Gemini content generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Send performs exactly one generateContent call. A non-200 status comes
	// back as Result.Failure with a nil error; network failures are *TransportError.
	Send(ctx context.Context, msg Message) (Result, error)
	// SendAsync runs Send in its own goroutine and delivers exactly one Response.
	SendAsync(ctx context.Context, msg Message) <-chan Response
	// Generate sends a text-only prompt and returns the concatenated answer text.
	Generate(ctx context.Context, prompt string) (string, error)
	// StartChat binds history to subsequent messages.
	StartChat(history []Content) *Chat
}

// NewGemini creates a new Gemini client. Model, MaxOutputTokens and Temperature
// fall back to the defaults when unset. SystemInstruction is sent as given and
// omitted when empty. APIKey must be set.
func NewGemini(cfg Config, opts ...Option) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Temperature == nil {
		t := DefaultTemperature
		cfg.Temperature = &t
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g := &geminiImpl{
		cfg:      cfg,
		baseURL:  BaseURL,
		logger:   log.NewNop(),
		validate: validate,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.httpClient == nil {
		client, err := pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:  cfg.Timeout,
			ProxyURL: cfg.ProxyURL,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		g.httpClient = client
	}
	g.builder = NewBuilder(g.logger)

	return g, nil
}

// WithLogger sets the logger used for every call. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(g *geminiImpl) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics records call outcomes on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(g *geminiImpl) {
		g.metrics = c
	}
}

// WithHTTPClient replaces the transport. Config.ProxyURL and Timeout are then ignored.
func WithHTTPClient(c pkghttp.IClient) Option {
	return func(g *geminiImpl) {
		g.httpClient = c
	}
}

// WithBaseURL points the client at another models endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(g *geminiImpl) {
		g.baseURL = u
	}
}
