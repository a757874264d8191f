package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	pkghttp "gemini-client/pkg/http"
	"gemini-client/pkg/log"
	"gemini-client/pkg/metrics"
)

// Send performs one generateContent call for msg.
func (g *geminiImpl) Send(ctx context.Context, msg Message) (Result, error) {
	if g.cfg.APIKey == "" {
		g.logger.Error(ctx, "gemini: API key is required")
		return Result{}, ErrMissingCredential
	}

	ctx = log.WithRequestID(ctx, uuid.NewString())
	g.logger.Infof(ctx, "creating request: model=%s instruction=%q temperature=%v max_output_tokens=%d",
		g.cfg.Model, g.cfg.SystemInstruction, *g.cfg.Temperature, g.cfg.MaxOutputTokens)

	if g.cfg.StrictHistory {
		if err := ValidateHistory(g.validate, msg.History); err != nil {
			g.logger.Errorf(ctx, "rejecting request: %v", err)
			return Result{}, err
		}
	}

	temperature := *g.cfg.Temperature
	req, err := g.builder.Build(ctx, BuildInput{
		SystemInstruction: g.cfg.SystemInstruction,
		History:           msg.History,
		Text:              msg.Text,
		Images:            msg.Images,
		GenerationConfig: &GenerationConfig{
			MaxOutputTokens: g.cfg.MaxOutputTokens,
			Temperature:     &temperature,
		},
	})
	if err != nil {
		g.logger.Errorf(ctx, "failed to build request: %v", err)
		return Result{}, err
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent", g.baseURL, url.PathEscape(g.cfg.Model))
	g.logger.Infof(ctx, "sending POST request to %s with payload: %s", endpoint, req.logString())

	start := time.Now()
	body, statusCode, err := g.httpClient.Post(ctx, endpoint+"?key="+url.QueryEscape(g.cfg.APIKey), req, nil)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, pkghttp.ErrRequestFailed) {
			g.metrics.Observe(g.cfg.Model, metrics.OutcomeTransportError, elapsed)
			g.logger.Errorf(ctx, "client error during request: %v", err)
			return Result{}, &TransportError{Err: err}
		}
		g.logger.Errorf(ctx, "failed to send request: %v", err)
		return Result{}, fmt.Errorf("gemini: failed to send request: %w", err)
	}

	if statusCode != http.StatusOK {
		g.metrics.Observe(g.cfg.Model, metrics.OutcomeAPIError, elapsed)
		g.logger.Errorf(ctx, "API error: %s, status code: %d", string(body), statusCode)
		return Result{Failure: &APIFailure{StatusCode: statusCode, Message: string(body)}}, nil
	}

	if !json.Valid(body) {
		g.metrics.Observe(g.cfg.Model, metrics.OutcomeInvalidResponse, elapsed)
		g.logger.Errorf(ctx, "response is not valid JSON: %s", string(body))
		return Result{}, fmt.Errorf("%w: body is not valid JSON", ErrInvalidResponse)
	}

	g.metrics.Observe(g.cfg.Model, metrics.OutcomeSuccess, elapsed)
	g.logger.Infof(ctx, "successful response in %s: %s", elapsed, string(body))
	return Result{Body: json.RawMessage(body)}, nil
}

// SendAsync runs Send in a goroutine. The channel receives one Response and is closed.
func (g *geminiImpl) SendAsync(ctx context.Context, msg Message) <-chan Response {
	ch := make(chan Response, 1)
	go func() {
		defer close(ch)
		res, err := g.Send(ctx, msg)
		ch <- Response{Result: res, Err: err}
	}()
	return ch
}

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.Send(ctx, Message{Text: prompt})
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	text := res.Text()
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// StartChat returns a Chat sending every message after history.
func (g *geminiImpl) StartChat(history []Content) *Chat {
	return &Chat{client: g, history: history}
}
