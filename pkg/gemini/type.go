package gemini

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	pkghttp "gemini-client/pkg/http"
	"gemini-client/pkg/log"
	"gemini-client/pkg/metrics"
)

// Config holds the configuration for the Gemini client.
type Config struct {
	APIKey            string
	Model             string
	SystemInstruction string
	MaxOutputTokens   int `validate:"gte=0"`

	// Temperature nil means DefaultTemperature; zero is sent as zero.
	Temperature *float64 `validate:"omitempty,gte=0,lte=2"`

	// ProxyURL is optional; http, https and socks5 are supported.
	ProxyURL string

	// StrictHistory rejects malformed history turns before sending.
	StrictHistory bool

	// Timeout of zero leaves the deadline to the caller's context.
	Timeout time.Duration `validate:"gte=0"`
}

// Option customizes a client built by NewGemini.
type Option func(*geminiImpl)

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	cfg        Config
	baseURL    string
	httpClient pkghttp.IClient
	builder    *Builder
	logger     log.Logger
	metrics    *metrics.Collector
	validate   *validator.Validate
}

// Message is one user turn plus the history preceding it.
type Message struct {
	Text    string
	Images  []string
	History []Content
}

// Response is what SendAsync delivers.
type Response struct {
	Result Result
	Err    error
}

// Request defines the request body for Generate Content API
type Request struct {
	SystemInstruction *SystemInstruction `json:"system_instruction,omitempty"`
	Contents          []Content          `json:"contents"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
}

// SystemInstruction wraps the instruction text. Parts is a single object, not a list.
type SystemInstruction struct {
	Parts TextPart `json:"parts"`
}

// TextPart is a text-only part.
type TextPart struct {
	Text string `json:"text"`
}

// Content represents a single turn
type Content struct {
	Role  string `json:"role,omitempty" validate:"required,oneof=user model"`
	Parts []Part `json:"parts" validate:"required,min=1,dive"`
}

// Part represents a part of the content: text or inline data, never both.
type Part struct {
	Text       string      `json:"text,omitempty" validate:"required_without=InlineData,excluded_with=InlineData"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData is base64 encoded binary content carried in the request body.
type InlineData struct {
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

// GenerationConfig carries model behaviour parameters.
type GenerationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// Result is the outcome of a call that reached the API. Exactly one of Body and
// Failure is set.
type Result struct {
	// Body is the 200 response, verbatim.
	Body json.RawMessage
	// Failure is set for any non-200 status.
	Failure *APIFailure
}

// APIFailure is a non-200 answer. JSON tags match the {error, message} shape.
type APIFailure struct {
	StatusCode int    `json:"error"`
	Message    string `json:"message"`
}
