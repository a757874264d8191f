package gemini

import (
	"sync"
	"time"

	"gemini-client/config"
	pkggemini "gemini-client/pkg/gemini"
	"gemini-client/pkg/log"
	"gemini-client/pkg/metrics"
)

var (
	instance pkggemini.IGemini
	mu       sync.RWMutex
)

// Connect initializes the process-wide Gemini client. Later calls return the
// first client. m may be nil.
func Connect(cfg config.GeminiConfig, logger log.Logger, m *metrics.Collector) (pkggemini.IGemini, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	temperature := cfg.Temperature
	client, err := pkggemini.NewGemini(pkggemini.Config{
		APIKey:            cfg.APIKey,
		Model:             cfg.Model,
		SystemInstruction: cfg.SystemInstruction,
		MaxOutputTokens:   cfg.MaxOutputTokens,
		Temperature:       &temperature,
		ProxyURL:          cfg.ProxyURL,
		StrictHistory:     cfg.StrictHistory,
		Timeout:           time.Duration(cfg.Timeout) * time.Second,
	}, pkggemini.WithLogger(logger), pkggemini.WithMetrics(m))
	if err != nil {
		return nil, err
	}

	instance = client
	return instance, nil
}

// GetClient returns the singleton Gemini client.
func GetClient() pkggemini.IGemini {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("Gemini client not initialized. Call Connect() first")
	}
	return instance
}
