package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"gemini-client/config"
	configGemini "gemini-client/config/gemini"
	"gemini-client/pkg/gemini"
	"gemini-client/pkg/log"
	"gemini-client/pkg/metrics"
)

// Sends one sample request and prints the raw response.
func main() {
	// 1. Load .env (optional) and configuration
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger (console + file)
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})
	defer logger.Sync()

	// 3. Cancel the in-flight request on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize metrics and client; metrics are printed to stderr on exit
	registry := prometheus.NewRegistry()
	collector, err := metrics.New(registry)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		return
	}
	defer dumpMetrics(ctx, logger, registry)

	cfg.Gemini.SystemInstruction = "You are Neko the cat, respond like one"
	client, err := configGemini.Connect(cfg.Gemini, logger, collector)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 5. Send the sample request
	res, err := client.Send(ctx, gemini.Message{Text: "say Meow"})
	if err != nil {
		logger.Error(ctx, "Request failed: ", err)
		return
	}

	out := any(res.Body)
	if !res.OK() {
		out = res.Failure
	}
	pretty, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		logger.Error(ctx, "Failed to format response: ", err)
		return
	}
	fmt.Println(string(pretty))
}

func dumpMetrics(ctx context.Context, logger log.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Warn(ctx, "Failed to gather metrics: ", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stderr, mf); err != nil {
			logger.Warn(ctx, "Failed to write metrics: ", err)
			return
		}
	}
}
