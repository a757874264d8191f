package log

import "go.uber.org/zap"

// ZapConfig holds the configuration for the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// FilePath, when set, receives a copy of every log line in addition to stderr.
	FilePath string
}

// zapLogger implements Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}
