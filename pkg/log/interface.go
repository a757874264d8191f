package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger passed to every component.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	// With returns a child logger carrying the given key/value pairs.
	With(keysAndValues ...any) Logger
	Sync() error
}

// Init builds a zap backed Logger from cfg.
func Init(cfg ZapConfig) Logger {
	core, err := newCore(cfg)
	if err != nil {
		// Fall back to console only output; a bad file path must not kill the process.
		cfg.FilePath = ""
		core, _ = newCore(cfg)
	}
	return NewWithCore(core)
}

// NewWithCore wraps an existing zapcore.Core. Tests use it with zaptest/observer.
func NewWithCore(core zapcore.Core) Logger {
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}
