package log

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used across the client.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(fields ...any) Logger
}

// ZapConfig selects level and encoding for NewZapLogger.
type ZapConfig struct {
	Level    string
	Encoding string
	Color    bool
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger builds a Logger writing to stderr so table output on stdout stays clean.
func NewZapLogger(cfg ZapConfig) (Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = zapcore.WarnLevel
	}

	encoding := cfg.Encoding
	if encoding != "json" {
		encoding = "console"
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if encoding == "json" {
		encCfg = zap.NewProductionEncoderConfig()
	}
	if cfg.Color && encoding == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &zapLogger{s: l.Sugar()}, nil
}

// NewFromZap wraps an existing zap logger, mostly for tests using zaptest/observer.
func NewFromZap(l *zap.Logger) Logger {
	return &zapLogger{s: l.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	l.s.Debugf(format, args...)
}

func (l *zapLogger) Infof(_ context.Context, format string, args ...any) {
	l.s.Infof(format, args...)
}

func (l *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	l.s.Warnf(format, args...)
}

func (l *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	l.s.Errorf(format, args...)
}

func (l *zapLogger) With(fields ...any) Logger {
	return &zapLogger{s: l.s.With(fields...)}
}
