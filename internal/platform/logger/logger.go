package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.NewNop()

func init() {
	if l, err := zap.NewProduction(zap.AddCallerSkip(1)); err == nil {
		base = l
	}
}

// Init replaces the process logger. Format is "json" or "console".
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	base = l
	return nil
}

// SetLogger swaps the process logger, mainly for tests.
func SetLogger(l *zap.Logger) {
	base = l
}

func Sync() {
	_ = base.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	base.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	base.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	base.Warn(msg, fields...)
}

func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	base.Error(msg, fields...)
}
