package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.Logger

func Init(mode string) error {
	var cfg zap.Config

	switch mode {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "debug", "dev":
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unknown log mode: %q", mode)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	log = l
	return nil
}

// InitTestLogger replaces the global logger with a no-op logger for tests.
func InitTestLogger() {
	log = zap.NewNop()
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}
