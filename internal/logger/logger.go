package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "multivendor-shop"

var log *zap.Logger

// Init replaces the global logger. An empty level keeps the environment's
// default (debug in development, info in production).
func Init(env, level string) error {
	l, err := New(env, level)
	if err != nil {
		return err
	}
	log = l.With(zap.String("service", serviceName))
	return nil
}

// New builds a logger without touching the global one.
func New(env, level string) (*zap.Logger, error) {
	cfg := configFor(env)

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build(zap.AddCaller())
}

func configFor(env string) zap.Config {
	if env != "production" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	enc := &cfg.EncoderConfig
	enc.TimeKey, enc.MessageKey = "timestamp", "message"
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// L returns the global logger, building one from APP_ENV and LOG_LEVEL on
// first use.
func L() *zap.Logger {
	if log == nil {
		if err := Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL")); err != nil {
			_ = Init(os.Getenv("APP_ENV"), "")
		}
	}
	return log
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
