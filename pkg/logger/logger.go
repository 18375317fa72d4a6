// Package logger provides structured logging using zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/openscholar/review-service/internal/config"
)

// New creates a new logger from environment configuration.
func New() (*zap.SugaredLogger, error) {
	cfg := appConfig.LoadLoggerConfigFromEnv()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new logger with custom configuration.
func NewWithConfig(cfg appConfig.LoggerConfig) (*zap.SugaredLogger, error) {
	var zapConfig zap.Config

	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapConfig.Encoding = "json"
	}

	if cfg.Output == "stdout" || cfg.Output == "stderr" {
		zapConfig.OutputPaths = []string{cfg.Output}
	} else {
		zapConfig.OutputPaths = []string{"stdout"}
	}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	log, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
