// Package logging builds the service's structured logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"po-addon/internal/config"
)

// New builds a zap logger from cfg. An unknown level falls back to info and
// any format other than "console" produces JSON.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zapConfig.Encoding = "json"
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "po-addon")), nil
}

// Must is New for main packages: it falls back to a stock production logger.
func Must(cfg config.LogConfig) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
