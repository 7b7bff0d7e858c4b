// Package logging builds the zap logger used for diagnostic output.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	Debug  bool      // Enable debug output; otherwise all logging is discarded
	Output io.Writer // Destination for log lines, usually stderr
}

// New creates a logger from the given configuration.
// Without Debug set, New returns a no-op logger.
func New(cfg Config) *zap.Logger {
	if !cfg.Debug || cfg.Output == nil {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(cfg.Output),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}
