// Package logger holds the process-wide zap logger used by the client and
// CLI layers. The generator and specification packages stay pure and never
// log.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It defaults to a no-op logger so library use
// stays silent until Init is called.
var Log = zap.NewNop()

// Init configures the shared logger at the given level ("debug", "info",
// "warn", "error"). Console output uses the production encoder with ISO8601
// timestamps.
func Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = log
	return nil
}
