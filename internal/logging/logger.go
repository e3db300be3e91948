// Package logging builds the zap loggers used by opdemo.
// Logs always go to a separate sink (stderr in the CLI) so that standard
// output carries nothing but the routines' own lines.
package logging

import (
	"fmt"
	"opdemo/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem; it becomes the logger name.
type Category string

const (
	CategoryBoot    Category = "boot"    // CLI startup, config loading
	CategoryProgram Category = "program" // Step sequencing
	CategoryReport  Category = "report"  // Report collection and encoding
)

// New builds a logger from cfg writing to out. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json", "":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zap.New(zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level))), nil
}

// For returns the child logger for a category.
func For(l *zap.Logger, c Category) *zap.Logger {
	return l.Named(string(c))
}

// WithRun tags l with a fresh run id and returns both.
func WithRun(l *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return l.With(zap.String("run_id", id)), id
}
