// Package logging builds the zap logger shared by the CLI, TUI and HTTP endpoint.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger level and sink
type Options struct {
	Level   string // debug, info, warn, error
	File    string // empty means stderr
	Verbose bool   // forces debug
}

// New builds a production zap logger.
// The TUI passes a file so log lines never land on the alternate screen.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// parseLevel maps a config level name onto zap
func parseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
