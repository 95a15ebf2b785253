// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/notekeeper/notes-api/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// When cfg.LogFile is set, log output goes to both stdout and a rotating
// file; otherwise only to stdout.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		fileName := cfg.LogFile
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:  fileName,
			MaxSize:   50, // megabytes
			LocalTime: false,
			Compress:  true,
		})
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewJSONHandler(out, opts))

	// Set this logger as the default so the slog package functions
	// (slog.Info, slog.Error, ...) use it too.
	slog.SetDefault(logger)

	return logger, nil
}
