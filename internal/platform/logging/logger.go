package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is a custom level below slog.LevelDebug for very verbose
// diagnostics.
const LevelTrace = slog.Level(-8)

// Config contains logger construction settings.
type Config struct {
	// Level is the minimum level to log: trace, debug, info, warn, error.
	Level string

	// Format selects the terminal output format: json, text, or pretty.
	Format string

	// Service is added to every record as service_name.
	Service string

	// Version is added to every record as service_version.
	Version string

	// File configures an optional rolling JSON log file written in
	// addition to the terminal output.
	File FileConfig
}

// FileConfig contains rolling log file settings.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger writing to the given writer. When file
// logging is enabled, records additionally go to a lumberjack-rotated
// JSON file; the terminal format stays as configured. Sensitive fields
// are redacted in every output.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	handler := terminalHandler(cfg, w, level, opts)

	if cfg.File.Enabled && cfg.File.Path != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}

		// Files always get JSON, regardless of terminal format.
		fileHandler := slog.NewJSONHandler(fileWriter, opts)
		handler = NewMultiHandler(handler, fileHandler)
	}

	logger := slog.New(handler)

	if cfg.Service != "" {
		logger = logger.With(
			slog.String("service_name", cfg.Service),
			slog.String("service_version", cfg.Version),
		)
	}

	return logger
}

// terminalHandler builds the handler for terminal output.
func terminalHandler(cfg *Config, w io.Writer, level slog.Level, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(cfg.Format) {
	case "pretty":
		charm := charmlog.NewWithOptions(w, charmlog.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
		})

		return charm

	case "text":
		return slog.NewTextHandler(w, opts)

	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts a level string to an slog.Level, defaulting to
// info for unknown values.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogToCharmLevel maps slog levels onto charmbracelet levels. Trace
// has no charm equivalent and maps to debug.
func slogToCharmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level < slog.LevelWarn:
		return charmlog.InfoLevel
	case level < slog.LevelError:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
