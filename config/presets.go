package config

import (
	"github.com/richlog/richlog/formatter"
	"github.com/richlog/richlog/handler"
	"github.com/richlog/richlog/logger"
)

// Preset names a canned Settings value for a common environment.
type Preset string

const (
	// Development favors visibility: DEBUG level, detailed format,
	// verbose tracebacks.
	Development Preset = "development"
	// Production favors aggregation: INFO level, verbose format with
	// ISO-8601 timestamps, compact tracebacks.
	Production Preset = "production"
	// Testing favors terseness: DEBUG level, simple format, no
	// timestamps.
	Testing Preset = "testing"
)

// PresetSettings returns the Settings for a preset. Unknown presets
// fall back to Development.
func PresetSettings(p Preset) Settings {
	switch p {
	case Production:
		return Settings{
			Level:          "INFO",
			Format:         "VERBOSE",
			DateFormat:     "ISO8601",
			RichTracebacks: false,
		}
	case Testing:
		return Settings{
			Level:          "DEBUG",
			Format:         "SIMPLE",
			DateFormat:     "NOTHING",
			RichTracebacks: true,
		}
	default:
		return Settings{
			Level:          "DEBUG",
			Format:         "DETAILED",
			DateFormat:     "DEFAULT",
			RichTracebacks: true,
		}
	}
}

// BuildLogger constructs a console logger from the settings. Format
// and date strings go through the preset-then-raw lookup, so both
// preset names and raw templates work.
func (s Settings) BuildLogger(name string) *logger.Logger {
	f := formatter.NewTextFormatter(formatter.TextConfig{
		Format:     formatter.ResolveMessageFormat(s.Format),
		DateFormat: formatter.ResolveDateFormat(s.DateFormat),
	})

	return logger.NewBuilder().
		WithName(name).
		WithHandler(handler.NewConsoleHandler(f)).
		WithLevel(s.LogLevel()).
		WithCaller(true).
		WithTracebacks(s.RichTracebacks, s.TracebackSuppress...).
		Build()
}

// SetupPreset builds a console logger for the given preset.
func SetupPreset(name string, p Preset) *logger.Logger {
	return PresetSettings(p).BuildLogger(name)
}

// FileLoggerConfig holds options for SetupFileLogger.
type FileLoggerConfig struct {
	// Filename is the log file path (default: "app.log")
	Filename string
	// MaxSizeMB before rotation (default: 10)
	MaxSizeMB int
	// MaxBackups rotated files retained (default: 5)
	MaxBackups int
	// Level threshold (0 means InfoLevel; use SetLevel afterwards for
	// a DEBUG file logger)
	Level logger.Level
}

// SetupFileLogger builds a logger that writes to the console and to a
// rotating file: detailed text on the console, JSON in the file.
func SetupFileLogger(name string, cfg FileLoggerConfig) (*logger.Logger, error) {
	if cfg.Filename == "" {
		cfg.Filename = "app.log"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 5
	}
	if cfg.Level == 0 {
		cfg.Level = logger.InfoLevel
	}

	console := handler.NewConsoleHandler(formatter.NewTextFormatter(formatter.TextConfig{
		Format:     formatter.MessageDetailed,
		DateFormat: formatter.DateISO8601,
	}))

	file, err := handler.NewFileHandler(handler.FileConfig{
		Filename:   cfg.Filename,
		Formatter:  formatter.NewJSONFormatter(formatter.JSONConfig{}),
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, err
	}

	return logger.NewBuilder().
		WithName(name).
		WithHandler(handler.NewMultiHandler(console, file)).
		WithLevel(cfg.Level).
		WithCaller(true).
		Build(), nil
}
