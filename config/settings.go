package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/richlog/richlog/core"
)

// Hardcoded defaults; the lowest-priority configuration layer.
const (
	DefaultLevel          = "INFO"
	DefaultFormat         = "DEFAULT"
	DefaultDateFormat     = "DEFAULT"
	DefaultRichTracebacks = true
)

// Settings is the resolved logging configuration. It is built once by
// Resolve from defaults, file contents and environment variables, and
// is not modified afterwards.
type Settings struct {
	// Level is the severity threshold name, one of the five known levels
	Level string
	// Format is a message preset name or a raw template string
	Format string
	// DateFormat is a date preset name or a raw time layout
	DateFormat string
	// RichTracebacks attaches full stack text to captured errors
	RichTracebacks bool
	// TracebackSuppress lists module prefixes hidden from stacks
	TracebackSuppress []string
}

// DefaultSettings returns the hardcoded defaults
func DefaultSettings() Settings {
	return Settings{
		Level:          DefaultLevel,
		Format:         DefaultFormat,
		DateFormat:     DefaultDateFormat,
		RichTracebacks: DefaultRichTracebacks,
	}
}

// Validate checks the level field against the five known severities,
// case-insensitively. An unresolvable level is a hard configuration
// error, never a silent default.
func (s Settings) Validate() error {
	if _, ok := core.LevelFromString(s.Level); !ok {
		names := core.LevelNames()
		sort.Strings(names)
		return &ConfigError{
			Msg: fmt.Sprintf("Invalid log level: %s. Valid levels are: %s",
				s.Level, strings.Join(names, ", ")),
		}
	}
	return nil
}

// LogLevel converts the level name to a core.Level, falling back to
// InfoLevel when the name is invalid. Use Validate to reject invalid
// names instead.
func (s Settings) LogLevel() core.Level {
	level, ok := core.LevelFromString(s.Level)
	if !ok {
		return core.InfoLevel
	}
	return level
}

// ConfigError is returned for any settings-resolution failure: a bad
// file path, unparseable file content, or an invalid level.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
