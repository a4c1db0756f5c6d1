package core

import "strings"

// Level represents the severity of a log record
type Level int8

const (
	// DebugLevel for detailed diagnostic output
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for conditions that deserve attention
	WarningLevel
	// ErrorLevel for failures the application recovered from
	ErrorLevel
	// CriticalLevel for failures the application cannot recover from
	CriticalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// LevelNames lists the valid level names in severity order.
func LevelNames() []string {
	return []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
}

// LevelFromString converts a level name to a Level. The lookup is
// case-insensitive and accepts exactly the five known severities;
// anything else reports ok=false.
func LevelFromString(s string) (Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARNING":
		return WarningLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL":
		return CriticalLevel, true
	default:
		return InfoLevel, false
	}
}
