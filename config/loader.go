package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Environment variables recognized by Resolve. When set and non-empty
// they override both file values and defaults.
const (
	EnvLevel             = "RICHLOG_LEVEL"
	EnvFormat            = "RICHLOG_FORMAT"
	EnvDateFormat        = "RICHLOG_DATE_FORMAT"
	EnvRichTracebacks    = "RICHLOG_RICH_TRACEBACKS"
	EnvTracebackSuppress = "RICHLOG_TRACEBACK_SUPPRESS"
)

// sectionName is the table (TOML) or section (INI) settings live under.
const sectionName = "richlog"

// Resolve builds Settings from defaults, the optional configuration
// file and the environment, in that precedence order (environment
// highest). An empty path skips the file layer. The final level is
// validated; any failure is reported as a *ConfigError.
func Resolve(path string) (Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return settings, &ConfigError{Msg: fmt.Sprintf("Configuration file not found: %s", path)}
		}

		var err error
		if filepath.Ext(path) == ".toml" {
			err = loadTOML(path, &settings)
		} else {
			err = loadINI(path, &settings)
		}
		if err != nil {
			return settings, &ConfigError{
				Msg: fmt.Sprintf("Failed to load configuration from %s", path),
				Err: err,
			}
		}
	}

	loadEnv(&settings)

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// ResolveWith is Resolve with an optional dotenv overlay: envFile is
// loaded into the process environment first, without overriding
// variables that are already set, so real environment still wins.
func ResolveWith(path, envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return DefaultSettings(), &ConfigError{
				Msg: fmt.Sprintf("Failed to load environment from %s", envFile),
				Err: err,
			}
		}
	}
	return Resolve(path)
}

// loadTOML overlays settings with values from the [richlog] table of a
// TOML file.
func loadTOML(path string, settings *Settings) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if v.IsSet(sectionName + ".level") {
		settings.Level = v.GetString(sectionName + ".level")
	}
	if v.IsSet(sectionName + ".format") {
		settings.Format = v.GetString(sectionName + ".format")
	}
	if v.IsSet(sectionName + ".date_format") {
		settings.DateFormat = v.GetString(sectionName + ".date_format")
	}
	if v.IsSet(sectionName + ".rich_tracebacks") {
		settings.RichTracebacks = v.GetBool(sectionName + ".rich_tracebacks")
	}
	if v.IsSet(sectionName + ".traceback_suppress") {
		settings.TracebackSuppress = v.GetStringSlice(sectionName + ".traceback_suppress")
	}
	return nil
}

// loadINI overlays settings with values from the [richlog] section of
// an INI-style file. List-valued keys arrive as comma-separated
// strings.
func loadINI(path string, settings *Settings) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return err
	}

	sec, err := cfg.GetSection(sectionName)
	if err != nil {
		return nil // no [richlog] section, nothing to overlay
	}

	if sec.HasKey("level") {
		settings.Level = sec.Key("level").String()
	}
	if sec.HasKey("format") {
		settings.Format = sec.Key("format").String()
	}
	if sec.HasKey("date_format") {
		settings.DateFormat = sec.Key("date_format").String()
	}
	if sec.HasKey("rich_tracebacks") {
		b, err := sec.Key("rich_tracebacks").Bool()
		if err != nil {
			return err
		}
		settings.RichTracebacks = b
	}
	if sec.HasKey("traceback_suppress") {
		settings.TracebackSuppress = splitList(sec.Key("traceback_suppress").String())
	}
	return nil
}

// loadEnv overlays settings with non-empty environment variables.
func loadEnv(settings *Settings) {
	if v := os.Getenv(EnvLevel); v != "" {
		settings.Level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		settings.Format = v
	}
	if v := os.Getenv(EnvDateFormat); v != "" {
		settings.DateFormat = v
	}
	if v := os.Getenv(EnvRichTracebacks); v != "" {
		settings.RichTracebacks = parseBool(v)
	}
	if v := os.Getenv(EnvTracebackSuppress); v != "" {
		settings.TracebackSuppress = splitList(v)
	}
}

// parseBool accepts true/1/yes/on case-insensitively; anything else
// is false.
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// splitList splits a comma-separated value into trimmed, non-empty
// tokens.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
