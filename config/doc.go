// Package config resolves richlog settings and builds loggers from
// them.
//
// Resolve merges three layers into an immutable Settings value:
// hardcoded defaults, an optional configuration file (TOML with a
// [richlog] table, or INI-style with a [richlog] section), and
// RICHLOG_* environment variables, with the environment taking the
// highest precedence. A missing file, unparseable content, or an
// invalid level name fails with *ConfigError; resolution never
// defaults an invalid level silently.
//
// The package also carries the development/production/testing presets
// and the convenience constructors for console and file loggers.
package config
