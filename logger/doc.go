// Package logger provides the Logger type that applications log
// through, a fluent Builder for constructing it, and an explicit
// Registry for name-based lookup.
//
// A Logger filters by severity, stamps records with its name and
// default fields, and hands them to a handler. The severity threshold
// is held atomically so it can be raised or lowered while the logger
// is in use; all other state is immutable after Build.
package logger
