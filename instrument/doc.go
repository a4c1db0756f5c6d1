// Package instrument provides scoped level overrides and callable
// wrappers for duration and error logging.
//
// OverrideLevel is a save/restore guard: it captures the logger's
// level on entry and Restore puts it back unconditionally, typically
// via defer. Timed and Errors wrap a Callable and return a new
// Callable of the same shape, copying the original's name and doc so
// the wrapped value keeps its identity.
package instrument
