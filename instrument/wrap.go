package instrument

import (
	"fmt"
	"time"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/logger"
)

// Callable is a named function of one result. Wrappers copy Name and
// Doc onto the value they return, so tooling inspecting a wrapped
// callable sees the original's identity rather than an anonymous
// closure.
type Callable[T any] struct {
	Name string
	Doc  string
	Fn   func() (T, error)
}

// NewCallable bundles a function with its identifying metadata.
func NewCallable[T any](name, doc string, fn func() (T, error)) Callable[T] {
	return Callable[T]{Name: name, Doc: doc, Fn: fn}
}

// Call invokes the underlying function.
func (c Callable[T]) Call() (T, error) {
	return c.Fn()
}

// Timed wraps a callable so every call logs its wall-clock duration at
// the given level, with fixed 4-decimal seconds. The duration is
// measured and logged even when the call fails or panics.
func Timed[T any](l *logger.Logger, level core.Level, c Callable[T]) Callable[T] {
	wrapped := func() (T, error) {
		start := time.Now()
		defer func() {
			elapsed := time.Since(start).Seconds()
			l.Log(level, fmt.Sprintf("%s took %.4f seconds to execute", c.Name, elapsed))
		}()
		return c.Fn()
	}
	return Callable[T]{Name: c.Name, Doc: c.Doc, Fn: wrapped}
}

// ErrorsConfig controls the error-logging wrapper.
type ErrorsConfig struct {
	// Level for the emitted entry; nil means ErrorLevel. A pointer
	// keeps DebugLevel expressible, since its numeric value is the
	// zero Level.
	Level *core.Level
	// Swallow suppresses the error: the wrapped callable returns the
	// zero value of T and a nil error instead of propagating. Default
	// is to propagate.
	Swallow bool
}

// Errors wraps a callable so any returned error is logged with its
// type name, message and stack before being propagated or, with
// Swallow set, replaced by the zero value. Successful calls log
// nothing and return the result unchanged.
func Errors[T any](l *logger.Logger, cfg ErrorsConfig, c Callable[T]) Callable[T] {
	level := core.ErrorLevel
	if cfg.Level != nil {
		level = *cfg.Level
	}
	wrapped := func() (T, error) {
		result, err := c.Fn()
		if err == nil {
			return result, nil
		}
		l.LogError(level, fmt.Sprintf("Error in %s: %s: %s",
			c.Name, errorTypeName(err), err.Error()), err)
		if cfg.Swallow {
			var zero T
			return zero, nil
		}
		return result, err
	}
	return Callable[T]{Name: c.Name, Doc: c.Doc, Fn: wrapped}
}

func errorTypeName(err error) string {
	info := core.CaptureError(err, false, nil)
	return info.Type
}
