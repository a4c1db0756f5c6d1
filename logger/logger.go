package logger

import (
	"sync/atomic"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/handler"
)

// Logger emits records to a handler after severity filtering. The
// level is atomic so it can be changed while the logger is in use
// (see instrument.OverrideLevel); everything else is fixed at build
// time.
type Logger struct {
	name          string
	handler       handler.Handler
	level         atomic.Int32
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	recycle       bool
	verboseTB     bool
	suppressTB    []string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	verboseTB     bool
	suppressTB    []string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: 3, // skip through log() and the level helper
		verboseTB:  true,
	}
}

// WithName sets the logger name carried on every record
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adjusts the number of frames skipped when capturing
// the caller, for wrappers that add their own frames.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithTracebacks controls captured-error payloads: verbose attaches
// the full stack text, and frames matching one of the suppress
// prefixes are removed from it.
func (b *Builder) WithTracebacks(verbose bool, suppress ...string) *Builder {
	b.verboseTB = verbose
	b.suppressTB = suppress
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		name:          b.name,
		handler:       b.handler,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		verboseTB:     b.verboseTB,
		suppressTB:    b.suppressTB,
	}
	l.level.Store(int32(b.level))
	if rc, ok := b.handler.(interface{ CanRecycleRecord() bool }); ok {
		l.recycle = rc.CanRecycleRecord()
	}
	return l
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current severity threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the severity threshold. Safe to call while other
// goroutines are logging.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether a record at the given level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// With creates a new Logger with additional fields. The child starts
// at the parent's current level but holds its own; level overrides on
// one do not affect the other.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	child := &Logger{
		name:          l.name,
		handler:       l.handler,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
		recycle:       l.recycle,
		verboseTB:     l.verboseTB,
		suppressTB:    l.suppressTB,
	}
	child.level.Store(l.level.Load())
	return child
}

// Log emits a record at the given level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, nil, fields)
}

// LogError emits a record carrying a captured-error payload. The stack
// is rendered at the call site per the logger's traceback settings.
func (l *Logger) LogError(level core.Level, msg string, err error, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, core.CaptureError(err, l.verboseTB, l.suppressTB), fields)
}

func (l *Logger) log(level core.Level, msg string, errInfo *core.ErrorInfo, fields []core.Field) {
	if l.handler == nil {
		return
	}

	record := core.GetRecord()
	record.Name = l.name
	record.Level = level
	record.Message = msg
	record.Err = errInfo

	if len(l.fields) > 0 {
		record.Fields = append(record.Fields, l.fields...)
	}
	if len(fields) > 0 {
		record.Fields = append(record.Fields, fields...)
	}

	if l.includeCaller {
		record.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.handler.Handle(record); err != nil {
		return
	}

	if l.recycle {
		core.PutRecord(record)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, nil, fields)
}

// Info logs an informational message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, nil, fields)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	l.log(core.WarningLevel, msg, nil, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, nil, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, nil, fields)
}

// Handler returns the logger's handler, e.g. to flush or close it
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler == nil {
		return nil
	}
	return l.handler.Close()
}
