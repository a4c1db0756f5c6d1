package logger

import (
	"sync"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/formatter"
	"github.com/richlog/richlog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	h := handler.NewConsoleHandler(formatter.NewTextFormatter(formatter.TextConfig{
		Format: formatter.MessageVerbose,
	}))

	defaultLogger = NewBuilder().
		WithName("richlog").
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
