package handler

import (
	"github.com/richlog/richlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record
	Handle(record *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// Flusher is an optional interface for handlers that hold records or
// bytes back and can push them downstream on demand. Wrapping handlers
// call it when the wrapped handler exposes it.
type Flusher interface {
	Flush() error
}
