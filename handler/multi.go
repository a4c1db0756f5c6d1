package handler

import (
	"github.com/richlog/richlog/core"
)

// MultiHandler fans a record out to several handlers, e.g. console
// plus file. Every child sees the same record pointer, so children
// must not mutate records.
type MultiHandler struct {
	handlers []Handler
	recycle  bool
}

// NewMultiHandler creates a new multi handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers: handlers,
		recycle:  true,
	}
	for _, h := range handlers {
		if rc, ok := h.(interface{ CanRecycleRecord() bool }); ok {
			if !rc.CanRecycleRecord() {
				m.recycle = false
			}
		} else {
			m.recycle = false
		}
	}
	return m
}

// Handle passes the record to every child handler; the last error wins
func (h *MultiHandler) Handle(record *core.Record) error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Handle(record); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CanRecycleRecord returns true only when every child consumes records
// synchronously.
func (h *MultiHandler) CanRecycleRecord() bool {
	return h.recycle
}

// Flush flushes every child that supports it
func (h *MultiHandler) Flush() error {
	var lastErr error
	for _, child := range h.handlers {
		if f, ok := child.(Flusher); ok {
			if err := f.Flush(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}

// Close closes all child handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
