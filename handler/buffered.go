package handler

import (
	"sync"

	"github.com/richlog/richlog/core"
)

// BufferedHandler accumulates records in memory and delivers them to
// the wrapped handler in batches: once the buffer reaches capacity, or
// on an explicit Flush, or at Close.
//
// The buffer mutex is only held for appends and for the snapshot swap,
// never during downstream I/O. A separate flush mutex serializes
// concurrent flushes so the wrapped handler is never invoked from two
// flushes at once; the trade-off is that a second flusher waits for
// the first instead of producers waiting on I/O.
type BufferedHandler struct {
	base     Handler
	capacity int
	recycle  bool

	mu      sync.Mutex
	records []*core.Record
	closed  bool

	flushMu sync.Mutex
}

// BufferedConfig holds configuration for the buffered handler
type BufferedConfig struct {
	// Capacity is the number of records that triggers a flush (default: 100)
	Capacity int
}

// NewBufferedHandler creates a buffered handler wrapping base
func NewBufferedHandler(base Handler, cfg BufferedConfig) *BufferedHandler {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 100
	}
	h := &BufferedHandler{
		base:     base,
		capacity: cfg.Capacity,
		records:  make([]*core.Record, 0, cfg.Capacity),
	}
	// Records may only go back to the pool once the wrapped handler has
	// fully consumed them.
	if rc, ok := base.(interface{ CanRecycleRecord() bool }); ok {
		h.recycle = rc.CanRecycleRecord()
	}
	return h
}

// Handle appends the record to the buffer and flushes when the buffer
// has reached capacity. After Close, records are accepted and silently
// dropped.
func (h *BufferedHandler) Handle(record *core.Record) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.records = append(h.records, record)
	shouldFlush := len(h.records) >= h.capacity
	h.mu.Unlock()

	if shouldFlush {
		return h.Flush()
	}
	return nil
}

// Flush atomically swaps out the buffered records and delivers them to
// the wrapped handler in emission order, then flushes the wrapped
// handler if it exposes a Flush. Flushing an empty buffer performs no
// downstream calls.
func (h *BufferedHandler) Flush() error {
	h.flushMu.Lock()
	defer h.flushMu.Unlock()

	h.mu.Lock()
	batch := h.records
	h.records = make([]*core.Record, 0, h.capacity)
	h.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	var lastErr error
	for _, record := range batch {
		if err := h.base.Handle(record); err != nil {
			lastErr = err
			continue
		}
		if h.recycle {
			core.PutRecord(record)
		}
	}

	if f, ok := h.base.(Flusher); ok {
		if err := f.Flush(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// CanRecycleRecord returns false: records are retained in the buffer
// after Handle returns.
func (h *BufferedHandler) CanRecycleRecord() bool {
	return false
}

// Close flushes the buffer and closes the wrapped handler. Handle calls
// after Close are silently dropped.
func (h *BufferedHandler) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	flushErr := h.Flush()
	closeErr := h.base.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
