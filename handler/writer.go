package handler

import (
	"io"
	"os"
	"sync"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/formatter"
)

// WriterHandler writes formatted records synchronously to an io.Writer.
// It is the simplest sink and the usual leaf under the buffered or
// async wrappers.
type WriterHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
}

// WriterConfig holds configuration for writer handlers
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.TextConfig{})
	}

	h := &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for the direct-write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// NewConsoleHandler creates a writer handler on stdout
func NewConsoleHandler(f formatter.Formatter) *WriterHandler {
	return NewWriterHandler(WriterConfig{Writer: os.Stdout, Formatter: f})
}

// Handle formats and writes a record
func (h *WriterHandler) Handle(record *core.Record) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(record, h.writer)
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	data, err := h.formatter.Format(record)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	if writeErr == nil {
		h.stats.IncrementProcessed()
	}

	return writeErr
}

// CanRecycleRecord returns true: records are fully consumed before Handle returns
func (h *WriterHandler) CanRecycleRecord() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *WriterHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Flush syncs the writer when it supports it
func (h *WriterHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Close closes the underlying writer if it is closeable. Stdout and
// stderr are left open.
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}
	if c, ok := h.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
