package handler

import (
	"sync"
	"time"

	"github.com/richlog/richlog/core"
)

// recordingHandler captures delivered messages for assertions. All
// access is serialized so tests can poll it while a worker delivers.
type recordingHandler struct {
	mu        sync.Mutex
	messages  []string
	flushes   int
	closes    int
	handleErr error
	delay     time.Duration
}

func (h *recordingHandler) Handle(record *core.Record) error {
	if h.delay > 0 {
		time.Sleep(h.delay)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handleErr != nil {
		return h.handleErr
	}
	h.messages = append(h.messages, record.Message)
	return nil
}

func (h *recordingHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flushes++
	return nil
}

func (h *recordingHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closes++
	return nil
}

func (h *recordingHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *recordingHandler) FlushCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flushes
}

func (h *recordingHandler) CloseCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closes
}

func (h *recordingHandler) SetHandleErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handleErr = err
}

func makeRecord(level core.Level, msg string) *core.Record {
	return &core.Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
}

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}
