package handler

import (
	"sync"
	"time"

	"github.com/richlog/richlog/core"
)

// AsyncHandler decouples emitting goroutines from the wrapped
// handler's I/O. Records are handed to a single worker goroutine
// through a bounded queue; when the queue is full the record is
// dropped silently, so producers never block and never see an error.
// Delivery failures inside the worker are swallowed and counted, which
// isolates slow or faulty sinks from the application.
type AsyncHandler struct {
	base         Handler
	recycle      bool
	queue        chan *core.Record
	closed       chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
	stats        *Stats
	drainTimeout time.Duration
}

// AsyncConfig holds configuration for the async handler
type AsyncConfig struct {
	// QueueSize is the capacity of the delivery queue (default: 1000)
	QueueSize int
	// DrainTimeout bounds the best-effort drain at Close (default: 1s)
	DrainTimeout time.Duration
}

// NewAsyncHandler creates an async handler wrapping base and starts
// its worker immediately.
func NewAsyncHandler(base Handler, cfg AsyncConfig) *AsyncHandler {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = time.Second
	}

	h := &AsyncHandler{
		base:         base,
		queue:        make(chan *core.Record, cfg.QueueSize),
		closed:       make(chan struct{}),
		stats:        NewStats(),
		drainTimeout: cfg.DrainTimeout,
	}

	if rc, ok := base.(interface{ CanRecycleRecord() bool }); ok {
		h.recycle = rc.CanRecycleRecord()
	}

	h.wg.Add(1)
	go h.process()

	return h
}

// Handle enqueues the record without blocking. A full queue or a
// closed handler drops the record and reports no error; the drop is
// visible in Stats.
func (h *AsyncHandler) Handle(record *core.Record) error {
	select {
	case <-h.closed:
		h.stats.IncrementDropped(record.Level)
		return nil
	default:
	}

	select {
	case h.queue <- record:
		return nil
	default:
		h.stats.IncrementDropped(record.Level)
		return nil
	}
}

// process is the single consumer of the queue. It delivers records in
// FIFO order until Close, then drains best effort within the drain
// timeout. Records still queued when the timeout fires are discarded
// and counted as dropped, so every accepted record shows up in Stats
// as either processed, failed or dropped.
func (h *AsyncHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case record := <-h.queue:
			h.deliver(record)
		case <-h.closed:
			deadline := time.NewTimer(h.drainTimeout)
			defer deadline.Stop()
			for {
				// Check the deadline on its own first so a ready queue
				// cannot starve an expired timer.
				select {
				case <-deadline.C:
					h.discardQueued()
					return
				default:
				}

				select {
				case record := <-h.queue:
					h.deliver(record)
				case <-deadline.C:
					h.discardQueued()
					return
				default:
					return
				}
			}
		}
	}
}

// discardQueued empties the queue without delivering, counting each
// record as a drop.
func (h *AsyncHandler) discardQueued() {
	for {
		select {
		case record := <-h.queue:
			h.stats.IncrementDropped(record.Level)
		default:
			return
		}
	}
}

// deliver hands one record to the wrapped handler. Errors and panics
// are swallowed: the worker must outlive any single delivery failure.
func (h *AsyncHandler) deliver(record *core.Record) {
	defer func() {
		if r := recover(); r != nil {
			h.stats.IncrementFailed()
		}
	}()

	if err := h.base.Handle(record); err != nil {
		h.stats.IncrementFailed()
		return
	}
	h.stats.IncrementProcessed()
	if h.recycle {
		core.PutRecord(record)
	}
}

// CanRecycleRecord returns false: records are still queued when Handle
// returns.
func (h *AsyncHandler) CanRecycleRecord() bool {
	return false
}

// Stats returns a snapshot of the current statistics
func (h *AsyncHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the worker, waits for it to finish its drain, then
// closes the wrapped handler. Records left in the queue past the drain
// timeout are discarded and counted as dropped.
func (h *AsyncHandler) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
		err = h.base.Close()
	})
	return err
}
