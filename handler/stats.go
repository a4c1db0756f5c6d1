package handler

import (
	"sync/atomic"

	"github.com/richlog/richlog/core"
)

// Stats tracks per-handler delivery counters. All counters are atomic;
// a Stats value is shared between producers and the async worker.
type Stats struct {
	droppedDebug    atomic.Uint64
	droppedInfo     atomic.Uint64
	droppedWarning  atomic.Uint64
	droppedError    atomic.Uint64
	droppedCritical atomic.Uint64
	failedTotal     atomic.Uint64
	processedTotal  atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped records a dropped record at the given level
func (s *Stats) IncrementDropped(level core.Level) {
	switch level {
	case core.DebugLevel:
		s.droppedDebug.Add(1)
	case core.InfoLevel:
		s.droppedInfo.Add(1)
	case core.WarningLevel:
		s.droppedWarning.Add(1)
	case core.ErrorLevel:
		s.droppedError.Add(1)
	case core.CriticalLevel:
		s.droppedCritical.Add(1)
	}
}

// IncrementFailed records a swallowed delivery failure
func (s *Stats) IncrementFailed() {
	s.failedTotal.Add(1)
}

// IncrementProcessed records a successful delivery
func (s *Stats) IncrementProcessed() {
	s.processedTotal.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return s.droppedDebug.Load()
	case core.InfoLevel:
		return s.droppedInfo.Load()
	case core.WarningLevel:
		return s.droppedWarning.Load()
	case core.ErrorLevel:
		return s.droppedError.Load()
	case core.CriticalLevel:
		return s.droppedCritical.Load()
	default:
		return 0
	}
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	return s.droppedDebug.Load() +
		s.droppedInfo.Load() +
		s.droppedWarning.Load() +
		s.droppedError.Load() +
		s.droppedCritical.Load()
}

// GetFailed returns the swallowed delivery failure count
func (s *Stats) GetFailed() uint64 {
	return s.failedTotal.Load()
}

// GetProcessed returns the successful delivery count
func (s *Stats) GetProcessed() uint64 {
	return s.processedTotal.Load()
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	FailedTotal    uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal: map[core.Level]uint64{
			core.DebugLevel:    s.GetDropped(core.DebugLevel),
			core.InfoLevel:     s.GetDropped(core.InfoLevel),
			core.WarningLevel:  s.GetDropped(core.WarningLevel),
			core.ErrorLevel:    s.GetDropped(core.ErrorLevel),
			core.CriticalLevel: s.GetDropped(core.CriticalLevel),
		},
		FailedTotal:    s.GetFailed(),
		ProcessedTotal: s.GetProcessed(),
	}
}
