package handler

import (
	"sync/atomic"

	"github.com/philipp01105/jsconsole/core"
)

// Stats tracks handler statistics
type Stats struct {
	processed [core.ErrorSeverity + 1]atomic.Uint64
	failed    atomic.Uint64
	cleared   atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a severity
func (s *Stats) IncrementProcessed(sev core.Severity) {
	if sev >= 0 && int(sev) < len(s.processed) {
		s.processed[sev].Add(1)
	}
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementCleared atomically increments the clear counter
func (s *Stats) IncrementCleared() {
	s.cleared.Add(1)
}

// GetProcessed returns the processed count for a severity
func (s *Stats) GetProcessed(sev core.Severity) uint64 {
	if sev >= 0 && int(sev) < len(s.processed) {
		return s.processed[sev].Load()
	}
	return 0
}

// GetTotalProcessed returns the processed count across all severities
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.failed.Store(0)
	s.cleared.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Severity]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
	ClearedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:    make(map[core.Severity]uint64, len(s.processed)),
		FailedTotal:  s.failed.Load(),
		ClearedTotal: s.cleared.Load(),
	}
	for i := range s.processed {
		n := s.processed[i].Load()
		snap.Processed[core.Severity(i)] = n
		snap.ProcessedTotal += n
	}
	return snap
}
