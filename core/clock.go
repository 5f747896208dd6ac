package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies entry timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant
type FixedClock time.Time

// Now implements Clock
func (c FixedClock) Now() time.Time { return time.Time(c) }

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// CoarseClock returns a time.Now value cached every 500µs by a single
// background goroutine. The goroutine is started on first use and runs for
// the lifetime of the process.
type CoarseClock struct{}

// NewCoarseClock starts the shared ticker if needed
func NewCoarseClock() CoarseClock {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return CoarseClock{}
}

// Now implements Clock
func (CoarseClock) Now() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
