package core

import (
	"testing"
	"time"
)

func TestCoarseClock(t *testing.T) {
	c := NewCoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(c.Now())
	if diff < 0 {
		diff = -diff
	}
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseClock drifted %v from time.Now()", diff)
	}
}

func TestNewCoarseClockIdempotent(t *testing.T) {
	NewCoarseClock()
	NewCoarseClock()
	if NewCoarseClock().Now().IsZero() {
		t.Error("CoarseClock returned zero time")
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	if got := FixedClock(at).Now(); !got.Equal(at) {
		t.Errorf("FixedClock.Now() = %v, want %v", got, at)
	}
}
