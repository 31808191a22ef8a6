package ipc

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// Speed is the playback speed multiplier shared between the render
// loop and all connected clients. The lock is only ever held around
// the scalar itself, never across I/O or sleeps.
type Speed struct {
	mu     sync.Mutex
	factor float64
}

// NewSpeed returns a Speed at the default multiplier of 1.0.
func NewSpeed() *Speed {
	return &Speed{factor: 1.0}
}

// Set overwrites the multiplier. A non-positive value would stall or
// reverse the render cadence and is rejected.
func (s *Speed) Set(factor float64) {
	if factor <= 0 {
		slog.Warn("Ignoring non-positive speed", "factor", factor)
		return
	}
	s.mu.Lock()
	s.factor = factor
	s.mu.Unlock()
	slog.Info("Speed set", "factor", factor)
}

// Get returns the current multiplier.
func (s *Speed) Get() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.factor
}

// EffectiveDelay returns base divided by the current multiplier,
// rounded to the nearest duration.
func (s *Speed) EffectiveDelay(base time.Duration) time.Duration {
	return time.Duration(math.Round(float64(base) / s.Get()))
}
