package animation

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gammazero/deque"
)

// Number of past rotations kept for inspection.
const historySize = 16

// randSource is the subset of math/rand the scheduler needs. Tests
// supply a scripted sequence to get deterministic rotations.
type randSource interface {
	Intn(n int) int
}

// Rotation records one mode switch. The json tags define its shape in
// get_property replies on the IPC socket.
type Rotation struct {
	Mode     Mode      `json:"mode"`
	Mirrored bool      `json:"mirrored"`
	At       time.Time `json:"at"`
}

// Scheduler owns the active mode and the progress state of every
// pattern. Whenever the configured mode duration has elapsed it
// rotates to a randomly chosen different mode and decides
// independently whether the new mode renders mirrored. Every tick is
// dispatched to the active mode's pattern; the other patterns keep
// their state until they become active again.
//
// Mode and pattern state are owned by the render loop and need no
// locking. The rotation history is also served to IPC clients, so it
// carries its own lock.
type Scheduler struct {
	patterns  [numModes]Pattern
	current   Mode
	mirrored  bool
	modeStart time.Time
	duration  func() time.Duration
	rng       randSource
	now       func() time.Time

	histMu  sync.Mutex
	history deque.Deque[Rotation]
}

// NewScheduler creates a scheduler starting in mode start. duration is
// consulted on every tick so the rotation budget can change at
// runtime. A nil rng selects a time-seeded source.
func NewScheduler(start Mode, mirrored bool, duration func() time.Duration, rng randSource) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Scheduler{
		current:  start,
		mirrored: mirrored,
		duration: duration,
		rng:      rng,
		now:      time.Now,
	}
	for m := ModeChase; m < numModes; m++ {
		s.patterns[m] = newPattern(m)
	}
	s.modeStart = s.now()
	return s
}

// Step advances the animation by one tick, overwriting frame, and
// reports whether the frame should be mirrored.
func (s *Scheduler) Step(frame []Led, color Led) bool {
	now := s.now()
	if now.Sub(s.modeStart) >= s.duration() {
		s.rotate(now)
	}
	s.patterns[s.current].Step(frame, color)
	return s.mirrored
}

// rotate picks a new mode uniformly among the seven others, flips a
// coin for the mirror flag and resets the elapsed-time anchor.
func (s *Scheduler) rotate(now time.Time) {
	next := Mode(s.rng.Intn(int(numModes) - 1))
	if next >= s.current {
		next++
	}
	s.current = next
	s.mirrored = s.rng.Intn(2) == 0
	s.modeStart = now

	s.histMu.Lock()
	s.history.PushBack(Rotation{Mode: next, Mirrored: s.mirrored, At: now})
	for s.history.Len() > historySize {
		s.history.PopFront()
	}
	s.histMu.Unlock()
	slog.Info("Switching mode", "mode", next.String(), "mirrored", s.mirrored)
}

// Current returns the active mode and its mirror flag.
func (s *Scheduler) Current() (Mode, bool) {
	return s.current, s.mirrored
}

// History returns the most recent rotations, oldest first. Safe to
// call from any goroutine.
func (s *Scheduler) History() []Rotation {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	ret := make([]Rotation, s.history.Len())
	for i := range ret {
		ret[i] = s.history.At(i)
	}
	return ret
}
