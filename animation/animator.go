package animation

import (
	"fmt"
	"log/slog"
	"time"
)

// FrameSink receives finished frames for transmission to the output
// device. A returned error means the device is gone and ends the
// render loop.
type FrameSink interface {
	DisplayFrame(frame []Led) error
}

// DelaySource yields the effective per-tick delay derived from a base
// delay. It is read once per tick and may be updated concurrently.
type DelaySource interface {
	EffectiveDelay(base time.Duration) time.Duration
}

// Animator is the top-level render loop: one frame per tick, handed to
// the sink, followed by a sleep paced by the delay source.
type Animator struct {
	sched     *Scheduler
	sink      FrameSink
	speed     DelaySource
	baseDelay func() time.Duration
	dimmer    *NightDimmer
	color     Led
	frame     []Led
}

// NewAnimator creates an animator rendering ledsTotal pixels. dimmer
// may be nil.
func NewAnimator(ledsTotal int, color Led, sched *Scheduler, sink FrameSink, speed DelaySource, baseDelay func() time.Duration, dimmer *NightDimmer) *Animator {
	return &Animator{
		sched:     sched,
		sink:      sink,
		speed:     speed,
		baseDelay: baseDelay,
		dimmer:    dimmer,
		color:     color,
		frame:     make([]Led, ledsTotal),
	}
}

// Run renders frames until transmitting one fails. Sleeping between
// frames is the pacing mechanism; nothing else runs on this goroutine.
func (a *Animator) Run() error {
	mode, mirrored := a.sched.Current()
	slog.Info("Starting LED animation", "mode", mode.String(), "mirrored", mirrored)

	for {
		if a.sched.Step(a.frame, a.color) {
			Mirror(a.frame)
		}
		if a.dimmer != nil {
			a.dimmer.Apply(a.frame)
		}
		if err := a.sink.DisplayFrame(a.frame); err != nil {
			return fmt.Errorf("displaying frame: %w", err)
		}
		time.Sleep(a.speed.EffectiveDelay(a.baseDelay()))
	}
}
