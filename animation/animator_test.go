package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingSink collects frames and fails after a fixed number.
type recordingSink struct {
	frames   [][]Led
	failFrom int
}

var errStripGone = errors.New("strip gone")

func (s *recordingSink) DisplayFrame(frame []Led) error {
	if len(s.frames) >= s.failFrom {
		return errStripGone
	}
	ledsCopy := make([]Led, len(frame))
	copy(ledsCopy, frame)
	s.frames = append(s.frames, ledsCopy)
	return nil
}

// zeroDelay paces the loop as fast as possible.
type zeroDelay struct{}

func (zeroDelay) EffectiveDelay(base time.Duration) time.Duration { return 0 }

func TestAnimatorPropagatesSinkFailure(t *testing.T) {
	const n = 8
	sched := NewScheduler(ModeChase, false, fixedDuration(time.Hour), nil)
	sink := &recordingSink{failFrom: 5}
	a := NewAnimator(n, testColor, sched, sink, zeroDelay{}, fixedDuration(0), nil)

	err := a.Run()
	assert.ErrorIs(t, err, errStripGone)
	assert.Len(t, sink.frames, 5)
	for i, frame := range sink.frames {
		assert.Len(t, frame, n)
		assert.Equal(t, []int{i}, litIndices(frame), "chase frame %d", i)
	}
}

func TestAnimatorMirrorsFrames(t *testing.T) {
	const n = 8
	sched := NewScheduler(ModeChase, true, fixedDuration(time.Hour), nil)
	sink := &recordingSink{failFrom: 1}
	a := NewAnimator(n, testColor, sched, sink, zeroDelay{}, fixedDuration(0), nil)

	err := a.Run()
	assert.ErrorIs(t, err, errStripGone)
	// The chase starts at pixel 0; mirrored it lands on the last one.
	assert.Equal(t, []int{n - 1}, litIndices(sink.frames[0]))
}

func TestAnimatorAppliesNightDimmer(t *testing.T) {
	const n = 4
	sched := NewScheduler(ModeFlash, false, fixedDuration(time.Hour), nil)
	// Skip the dark first flash frame.
	frame := make([]Led, n)
	sched.Step(frame, testColor)

	dimmer := testDimmer(0.5, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC))
	sink := &recordingSink{failFrom: 1}
	a := NewAnimator(n, Led{Red: 200}, sched, sink, zeroDelay{}, fixedDuration(0), dimmer)

	err := a.Run()
	assert.ErrorIs(t, err, errStripGone)
	assert.Equal(t, Led{Red: 100}, sink.frames[0][0])
}
