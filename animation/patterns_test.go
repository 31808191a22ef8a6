package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testColor = Led{Red: 255, Green: 170, Blue: 30}

func litIndices(frame []Led) []int {
	var lit []int
	for i, led := range frame {
		if !led.IsEmpty() {
			lit = append(lit, i)
		}
	}
	return lit
}

func TestPatternsKeepFrameLength(t *testing.T) {
	for m := ModeChase; m < numModes; m++ {
		p := newPattern(m)
		frame := make([]Led, 8)
		for i := 0; i < 20; i++ {
			p.Step(frame, testColor)
			assert.Len(t, frame, 8, "mode %s changed the frame length", m)
		}
	}
}

func TestChasePattern(t *testing.T) {
	const n = 8
	p := NewChasePattern()
	frame := make([]Led, n)

	for i := 0; i < n; i++ {
		p.Step(frame, testColor)
		assert.Equal(t, []int{i}, litIndices(frame), "step %d should light exactly one pixel", i)
	}
	// After n steps the position is back at the start.
	assert.Equal(t, 0, p.position)
}

func TestFlashPattern(t *testing.T) {
	p := NewFlashPattern()
	frame := make([]Led, 5)

	p.Step(frame, testColor)
	assert.Empty(t, litIndices(frame), "first step renders dark")
	p.Step(frame, testColor)
	assert.Len(t, litIndices(frame), 5, "second step lights everything")
	p.Step(frame, testColor)
	assert.Empty(t, litIndices(frame))
}

func TestMultiChasePattern(t *testing.T) {
	const n = 8
	p := NewMultiChasePattern()
	frame := make([]Led, n)

	p.Step(frame, testColor)
	assert.Equal(t, []int{0, 1, 2}, litIndices(frame))

	// Advance to the wrap-around.
	for i := 1; i < n-1; i++ {
		p.Step(frame, testColor)
	}
	p.Step(frame, testColor)
	assert.Equal(t, []int{0, 1, 7}, litIndices(frame), "the block wraps around the end of the strip")
}

func TestAlternatePattern(t *testing.T) {
	p := NewAlternatePattern()
	frame := make([]Led, 6)

	p.Step(frame, testColor)
	assert.Equal(t, []int{1, 3, 5}, litIndices(frame))
	p.Step(frame, testColor)
	assert.Equal(t, []int{0, 2, 4}, litIndices(frame))
	p.Step(frame, testColor)
	assert.Equal(t, []int{1, 3, 5}, litIndices(frame))
}

func TestBouncePattern(t *testing.T) {
	const n = 8
	p := NewBouncePattern()
	frame := make([]Led, n)

	expected := [][]int{
		{3, 4}, // center pair
		{2, 5},
		{1, 6},
		{0, 7}, // outer pair, direction reverses here
		{0, 7},
		{1, 6},
		{2, 5},
		{3, 4},
		{3, 4}, // reflected at the inner edge
		{2, 5},
	}
	for i, want := range expected {
		p.Step(frame, testColor)
		assert.Equal(t, want, litIndices(frame), "step %d", i)
	}
}

func TestFillEmptyPattern(t *testing.T) {
	const n = 5
	p := NewFillEmptyPattern()
	frame := make([]Led, n)

	for i := 0; i < n; i++ {
		p.Step(frame, testColor)
		assert.Len(t, litIndices(frame), i+1, "filling step %d", i)
	}
	assert.False(t, p.filling, "phase flips after reaching the end")
	assert.Equal(t, 0, p.position)

	for i := 0; i < n; i++ {
		p.Step(frame, testColor)
		assert.Len(t, litIndices(frame), n-1-i, "emptying step %d", i)
	}
	assert.True(t, p.filling)
}

func TestTheaterPattern(t *testing.T) {
	const n = 8
	p := NewTheaterPattern()
	frame := make([]Led, n)

	expected := [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {0, 1}}
	for i, want := range expected {
		p.Step(frame, testColor)
		assert.Equal(t, want, litIndices(frame), "step %d", i)
	}
}

func TestTheaterPatternOddCount(t *testing.T) {
	// With an odd count the last pixel never belongs to a pair.
	const n = 7
	p := NewTheaterPattern()
	frame := make([]Led, n)

	for i := 0; i < 4*n; i++ {
		p.Step(frame, testColor)
		assert.True(t, frame[n-1].IsEmpty(), "last pixel must stay dark")
	}
}

func TestJugglePatternStaysInBounds(t *testing.T) {
	const n = 5
	p := NewJugglePattern()
	frame := make([]Led, n)

	for i := 0; i < 200; i++ {
		p.Step(frame, testColor)
		for b := range p.positions {
			assert.GreaterOrEqual(t, p.positions[b], 0.0, "step %d ball %d", i, b)
			assert.LessOrEqual(t, p.positions[b], float64(n-1), "step %d ball %d", i, b)
		}
		lit := litIndices(frame)
		assert.NotEmpty(t, lit)
		assert.LessOrEqual(t, len(lit), 3, "at most one pixel per ball")
	}
}

func TestJugglePatternReflectsAtBoundary(t *testing.T) {
	const n = 4
	p := NewJugglePattern()
	frame := make([]Led, n)

	previous := p.velocities
	for i := 0; i < 100; i++ {
		p.Step(frame, testColor)
		for b := range p.velocities {
			if p.velocities[b] != previous[b] {
				// A sign flip must coincide with a boundary touch.
				boundary := p.positions[b] == 0 || p.positions[b] == float64(n-1)
				assert.True(t, boundary, "step %d ball %d flipped away from a boundary", i, b)
				assert.Equal(t, -previous[b], p.velocities[b])
			}
		}
		previous = p.velocities
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("fillempty")
	assert.NoError(t, err)
	assert.Equal(t, ModeFillEmpty, m)
	assert.Equal(t, "FillEmpty", m.String())

	_, err = ParseMode("disco")
	assert.Error(t, err)
}
