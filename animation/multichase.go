package animation

// multiChaseWidth is the number of consecutive lit pixels.
const multiChaseWidth = 3

// MultiChasePattern runs a block of consecutive lit pixels along the
// strip, wrapping around at the end.
type MultiChasePattern struct {
	position int
}

func NewMultiChasePattern() *MultiChasePattern {
	return &MultiChasePattern{}
}

func (s *MultiChasePattern) Step(frame []Led, color Led) {
	n := len(frame)
	for i := range frame {
		frame[i] = Led{}
	}
	for offset := 0; offset < multiChaseWidth; offset++ {
		frame[(s.position+offset)%n] = color
	}
	s.position = (s.position + 1) % n
}
