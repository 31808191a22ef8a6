package animation

// AlternatePattern lights every other pixel and swaps the parity on
// each tick.
type AlternatePattern struct {
	even bool
}

func NewAlternatePattern() *AlternatePattern {
	return &AlternatePattern{}
}

func (s *AlternatePattern) Step(frame []Led, color Led) {
	for i := range frame {
		if (i%2 == 0) == s.even {
			frame[i] = color
		} else {
			frame[i] = Led{}
		}
	}
	s.even = !s.even
}
