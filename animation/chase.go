package animation

// ChasePattern runs a single lit pixel along the strip, wrapping
// around at the end.
type ChasePattern struct {
	position int
}

func NewChasePattern() *ChasePattern {
	return &ChasePattern{}
}

func (s *ChasePattern) Step(frame []Led, color Led) {
	for i := range frame {
		if i == s.position {
			frame[i] = color
		} else {
			frame[i] = Led{}
		}
	}
	s.position = (s.position + 1) % len(frame)
}
