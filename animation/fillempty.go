package animation

// FillEmptyPattern fills the strip pixel by pixel from the start and
// then empties it the same way.
type FillEmptyPattern struct {
	position int
	filling  bool
}

func NewFillEmptyPattern() *FillEmptyPattern {
	return &FillEmptyPattern{filling: true}
}

func (s *FillEmptyPattern) Step(frame []Led, color Led) {
	for i := range frame {
		lit := i > s.position
		if s.filling {
			lit = i <= s.position
		}
		if lit {
			frame[i] = color
		} else {
			frame[i] = Led{}
		}
	}
	s.position++
	if s.position >= len(frame) {
		s.filling = !s.filling
		s.position = 0
	}
}
