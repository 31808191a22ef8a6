package animation

// BouncePattern lights two pixels that travel outward from the center
// of the strip to its edges and back in.
type BouncePattern struct {
	position  int
	direction int
}

func NewBouncePattern() *BouncePattern {
	return &BouncePattern{direction: 1}
}

func (s *BouncePattern) Step(frame []Led, color Led) {
	n := len(frame)
	// For an even count the two center pixels form the innermost pair;
	// for an odd count both start on the middle pixel.
	left := (n-1)/2 - s.position
	right := n/2 + s.position
	for i := range frame {
		if (i == left || i == right) && left >= 0 && right < n {
			frame[i] = color
		} else {
			frame[i] = Led{}
		}
	}
	s.position += s.direction
	// Reflect at the strip edges.
	if s.position >= n/2 || s.position < 0 {
		s.direction = -s.direction
		s.position += s.direction
	}
}
