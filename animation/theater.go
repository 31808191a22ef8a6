package animation

// TheaterPattern lights one adjacent pair of pixels at a time, walking
// pair by pair along the strip. With an odd pixel count the last pixel
// is never part of a pair and stays dark.
type TheaterPattern struct {
	offset int
}

func NewTheaterPattern() *TheaterPattern {
	return &TheaterPattern{}
}

func (s *TheaterPattern) Step(frame []Led, color Led) {
	start := 2 * s.offset
	for i := range frame {
		if i == start || i == start+1 {
			frame[i] = color
		} else {
			frame[i] = Led{}
		}
	}
	s.offset = (s.offset + 1) % (len(frame) / 2)
}
