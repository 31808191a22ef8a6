package animation

// FlashPattern toggles the whole strip between fully lit and fully
// dark on every tick. The first tick renders dark.
type FlashPattern struct {
	on bool
}

func NewFlashPattern() *FlashPattern {
	return &FlashPattern{}
}

func (s *FlashPattern) Step(frame []Led, color Led) {
	value := Led{}
	if s.on {
		value = color
	}
	for i := range frame {
		frame[i] = value
	}
	s.on = !s.on
}
