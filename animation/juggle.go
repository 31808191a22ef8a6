package animation

import "math"

// JugglePattern bounces three balls along the strip, each with its own
// fractional position and velocity. A ball lights the pixel nearest to
// its position; on a collision the later ball wins.
type JugglePattern struct {
	positions  [3]float64
	velocities [3]float64
}

func NewJugglePattern() *JugglePattern {
	return &JugglePattern{velocities: [3]float64{0.3, 0.5, 0.7}}
}

func (s *JugglePattern) Step(frame []Led, color Led) {
	n := len(frame)
	for i := range frame {
		frame[i] = Led{}
	}
	for b := range s.positions {
		s.positions[b] += s.velocities[b]
		if s.positions[b] >= float64(n-1) || s.positions[b] <= 0 {
			s.velocities[b] = -s.velocities[b]
			s.positions[b] = math.Min(math.Max(s.positions[b], 0), float64(n-1))
		}
		if index := int(math.Round(s.positions[b])); index < n {
			frame[index] = color
		}
	}
}
