package animation

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// NightDimmer scales frames down between sunset and sunrise so the
// lamp does not light up the whole room at night. factor is read per
// frame and may change at runtime.
type NightDimmer struct {
	latitude  float64
	longitude float64
	factor    func() float64
	now       func() time.Time
}

func NewNightDimmer(latitude, longitude float64, factor func() float64) *NightDimmer {
	return &NightDimmer{
		latitude:  latitude,
		longitude: longitude,
		factor:    factor,
		now:       time.Now,
	}
}

// Apply dims frame in place when the current time is outside the
// daylight window at the configured location.
func (s *NightDimmer) Apply(frame []Led) {
	now := s.now()
	rise, set := sunrise.SunriseSunset(s.latitude, s.longitude, now.Year(), now.Month(), now.Day())
	if now.After(rise) && now.Before(set) {
		return
	}
	factor := s.factor()
	for i := range frame {
		frame[i] = Led{
			Red:   dim(frame[i].Red, factor),
			Green: dim(frame[i].Green, factor),
			Blue:  dim(frame[i].Blue, factor),
			White: dim(frame[i].White, factor),
		}
	}
}

func dim(value byte, factor float64) byte {
	return byte(math.Min(math.Round(float64(value)*factor), 255))
}
