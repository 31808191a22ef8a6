package animation

// Led is one RGBW pixel value. The order in which the four channels
// are sent to the strip is owned by the platform, not by this package.
type Led struct {
	Red   byte
	Green byte
	Blue  byte
	White byte
}

// True if all components are zero, false otherwise
func (s Led) IsEmpty() bool {
	return s.Red == 0 && s.Green == 0 && s.Blue == 0 && s.White == 0
}

// The two warm white presets. The big 12V strips want a slightly
// colder mix than the small ones.
var (
	warmWhiteBig   = Led{Red: 255, Green: 160, Blue: 25}
	warmWhiteSmall = Led{Red: 255, Green: 170, Blue: 30}
)

// WarmWhite returns the warm white color used by all patterns,
// depending on the installed strip generation.
func WarmWhite(bigLeds bool) Led {
	if bigLeds {
		return warmWhiteBig
	}
	return warmWhiteSmall
}
