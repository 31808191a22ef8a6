package animation

import (
	"fmt"
	"strings"
)

// Mode identifies one of the animation patterns.
type Mode int

const (
	ModeChase Mode = iota
	ModeFlash
	ModeMultiChase
	ModeAlternate
	ModeBounce
	ModeFillEmpty
	ModeTheater
	ModeJuggle
	numModes
)

var modeNames = [numModes]string{
	"Chase",
	"Flash",
	"MultiChase",
	"Alternate",
	"Bounce",
	"FillEmpty",
	"Theater",
	"Juggle",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText renders the mode by name wherever it is serialized.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode maps a mode name from the config file to its Mode value.
// Matching is case-insensitive.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Pattern is one animation algorithm together with its own progress
// state. Step overwrites frame with the next tick's pixel values and
// advances the internal state for the following call. Implementations
// do no I/O and keep no state outside their own fields.
type Pattern interface {
	Step(frame []Led, color Led)
}

func newPattern(m Mode) Pattern {
	switch m {
	case ModeChase:
		return NewChasePattern()
	case ModeFlash:
		return NewFlashPattern()
	case ModeMultiChase:
		return NewMultiChasePattern()
	case ModeAlternate:
		return NewAlternatePattern()
	case ModeBounce:
		return NewBouncePattern()
	case ModeFillEmpty:
		return NewFillEmptyPattern()
	case ModeTheater:
		return NewTheaterPattern()
	case ModeJuggle:
		return NewJugglePattern()
	}
	panic(fmt.Sprintf("no pattern for mode %d", int(m)))
}
