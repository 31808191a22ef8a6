package platform

import (
	"os"

	a "lautenbacher.net/pmlicht/animation"
	c "lautenbacher.net/pmlicht/config"
)

// Platform defines the interface for abstracting away the real strip
// hardware from the TUI simulation.
type Platform interface {
	// Start initializes the platform (opens SPI/GPIO, or starts the TUI).
	Start() error

	// Stop cleans up all platform resources.
	Stop()

	// DisplayFrame transmits one complete frame to the output device.
	// A returned error is fatal for the render loop.
	DisplayFrame(frame []a.Led) error
}

// New selects the platform matching the configuration. ossignal
// carries the quit request from the TUI back to main.
func New(conf *c.Config, ossignal chan os.Signal) Platform {
	if conf.RealHW {
		return NewRPiPlatform(conf)
	}
	return NewTUIPlatform(conf, ossignal)
}
