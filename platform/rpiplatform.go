package platform

import (
	"fmt"
	"log/slog"
	"math"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	a "lautenbacher.net/pmlicht/animation"
	c "lautenbacher.net/pmlicht/config"
)

// RPiPlatform drives a WS281x/SK6812 strip through periph's NRZ
// encoder, either over SPI (MOSI wired to the strip's data line) or as
// a bit stream on a GPIO pin. It owns the strip's channel order and
// the global brightness.
type RPiPlatform struct {
	conf    *c.Config
	spiPort spi.PortCloser
	dev     *nrzled.Dev
	buffer  []byte
	scale   float64
}

func NewRPiPlatform(conf *c.Config) *RPiPlatform {
	return &RPiPlatform{
		conf:   conf,
		buffer: make([]byte, 4*conf.Display.LedsTotal),
		scale:  float64(conf.Display.Brightness) / 255.0,
	}
}

func (s *RPiPlatform) Start() error {
	slog.Info("Initialise GPIO and SPI...")
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to init periph: %w", err)
	}

	opts := nrzled.Opts{
		NumPixels: s.conf.Display.LedsTotal,
		Channels:  4,
		Freq:      800 * physic.KiloHertz,
	}

	switch s.conf.Hardware.Output {
	case "gpio":
		pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", s.conf.Hardware.GpioPin))
		if pin == nil {
			return fmt.Errorf("failed to find pin %d", s.conf.Hardware.GpioPin)
		}
		streamPin, ok := pin.(gpiostream.PinOut)
		if !ok {
			return fmt.Errorf("pin %d does not support streaming output", s.conf.Hardware.GpioPin)
		}
		dev, err := nrzled.NewStream(streamPin, &opts)
		if err != nil {
			return fmt.Errorf("failed to open NRZ stream on pin %d: %w", s.conf.Hardware.GpioPin, err)
		}
		s.dev = dev
	default:
		port, err := spireg.Open(s.conf.Hardware.SPIDevice)
		if err != nil {
			return fmt.Errorf("failed to open spi: %w", err)
		}
		s.spiPort = port
		dev, err := nrzled.NewSPI(port, &opts)
		if err != nil {
			port.Close()
			return fmt.Errorf("failed to attach LED driver to spi: %w", err)
		}
		s.dev = dev
	}
	return nil
}

func (s *RPiPlatform) Stop() {
	if s.dev != nil {
		if err := s.dev.Halt(); err != nil {
			slog.Error("Error halting LED driver", "error", err)
		}
		s.dev = nil
	}
	if s.spiPort != nil {
		if err := s.spiPort.Close(); err != nil {
			slog.Error("Error closing spi port", "error", err)
		}
		s.spiPort = nil
	}
}

// DisplayFrame encodes frame into the strip's channel order, applies
// the global brightness and hands the raw bytes to the NRZ encoder.
func (s *RPiPlatform) DisplayFrame(frame []a.Led) error {
	s.encodeFrame(frame)
	if _, err := s.dev.Write(s.buffer); err != nil {
		return fmt.Errorf("writing to LED driver: %w", err)
	}
	return nil
}

func (s *RPiPlatform) encodeFrame(frame []a.Led) {
	for i, led := range frame {
		// Blue comes first on both supported strip generations; the
		// big strips swap red and green relative to the small ones.
		var channels [4]byte
		if s.conf.Display.BigLeds {
			channels = [4]byte{led.Blue, led.Red, led.Green, led.White}
		} else {
			channels = [4]byte{led.Blue, led.Green, led.Red, led.White}
		}
		for j, value := range channels {
			s.buffer[4*i+j] = byte(math.Round(float64(value) * s.scale))
		}
	}
}
