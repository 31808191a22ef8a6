package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	a "lautenbacher.net/pmlicht/animation"
	c "lautenbacher.net/pmlicht/config"
)

func testConfig(bigLeds bool, brightness int) *c.Config {
	conf := &c.Config{}
	conf.Display.LedsTotal = 2
	conf.Display.Brightness = brightness
	conf.Display.BigLeds = bigLeds
	return conf
}

func TestEncodeFrameSmallLeds(t *testing.T) {
	p := NewRPiPlatform(testConfig(false, 255))
	frame := []a.Led{
		{Red: 10, Green: 20, Blue: 30, White: 40},
		{Red: 50},
	}
	p.encodeFrame(frame)

	// Small strips want B, G, R, W.
	assert.Equal(t, []byte{30, 20, 10, 40, 0, 0, 50, 0}, p.buffer)
}

func TestEncodeFrameBigLeds(t *testing.T) {
	p := NewRPiPlatform(testConfig(true, 255))
	frame := []a.Led{
		{Red: 10, Green: 20, Blue: 30, White: 40},
		{},
	}
	p.encodeFrame(frame)

	// Big strips want B, R, G, W.
	assert.Equal(t, []byte{30, 10, 20, 40, 0, 0, 0, 0}, p.buffer)
}

func TestEncodeFrameAppliesBrightness(t *testing.T) {
	p := NewRPiPlatform(testConfig(false, 128))
	frame := []a.Led{
		{Red: 255, Green: 100, Blue: 0, White: 1},
		{},
	}
	p.encodeFrame(frame)

	// 128/255 of each channel, rounded.
	assert.Equal(t, []byte{0, 50, 128, 1, 0, 0, 0, 0}, p.buffer)
}
