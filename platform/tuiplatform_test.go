package platform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	a "lautenbacher.net/pmlicht/animation"
)

func TestScaledColor(t *testing.T) {
	assert.Equal(t, "[#000000]", scaledColor(a.Led{}))
	assert.Equal(t, "[#ff0000]", scaledColor(a.Led{Red: 10}))
	assert.Equal(t, "[#ff7f00]", scaledColor(a.Led{Red: 200, Green: 100}))
	// Pure white lights all three channels fully.
	assert.Equal(t, "[#ffffff]", scaledColor(a.Led{White: 60}))
}

func TestBlockCharsGrowWithIntensity(t *testing.T) {
	_, dimBottom := blockChars(a.Led{Red: 40})
	assert.Equal(t, "▂", dimBottom)

	top, bottom := blockChars(a.Led{Red: 255, Green: 255, Blue: 255, White: 255})
	assert.Equal(t, "█", top)
	assert.Equal(t, "█", bottom)
}

func TestNewSelectsPlatform(t *testing.T) {
	conf := testConfig(false, 255)
	ossignal := make(chan os.Signal, 1)

	conf.RealHW = false
	_, ok := New(conf, ossignal).(*TUIPlatform)
	assert.True(t, ok)

	conf.RealHW = true
	_, ok = New(conf, ossignal).(*RPiPlatform)
	assert.True(t, ok)
}
