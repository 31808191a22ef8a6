package config

import (
	"sync"
	"time"
)

// Runtime holds the settings that may change while the animation is
// running. The render loop reads it on every tick, the config watcher
// writes it on a reload; the lock is held only for the field accesses.
type Runtime struct {
	mu            sync.Mutex
	baseDelay     time.Duration
	modeDuration  time.Duration
	nightDimLevel float64
}

func NewRuntime(conf *Config) *Runtime {
	rt := &Runtime{}
	rt.Apply(conf)
	return rt
}

// Apply takes over the runtime-tunable subset of conf.
func (r *Runtime) Apply(conf *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseDelay = conf.Animation.BaseDelay.Std()
	r.modeDuration = conf.Animation.ModeDuration.Std()
	r.nightDimLevel = conf.NightDim.Factor
}

// BaseDelay is the frame delay before the speed multiplier is applied.
func (r *Runtime) BaseDelay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.baseDelay
}

// ModeDuration is the time budget after which the scheduler rotates.
func (r *Runtime) ModeDuration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modeDuration
}

// NightDimFactor is the brightness factor applied between sunset and
// sunrise when night dimming is enabled.
func (r *Runtime) NightDimFactor() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nightDimLevel
}
