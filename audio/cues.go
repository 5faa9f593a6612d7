// Package audio voices simulation notices as short synthesized cues
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/swordplay/model"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

// Streamer builds the cue for a notice kind, nil when the kind is silent
// power is scaled against powerMax; rng feeds noise voices
func Streamer(kind model.NoticeKind, power, powerMax float64, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	gain := powerGain(power, powerMax)
	switch kind {
	case model.NoticeSlash:
		return slashCue(rate, gain, rng)
	case model.NoticeParry:
		return parryCue(rate, gain)
	case model.NoticeHit:
		return hitCue(rate, 1)
	default:
		return nil
	}
}

// Cues owns the speaker and mixes notice cues into it
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	powerMax    float64
	seed        uint64
	initialized bool
	log         *zap.Logger
}

// NewCues prepares a cue player; nothing sounds until Initialize
func NewCues(volume, powerMax float64, log *zap.Logger) *Cues {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cues{
		mixer:    &beep.Mixer{},
		rate:     beep.SampleRate(parameter.AudioSampleRate),
		volume:   vmath.Clamp(volume, 0, 1),
		powerMax: powerMax,
		seed:     1,
		log:      log,
	}
}

// Initialize opens the speaker; safe to call twice
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	c.log.Info("audio ready", zap.Int("rate", int(c.rate)))
	return nil
}

// Ready reports whether the speaker is open
func (c *Cues) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play queues the cue for n; a no-op before Initialize or for silent kinds
func (c *Cues) Play(n model.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.volume <= 0 {
		return
	}

	c.seed++
	s := Streamer(n.Kind, n.Power, c.powerMax, c.rate, vmath.NewFastRand(c.seed))
	if s == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(withGain(s, c.volume))
	speaker.Unlock()
}

// PlayAll voices a drained batch in order
func (c *Cues) PlayAll(ns []model.Notice) {
	for _, n := range ns {
		c.Play(n)
	}
}

// Close stops output and releases the device
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}
