package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// at evaluates the wave at phase in [0, 1); noise ignores phase
func (w Wave) at(phase float64, rng *vmath.FastRand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rng.Range(-1, 1)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Partial is one enveloped tone inside a cue
// Attack ramps up from the cue start, Release ramps down to the cue end
type Partial struct {
	Wave    Wave
	Freq    float64 // Hz
	Level   float64
	Attack  time.Duration
	Release time.Duration
}

// envelopeGain is the linear attack/release level of sample i in a cue of total samples
func envelopeGain(i, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && i < attack {
		g = float64(i) / float64(attack)
	}
	if release > 0 && i >= total-release {
		g = min(g, float64(total-i)/float64(release))
	}
	return max(g, 0)
}

// cue sums its partials sample by sample until length runs out
type cue struct {
	partials []Partial
	phase    []float64
	attack   []int
	release  []int
	step     []float64
	total    int
	pos      int
	rng      *vmath.FastRand
}

// NewCue renders partials mixed over a fixed length; rng feeds noise partials
func NewCue(rate beep.SampleRate, length time.Duration, rng *vmath.FastRand, partials ...Partial) beep.Streamer {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	c := &cue{
		partials: partials,
		phase:    make([]float64, len(partials)),
		attack:   make([]int, len(partials)),
		release:  make([]int, len(partials)),
		step:     make([]float64, len(partials)),
		total:    rate.N(length),
		rng:      rng,
	}
	for i, p := range partials {
		c.attack[i] = rate.N(p.Attack)
		c.release[i] = rate.N(p.Release)
		c.step[i] = p.Freq / float64(rate)
	}
	return c
}

func (c *cue) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := min(len(samples), c.total-c.pos)
	for i := 0; i < n; i++ {
		v := 0.0
		for j, p := range c.partials {
			v += p.Level * p.Wave.at(c.phase[j], c.rng) * envelopeGain(c.pos, c.total, c.attack[j], c.release[j])
			c.phase[j] += c.step[j]
			c.phase[j] -= math.Floor(c.phase[j])
		}
		samples[i] = [2]float64{v, v}
		c.pos++
	}
	return n, true
}

func (c *cue) Err() error { return nil }

// withGain scales s linearly; effects.Gain multiplies by 1+Gain
func withGain(s beep.Streamer, g float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(g, 0) - 1}
}

// powerGain maps swing power onto [0.4, 1] so weak swings stay audible
func powerGain(power, powerMax float64) float64 {
	if powerMax <= 0 {
		return 1
	}
	return 0.4 + 0.6*vmath.Clamp(power/powerMax, 0, 1)
}

// slashCue is a band of noise, louder for stronger swings
func slashCue(rate beep.SampleRate, gain float64, rng *vmath.FastRand) beep.Streamer {
	return NewCue(rate, parameter.SlashSoundDuration, rng, Partial{
		Wave:    WaveNoise,
		Level:   0.5 * gain,
		Attack:  parameter.SlashSoundAttack,
		Release: parameter.SlashSoundRelease,
	})
}

// parryCue is a short metallic ring: a fundamental and an inharmonic overtone
func parryCue(rate beep.SampleRate, gain float64) beep.Streamer {
	return NewCue(rate, parameter.ParrySoundDuration, nil,
		Partial{WaveSine, 1320, 0.6 * gain, parameter.ParrySoundAttack, parameter.ParrySoundFundamentalDecay},
		Partial{WaveSine, 3470, 0.3 * gain, parameter.ParrySoundAttack, parameter.ParrySoundOvertoneDecay},
	)
}

// hitCue is a low thud with a square edge
func hitCue(rate beep.SampleRate, gain float64) beep.Streamer {
	return NewCue(rate, parameter.HitSoundDuration, nil,
		Partial{WaveSine, 90, 0.7 * gain, parameter.HitSoundAttack, parameter.HitSoundRelease},
		Partial{WaveSquare, 180, 0.15 * gain, parameter.HitSoundAttack, parameter.HitSoundRelease / 2},
	)
}
