package audio

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordplay/model"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain reads up to limit samples, stopping when the stream ends
func drain(s beep.Streamer, limit int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf[:min(len(buf), limit-len(out))])
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = max(p, math.Abs(s[0]), math.Abs(s[1]))
	}
	return p
}

func TestCueWaves(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		c := NewCue(testRate, 10*time.Millisecond, vmath.NewFastRand(3), Partial{Wave: wave, Freq: 440, Level: 1})
		out := drain(c, 10000)
		assert.Len(t, out, testRate.N(10*time.Millisecond), "wave %d", wave)
		assert.LessOrEqual(t, peak(out), 1.0, "wave %d", wave)
		assert.Greater(t, peak(out), 0.5, "wave %d", wave)
		assert.NoError(t, c.Err())

		n, ok := c.Stream(make([][2]float64, 8))
		assert.Zero(t, n)
		assert.False(t, ok)
	}
}

func TestCueSquareLevels(t *testing.T) {
	out := drain(NewCue(testRate, 5*time.Millisecond, nil, Partial{Wave: WaveSquare, Freq: 220, Level: 1}), 1000)
	require.NotEmpty(t, out)
	for i, s := range out {
		require.Truef(t, s[0] == 1 || s[0] == -1, "sample %d = %v", i, s[0])
	}
}

func TestCueMixesPartials(t *testing.T) {
	// Two identical squares at half level sum to full scale
	sq := Partial{Wave: WaveSquare, Freq: 100, Level: 0.5}
	out := drain(NewCue(testRate, 5*time.Millisecond, nil, sq, sq), 1000)
	for _, s := range out {
		require.InDelta(t, 1.0, math.Abs(s[0]), 1e-12)
	}
	assert.Empty(t, drain(NewCue(testRate, 0, nil, sq), 10))
}

func TestEnvelopeGain(t *testing.T) {
	total := testRate.N(100 * time.Millisecond)
	attack := testRate.N(10 * time.Millisecond)
	release := testRate.N(20 * time.Millisecond)

	assert.Equal(t, 0.0, envelopeGain(0, total, attack, release))
	assert.InDelta(t, 0.5, envelopeGain(attack/2, total, attack, release), 1e-12)
	assert.Equal(t, 1.0, envelopeGain(testRate.N(50*time.Millisecond), total, attack, release))
	assert.Less(t, envelopeGain(total-1, total, attack, release), 0.01)
	assert.Equal(t, 1.0, envelopeGain(0, total, 0, 0))

	// Overlapping ramps never exceed either one
	for i := 0; i < total; i++ {
		g := envelopeGain(i, total, total, total)
		require.LessOrEqual(t, g, 0.5+1e-12, "sample %d", i)
	}
}

func TestWithGain(t *testing.T) {
	sq := Partial{Wave: WaveSquare, Freq: 100, Level: 1}
	assert.InDelta(t, 0.25, peak(drain(withGain(NewCue(testRate, time.Millisecond, nil, sq), 0.25), 100)), 1e-12)
	assert.Zero(t, peak(drain(withGain(NewCue(testRate, time.Millisecond, nil, sq), 0), 100)))
	assert.Zero(t, peak(drain(withGain(NewCue(testRate, time.Millisecond, nil, sq), -3), 100)))
}

func TestPowerGain(t *testing.T) {
	assert.InDelta(t, 0.4, powerGain(0, 10), 1e-12)
	assert.InDelta(t, 1.0, powerGain(10, 10), 1e-12)
	assert.InDelta(t, 1.0, powerGain(50, 10), 1e-12)
	assert.InDelta(t, 0.7, powerGain(5, 10), 1e-12)
	assert.Equal(t, 1.0, powerGain(5, 0))
}

func TestNoticeCues(t *testing.T) {
	tests := []struct {
		kind     model.NoticeKind
		duration time.Duration
	}{
		{model.NoticeSlash, parameter.SlashSoundDuration},
		{model.NoticeParry, parameter.ParrySoundDuration},
		{model.NoticeHit, parameter.HitSoundDuration},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := Streamer(tt.kind, 10, 10, testRate, vmath.NewFastRand(9))
			require.NotNil(t, s)

			expected := testRate.N(tt.duration)
			out := drain(s, expected+4096)
			require.GreaterOrEqual(t, len(out), expected)
			assert.Greater(t, peak(out[:expected]), 0.05)
			assert.LessOrEqual(t, peak(out), 1.0+1e-9)
			// Anything past the cue's length is silence
			assert.Zero(t, peak(out[expected:]))
		})
	}

	assert.Nil(t, Streamer(model.NoticeSwingEnd, 1, 10, testRate, nil))
}

func TestSlashLouderWithPower(t *testing.T) {
	weak := drain(Streamer(model.NoticeSlash, 1, 10, testRate, vmath.NewFastRand(5)), 100000)
	strong := drain(Streamer(model.NoticeSlash, 10, 10, testRate, vmath.NewFastRand(5)), 100000)
	require.Equal(t, len(weak), len(strong))
	assert.Greater(t, peak(strong), peak(weak))
}

// Cue playback must be safe without an audio device
func TestCuesWithoutInitialize(t *testing.T) {
	c := NewCues(0.8, 10, nil)
	assert.False(t, c.Ready())
	assert.NotPanics(t, func() {
		c.Play(model.Notice{Kind: model.NoticeSlash, Power: 5, SwingID: uuid.New()})
		c.PlayAll([]model.Notice{{Kind: model.NoticeHit}, {Kind: model.NoticeSwingEnd}})
		c.Close()
	})
}

func TestCuesInitialize(t *testing.T) {
	c := NewCues(0.5, 10, nil)
	if err := c.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	require.NoError(t, c.Initialize())
	assert.True(t, c.Ready())
	c.Play(model.Notice{Kind: model.NoticeParry, Power: 3})
	c.Close()
	assert.False(t, c.Ready())
}
