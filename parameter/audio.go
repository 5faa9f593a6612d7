package parameter

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length; bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Slash cue timing
const (
	SlashSoundDuration = 180 * time.Millisecond
	SlashSoundAttack   = 60 * time.Millisecond
	SlashSoundRelease  = 110 * time.Millisecond
)

// Parry cue timing
const (
	ParrySoundDuration         = 350 * time.Millisecond
	ParrySoundAttack           = 3 * time.Millisecond
	ParrySoundFundamentalDecay = 330 * time.Millisecond
	ParrySoundOvertoneDecay    = 150 * time.Millisecond
)

// Hit cue timing
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 100 * time.Millisecond
)
