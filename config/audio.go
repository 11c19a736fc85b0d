package config

import "github.com/automoto/quickdraw/shared/synth"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Duel sounds
	SoundStrike
	SoundCue
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesized voices
type SoundConfig struct {
	Voices            map[SoundID]synth.Voice
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		Voices: map[SoundID]synth.Voice{
			SoundStrike:       synth.Strike,
			SoundCue:          synth.Cue,
			SoundMenuNavigate: synth.Blip,
			SoundMenuSelect:   synth.Select,
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStrike: 1.2,
			SoundCue:    0.8,
		},
	}
}
