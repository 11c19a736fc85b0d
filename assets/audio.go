package assets

import (
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches sound effects as PCM
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}

	voice, ok := cfg.Sound.Voices[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = synth.Render(voice, l.context.SampleRate())
	return true
}

// LoadSFX returns a new player for the sound each time.
// It returns nil for sounds with no voice configured.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) *audio.Player {
	if !l.PreloadSFX(id) {
		return nil
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id])
}
