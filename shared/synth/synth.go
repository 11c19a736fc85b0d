// Package synth renders the game's sound effects as raw PCM so no audio
// files need to ship with the binary.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// Voice describes one procedural sound.
type Voice struct {
	Duration  time.Duration
	StartFreq float64 // Hz at the start of the sweep
	EndFreq   float64 // Hz at the end of the sweep
	Noise     float64 // 0..1 mix of white noise
	Attack    time.Duration
	Gain      float64
}

// Stock voices.
var (
	Strike = Voice{Duration: 350 * time.Millisecond, StartFreq: 1800, EndFreq: 400, Noise: 0.55, Attack: 2 * time.Millisecond, Gain: 0.8}
	Cue    = Voice{Duration: 180 * time.Millisecond, StartFreq: 1320, EndFreq: 1320, Attack: 4 * time.Millisecond, Gain: 0.5}
	Blip   = Voice{Duration: 60 * time.Millisecond, StartFreq: 660, EndFreq: 720, Attack: 2 * time.Millisecond, Gain: 0.35}
	Select = Voice{Duration: 140 * time.Millisecond, StartFreq: 520, EndFreq: 1040, Attack: 2 * time.Millisecond, Gain: 0.4}
)

// Render returns 16-bit little-endian stereo PCM for v at sampleRate.
func Render(v Voice, sampleRate int) []byte {
	n := int(v.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	attack := int(v.Attack.Seconds() * float64(sampleRate))
	rng := rand.New(rand.NewPCG(1, 2))

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := v.StartFreq + (v.EndFreq-v.StartFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		tone := math.Sin(phase)
		noise := rng.Float64()*2 - 1
		sample := tone*(1-v.Noise) + noise*v.Noise

		sample *= envelope(i, attack, n) * v.Gain
		s := int16(clamp(sample) * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// envelope is a linear attack followed by an exponential decay to silence.
func envelope(i, attack, n int) float64 {
	if attack > 0 && i < attack {
		return float64(i) / float64(attack)
	}
	rest := float64(i-attack) / float64(max(n-attack, 1))
	return math.Exp(-5 * rest)
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
