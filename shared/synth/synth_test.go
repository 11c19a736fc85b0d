package synth

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLength(t *testing.T) {
	pcm := Render(Strike, 44100)
	frames := int(Strike.Duration.Seconds() * 44100)
	assert.Len(t, pcm, frames*4)
}

func TestRenderStereoChannelsMatch(t *testing.T) {
	pcm := Render(Cue, 22050)
	require.NotEmpty(t, pcm)
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		require.Equal(t, l, r, "frame %d", i/4)
	}
}

func TestRenderIsAudibleAndStartsSilent(t *testing.T) {
	pcm := Render(Select, 44100)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	assert.Zero(t, first, "attack starts from silence")

	peak := int16(0)
	for i := 0; i+2 <= len(pcm); i += 4 {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(1000))
}

func TestRenderDeterministic(t *testing.T) {
	assert.Equal(t, Render(Strike, 8000), Render(Strike, 8000))
}

func TestRenderEmpty(t *testing.T) {
	assert.Nil(t, Render(Voice{Duration: 0}, 44100))
	assert.Nil(t, Render(Voice{Duration: time.Nanosecond}, 44100))
}
