package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			return out
		}
	}
}

func TestChirp_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewChirp(rate, 200, 400, 100*time.Millisecond, 1))

	assert.Len(t, samples, rate.N(100*time.Millisecond))
}

func TestChirp_Range(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewChirp(rate, 440, 880, 50*time.Millisecond, 3)

	for i, sample := range drain(s) {
		require.LessOrEqual(t, sample[0], 1.0, "sample %d", i)
		require.GreaterOrEqual(t, sample[0], -1.0, "sample %d", i)
		require.Equal(t, sample[0], sample[1], "channels differ at %d", i)
	}
	assert.NoError(t, s.Err())
}

func TestChirp_Decays(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewLandSound(rate))
	require.NotEmpty(t, samples)

	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			m = max(m, s[0], -s[0])
		}
		return m
	}
	quarter := len(samples) / 4
	assert.Greater(t, peak(samples[:quarter]), peak(samples[3*quarter:]))
}

func TestChirp_ExhaustedStream(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewChirp(rate, 100, 100, 10*time.Millisecond, 0)
	drain(s)

	n, ok := s.Stream(make([][2]float64, 4))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestWithVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	full := drain(NewJumpSound(rate))
	half := drain(withVolume(NewJumpSound(rate), 0.5))
	muted := drain(withVolume(NewJumpSound(rate), 0))

	require.Len(t, half, len(full))
	for i := range full {
		assert.InDelta(t, full[i][0]/2, half[i][0], 1e-9)
	}
	for _, s := range muted {
		assert.Zero(t, s[0])
	}
}

func TestSoundManager_PlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(0.3)
	sm.PlayJump()
	sm.PlayLand()
	sm.SetVolume(0.5)
	sm.Cleanup()
	assert.Equal(t, 0, sm.mixer.Len())
}
