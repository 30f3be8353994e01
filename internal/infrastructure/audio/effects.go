package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// chirp is a sine sweep from one frequency to another with a decaying envelope
type chirp struct {
	from, to float64
	decay    float64 // envelope falls to exp(-decay) at the end
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewChirp creates a finite sine sweep
func NewChirp(rate beep.SampleRate, from, to float64, duration time.Duration, decay float64) beep.Streamer {
	return &chirp{
		from:     from,
		to:       to,
		decay:    decay,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}

		t := float64(c.position) / float64(c.duration)
		freq := c.from + (c.to-c.from)*t
		val := math.Sin(2*math.Pi*c.phase) * math.Exp(-c.decay*t)

		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// NewJumpSound is a short rising blip
func NewJumpSound(rate beep.SampleRate) beep.Streamer {
	return NewChirp(rate, 320, 880, 120*time.Millisecond, 2)
}

// NewLandSound is a short low thud
func NewLandSound(rate beep.SampleRate) beep.Streamer {
	return NewChirp(rate, 140, 70, 80*time.Millisecond, 5)
}
