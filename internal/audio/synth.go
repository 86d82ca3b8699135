// Package audio turns simulation cues into short synthesized sounds. All
// effects are generated, not sampled, so the binary ships no assets; a
// missing or unopenable output device degrades to silence.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator whose frequency glides linearly from
// fromFreq to toFreq over its lifetime. With equal endpoints it is a plain
// fixed-pitch tone.
type sweep struct {
	fromFreq float64
	toFreq   float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	duration int
}

// NewSweep creates a frequency-gliding oscillator streamer.
func NewSweep(fromFreq, toFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
	}
}

// NewTone creates a fixed-pitch oscillator streamer.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromFreq + (s.toFreq-s.fromFreq)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// shaped applies a linear attack and release ramp so cues start and stop
// without clicks.
type shaped struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewShaped wraps a streamer with attack/release amplitude ramps over the
// given total duration.
func NewShaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *shaped) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			gain = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.streamer.Err() }

// withVolume scales a streamer. effects.Volume is logarithmic and can't
// express zero, so zero and below map to silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue constructors. Durations are short enough that overlapping cues mix
// without muddying each other.

// flapCue is a quick upward chirp.
func flapCue(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 90 * time.Millisecond
	osc := NewSweep(300, 620, d, WaveSine, rate)
	return withVolume(NewShaped(osc, d, 5*time.Millisecond, 40*time.Millisecond, rate), vol)
}

// enemyDownCue is a two-note square chime.
func enemyDownCue(rate beep.SampleRate, vol float64) beep.Streamer {
	const note = 70 * time.Millisecond
	n1 := NewShaped(NewTone(659.26, note, WaveSquare, rate), note, 3*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewShaped(NewTone(880.0, note, WaveSquare, rate), note, 3*time.Millisecond, 40*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), vol*0.6)
}

// contactCue is a harsh low buzz for running into an enemy.
func contactCue(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 140 * time.Millisecond
	osc := NewTone(110, d, WaveSaw, rate)
	return withVolume(NewShaped(osc, d, 5*time.Millisecond, 60*time.Millisecond, rate), vol*0.7)
}

// gameOverCue is a long downward slide.
func gameOverCue(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 550 * time.Millisecond
	osc := NewSweep(440, 90, d, WaveSaw, rate)
	return withVolume(NewShaped(osc, d, 10*time.Millisecond, 200*time.Millisecond, rate), vol*0.5)
}
