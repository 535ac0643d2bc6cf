package audio

import (
	"math"
	"math/rand"
	"time"

	"go-zombie-survival/internal/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType - форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second, negative falls
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator generates duration of wave at freq. A non-zero sweep
// slides the frequency linearly over time.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped oscillator voice.
type tone struct {
	freq, sweep   float64
	wave          WaveType
	dur, att, rel time.Duration
	gain          float64
}

// Звуковые эффекты собраны из простых голосов
var soundBank = map[types.Sound][]tone{
	types.SoundPistolShot: {
		{wave: WaveNoise, dur: 120 * time.Millisecond, rel: 110 * time.Millisecond, gain: 0.8},
		{freq: 180, sweep: -900, wave: WaveSine, dur: 100 * time.Millisecond, rel: 90 * time.Millisecond, gain: 0.5},
	},
	types.SoundM4Shot: {
		{wave: WaveNoise, dur: 70 * time.Millisecond, rel: 60 * time.Millisecond, gain: 0.6},
		{freq: 240, sweep: -1500, wave: WaveSquare, dur: 60 * time.Millisecond, rel: 50 * time.Millisecond, gain: 0.25},
	},
	types.SoundAWPShot: {
		{wave: WaveNoise, dur: 350 * time.Millisecond, rel: 320 * time.Millisecond, gain: 0.9},
		{freq: 90, sweep: -150, wave: WaveSine, dur: 400 * time.Millisecond, rel: 350 * time.Millisecond, gain: 0.7},
	},
	types.SoundEmptyClick: {
		{freq: 2200, wave: WaveSquare, dur: 25 * time.Millisecond, rel: 20 * time.Millisecond, gain: 0.3},
	},
	types.SoundReload: {
		{freq: 600, sweep: 1200, wave: WaveSaw, dur: 180 * time.Millisecond, att: 10 * time.Millisecond, rel: 60 * time.Millisecond, gain: 0.25},
	},
	types.SoundSwitch: {
		{freq: 1400, wave: WaveSquare, dur: 40 * time.Millisecond, rel: 30 * time.Millisecond, gain: 0.2},
	},
	types.SoundFootstep: {
		{wave: WaveNoise, dur: 60 * time.Millisecond, att: 5 * time.Millisecond, rel: 50 * time.Millisecond, gain: 0.15},
	},
	types.SoundPlayerHurt: {
		{freq: 320, sweep: -400, wave: WaveSaw, dur: 200 * time.Millisecond, att: 10 * time.Millisecond, rel: 120 * time.Millisecond, gain: 0.4},
	},
	types.SoundZombieHit: {
		{wave: WaveNoise, dur: 80 * time.Millisecond, rel: 70 * time.Millisecond, gain: 0.35},
	},
	types.SoundZombieDeath: {
		{freq: 140, sweep: -120, wave: WaveSaw, dur: 450 * time.Millisecond, att: 20 * time.Millisecond, rel: 300 * time.Millisecond, gain: 0.45},
	},
	types.SoundPickup: {
		{freq: 880, wave: WaveSine, dur: 90 * time.Millisecond, att: 5 * time.Millisecond, rel: 60 * time.Millisecond, gain: 0.4},
		{freq: 1320, wave: WaveSine, dur: 120 * time.Millisecond, att: 5 * time.Millisecond, rel: 90 * time.Millisecond, gain: 0.3},
	},
	types.SoundGameOver: {
		{freq: 220, sweep: -80, wave: WaveSaw, dur: 1500 * time.Millisecond, att: 50 * time.Millisecond, rel: 900 * time.Millisecond, gain: 0.5},
	},
}

// CreateSound builds a fresh streamer for sound, or nil if it is unknown.
func CreateSound(sound types.Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	voices, ok := soundBank[sound]
	if !ok {
		return nil
	}
	streams := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		osc := NewOscillator(v.freq, v.sweep, v.dur, v.wave, rate)
		streams = append(streams, newVolume(NewEnvelope(osc, v.dur, v.att, v.rel, rate), v.gain))
	}
	return newVolume(beep.Mix(streams...), volume)
}
