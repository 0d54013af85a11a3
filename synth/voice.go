package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Voice describes a one-shot sound. EndFreq, when non-zero, sweeps the pitch
// linearly from Freq over the duration. Layers are mixed on top.
type Voice struct {
	Wave     Wave
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64 // linear, 1 = unity
	Layers   []Voice
}

// Streamer builds the beep streamer for v at the given rate.
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if v.Wave == WaveSine && v.EndFreq == 0 {
		// Plain sine tones come straight from the beep generator.
		if tone, err := generators.SineTone(rate, v.Freq); err == nil {
			src = beep.Take(rate.N(v.Duration), tone)
		}
	}
	if src == nil {
		src = newOscillator(v, rate)
	}

	shaped := newEnvelope(src, v.Duration, v.Attack, v.Release, rate)
	out := withVolume(shaped, v.Volume)
	if len(v.Layers) == 0 {
		return out
	}

	all := []beep.Streamer{out}
	for _, l := range v.Layers {
		all = append(all, l.Streamer(rate))
	}
	return beep.Mix(all...)
}

// withVolume scales by a linear factor. effects.Gain multiplies by 1+Gain.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Gain{Streamer: s, Gain: vol - 1}
}

type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          Wave
	rate          beep.SampleRate
	noise         *rand.Rand
}

func newOscillator(v Voice, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     v.Freq,
		endFreq:  v.EndFreq,
		duration: rate.N(v.Duration),
		wave:     v.Wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(v.Freq*1000), uint64(v.Duration))),
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
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != 0 && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope is a linear attack/release shaper.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
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
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
