package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BytesPerFrame is the size of one 16-bit stereo frame.
const BytesPerFrame = 4

// Note is one step of a Theme. A zero Freq is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// Theme is a looping two-part tune.
type Theme struct {
	BPM    float64
	Lead   []Note
	Bass   []Note
	Wave   Wave
	Volume float64
}

// Render drains v into 16-bit little-endian stereo PCM, the layout ebiten's
// audio players read.
func Render(v Voice, sampleRate int) ([]byte, error) {
	if v.Duration <= 0 {
		return nil, fmt.Errorf("synth: voice has no duration")
	}
	return Drain(v.Streamer(beep.SampleRate(sampleRate)))
}

// RenderTheme renders the lead and bass lines mixed together.
func RenderTheme(t Theme, sampleRate int) ([]byte, error) {
	if t.BPM <= 0 || len(t.Lead) == 0 {
		return nil, fmt.Errorf("synth: theme needs a tempo and a lead line")
	}
	rate := beep.SampleRate(sampleRate)
	beat := time.Duration(float64(time.Minute) / t.BPM)

	lead := t.line(t.Lead, beat, 1, rate)
	if len(t.Bass) == 0 {
		return Drain(lead)
	}
	bass := t.line(t.Bass, beat, 0.6, rate)
	return Drain(beep.Mix(lead, bass))
}

func (t Theme) line(notes []Note, beat time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.Beats * float64(beat))
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, Voice{
			Wave:     t.Wave,
			Freq:     n.Freq,
			Duration: d,
			Attack:   5 * time.Millisecond,
			Release:  d / 3,
			Volume:   t.Volume * gain,
		}.Streamer(rate))
	}
	return beep.Seq(parts...)
}

// Drain reads s to the end and encodes it as 16-bit stereo PCM.
func Drain(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n < len(buf) {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
