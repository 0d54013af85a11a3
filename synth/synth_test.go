package synth

import (
	"encoding/binary"
	"testing"
	"time"
)

const rate = 44100

func TestRenderLength(t *testing.T) {
	tests := []struct {
		name  string
		voice Voice
	}{
		{"sine", Voice{Wave: WaveSine, Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5}},
		{"sweep", Voice{Wave: WaveSquare, Freq: 880, EndFreq: 220, Duration: 50 * time.Millisecond, Release: 20 * time.Millisecond, Volume: 1}},
		{"noise", Voice{Wave: WaveNoise, Duration: 30 * time.Millisecond, Attack: 5 * time.Millisecond, Volume: 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := Render(tt.voice, rate)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			frames := len(pcm) / BytesPerFrame
			want := int(float64(rate) * tt.voice.Duration.Seconds())
			if frames < want-1 || frames > want+1 {
				t.Fatalf("frames = %d, want about %d", frames, want)
			}
			if len(pcm)%BytesPerFrame != 0 {
				t.Fatalf("pcm length %d is not whole frames", len(pcm))
			}
		})
	}
}

func TestRenderRejectsEmptyVoice(t *testing.T) {
	if _, err := Render(Voice{Wave: WaveSine, Freq: 440}, rate); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	v := Voice{
		Wave:     WaveSquare,
		Freq:     200,
		Duration: 40 * time.Millisecond,
		Attack:   10 * time.Millisecond,
		Release:  10 * time.Millisecond,
		Volume:   1,
	}
	pcm, err := Render(v, rate)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	if first != 0 {
		t.Fatalf("first sample = %d, want 0 at the start of the attack", first)
	}
	mid := len(pcm) / 2 / BytesPerFrame * BytesPerFrame
	if s := int16(binary.LittleEndian.Uint16(pcm[mid : mid+2])); s == 0 {
		t.Fatal("sustain is silent")
	}
}

func TestLayersMix(t *testing.T) {
	v := Voice{
		Wave: WaveSine, Freq: 330, Duration: 20 * time.Millisecond, Volume: 0.4,
		Layers: []Voice{{Wave: WaveSaw, Freq: 660, Duration: 20 * time.Millisecond, Volume: 0.2}},
	}
	pcm, err := Render(v, rate)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(pcm) == 0 {
		t.Fatal("layered voice rendered nothing")
	}
}

func TestRenderTheme(t *testing.T) {
	theme := Theme{
		BPM:    120,
		Wave:   WaveTriangle,
		Volume: 0.3,
		Lead:   []Note{{Freq: 440, Beats: 1}, {Beats: 1}, {Freq: 660, Beats: 2}},
		Bass:   []Note{{Freq: 110, Beats: 4}},
	}
	pcm, err := RenderTheme(theme, rate)
	if err != nil {
		t.Fatalf("RenderTheme: %v", err)
	}
	// Four beats at 120 BPM.
	want := 2 * rate
	if frames := len(pcm) / BytesPerFrame; frames < want-4 || frames > want+4 {
		t.Fatalf("frames = %d, want about %d", frames, want)
	}

	if _, err := RenderTheme(Theme{}, rate); err == nil {
		t.Fatal("expected error for empty theme")
	}
}

func TestToInt16Clips(t *testing.T) {
	if got := toInt16(3); got != 32767 {
		t.Errorf("toInt16(3) = %d", got)
	}
	if got := toInt16(-3); got != -32767 {
		t.Errorf("toInt16(-3) = %d", got)
	}
}
