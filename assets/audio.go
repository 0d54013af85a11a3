package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/synth"
)

// AudioLoader renders synthesized sounds once and hands out players
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // rendered 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.pcm(id)
	return err
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	voice, ok := config.Sound.Voices[id]
	if !ok {
		return nil, fmt.Errorf("no voice for sound %d", id)
	}
	data, err := synth.Render(voice, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("render sound %d: %w", id, err)
	}
	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadMusic renders a theme and returns a looping player for it.
func (l *AudioLoader) LoadMusic(theme synth.Theme) (*audio.Player, error) {
	data, err := synth.RenderTheme(theme, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("render theme: %w", err)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}
