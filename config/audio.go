package config

import (
	"time"

	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/synth"
)

// SoundID represents a logical sound effect
type SoundID = physics.SoundID

const (
	SoundNone SoundID = iota
	SoundStart
	SoundDeath
	SoundHurt0
	SoundHurt1
	SoundHurt2
	SoundHurt3
	SoundHurt4
	SoundEmit
	SoundTwah
	SoundGust
	SoundBounce
	// UI sounds
	SoundMenuSelect
)

// HurtSounds are picked at random when a projectile strikes the cloth
var HurtSounds = []SoundID{SoundHurt0, SoundHurt1, SoundHurt2, SoundHurt3, SoundHurt4}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to synthesized voices
type SoundConfig struct {
	Voices            map[SoundID]synth.Voice
	VolumeMultipliers map[SoundID]float64
	Theme             synth.Theme
}

var Audio AudioConfig
var Sound SoundConfig

func hurt(freq float64) synth.Voice {
	return synth.Voice{
		Wave:     synth.WaveSquare,
		Freq:     freq,
		EndFreq:  freq * 0.5,
		Duration: 140 * time.Millisecond,
		Release:  90 * time.Millisecond,
		Volume:   0.35,
		Layers: []synth.Voice{{
			Wave:     synth.WaveNoise,
			Duration: 60 * time.Millisecond,
			Release:  50 * time.Millisecond,
			Volume:   0.2,
		}},
	}
}

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Voices: map[SoundID]synth.Voice{
			SoundStart: {
				Wave: synth.WaveTriangle, Freq: 330, EndFreq: 660,
				Duration: 400 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 150 * time.Millisecond,
				Volume: 0.5,
			},
			SoundDeath: {
				Wave: synth.WaveSaw, Freq: 440, EndFreq: 55,
				Duration: 1200 * time.Millisecond, Release: 600 * time.Millisecond,
				Volume: 0.45,
				Layers: []synth.Voice{{
					Wave: synth.WaveNoise, Duration: 800 * time.Millisecond,
					Release: 700 * time.Millisecond, Volume: 0.25,
				}},
			},
			SoundHurt0: hurt(520),
			SoundHurt1: hurt(470),
			SoundHurt2: hurt(430),
			SoundHurt3: hurt(390),
			SoundHurt4: hurt(350),
			SoundEmit: {
				Wave: synth.WaveNoise, Duration: 40 * time.Millisecond,
				Release: 30 * time.Millisecond, Volume: 0.08,
			},
			SoundTwah: {
				Wave: synth.WaveSine, Freq: 220, EndFreq: 880,
				Duration: 350 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 120 * time.Millisecond,
				Volume: 0.6,
			},
			SoundGust: {
				Wave: synth.WaveNoise, Duration: 700 * time.Millisecond,
				Attack: 250 * time.Millisecond, Release: 400 * time.Millisecond,
				Volume: 0.4,
			},
			SoundBounce: {
				Wave: synth.WaveTriangle, Freq: 660, EndFreq: 990,
				Duration: 60 * time.Millisecond, Release: 40 * time.Millisecond,
				Volume: 0.3,
			},
			SoundMenuSelect: {
				Wave: synth.WaveSine, Freq: 880,
				Duration: 80 * time.Millisecond, Release: 40 * time.Millisecond,
				Volume: 0.4,
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEmit:  0.5,
			SoundDeath: 1.5,
		},
		Theme: synth.Theme{
			BPM:    132,
			Wave:   synth.WaveSquare,
			Volume: 0.12,
			Lead: []synth.Note{
				{Freq: 329.63, Beats: 0.5}, {Freq: 392.00, Beats: 0.5}, {Freq: 440.00, Beats: 1},
				{Freq: 392.00, Beats: 0.5}, {Freq: 329.63, Beats: 0.5}, {Freq: 293.66, Beats: 1},
				{Freq: 329.63, Beats: 0.5}, {Freq: 392.00, Beats: 0.5}, {Freq: 493.88, Beats: 1},
				{Freq: 440.00, Beats: 1}, {Beats: 1},
			},
			Bass: []synth.Note{
				{Freq: 82.41, Beats: 2}, {Freq: 73.42, Beats: 2},
				{Freq: 82.41, Beats: 2}, {Freq: 110.00, Beats: 2},
			},
		},
	}
}
