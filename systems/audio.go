package systems

import (
	"log"
	"sync"

	"github.com/automoto/laundry-squadron/assets"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// MusicTheme is the key of the looping battle theme.
const MusicTheme = "theme"

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Voices {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio processes pending SFX and manages music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	volume := effectiveSFXVolume()
	if volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts the looping theme unless it is already playing
func PlayMusic(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicKey == MusicTheme {
		// Cancel a fade in progress
		if globalFadeTimer > 0 {
			globalFadeTimer = 0
			globalMusicPlayer.SetVolume(effectiveMusicVolume())
		}
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(cfg.Sound.Theme)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = MusicTheme
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = effectiveMusicVolume()
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMuted silences or restores both music and effects.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// ToggleMute flips the mute state and persists it.
func ToggleMute(e *ecs.ECS) {
	SetMuted(e, !globalMuted)
	SaveSettings()
}

func IsMuted() bool {
	return globalMuted
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

func effectiveSFXVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// sfxSink lets the physics core queue sounds through the ECS.
type sfxSink struct {
	ecs *ecs.ECS
}

func (s sfxSink) PlaySound(id cfg.SoundID) {
	PlaySFX(s.ecs, id)
}

// NewSoundSink routes sounds requested by particle systems to the SFX queue
func NewSoundSink(e *ecs.ECS) physics.SoundSink {
	return sfxSink{ecs: e}
}

// PauseMusic pauses the music without losing its position
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic continues paused music
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil && !globalMusicPlayer.IsPlaying() {
		globalMusicPlayer.Play()
	}
}
