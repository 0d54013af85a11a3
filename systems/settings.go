package systems

import (
	"fmt"

	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// CycleMusicVolume steps the music volume up, wrapping to silence after the
// loudest step, and persists it.
func CycleMusicVolume(e *ecs.ECS) {
	SetMusicVolume(e, nextVolumeStep(globalMusicVolume))
	SaveSettings()
}

// CycleSFXVolume steps the effects volume the same way and plays a sample.
func CycleSFXVolume(e *ecs.ECS) {
	SetSFXVolume(e, nextVolumeStep(globalSFXVolume))
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveSettings()
}

// ToggleFullscreen flips fullscreen and persists it
func ToggleFullscreen(e *ecs.ECS) {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	SaveSettings()
}

// CycleResolution moves to the next window size
func CycleResolution(e *ecs.ECS) {
	n := len(cfg.SettingsMenu.Resolutions)
	if n == 0 {
		return
	}
	currentSettings.ResolutionIndex = (currentSettings.ResolutionIndex + 1) % n
	if !ebiten.IsFullscreen() {
		res := cfg.SettingsMenu.Resolutions[currentSettings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	SaveSettings()
}

func MusicVolumeLabel() string { return "Music " + formatVolume(globalMusicVolume) }
func SFXVolumeLabel() string   { return "Effects " + formatVolume(globalSFXVolume) }

func MuteLabel() string {
	if globalMuted {
		return "Unmute"
	}
	return "Mute"
}

func FullscreenLabel() string {
	if ebiten.IsFullscreen() {
		return "Fullscreen On"
	}
	return "Fullscreen Off"
}

func ResolutionLabel() string {
	i := currentSettings.ResolutionIndex
	if i < 0 || i >= len(cfg.SettingsMenu.Resolutions) {
		return "Window"
	}
	return "Window " + cfg.SettingsMenu.Resolutions[i].Label
}

// nextVolumeStep returns the step after the one closest to current
func nextVolumeStep(current float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	return steps[(findClosestStepIndex(current, steps)+1)%len(steps)]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func formatVolume(volume float64) string {
	return fmt.Sprintf("%d%%", int(volume*100+0.5))
}
