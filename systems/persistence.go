package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// SavedRecord is the longest round survived
type SavedRecord struct {
	BestSeconds float64 `json:"bestSeconds"`
	Rounds      int     `json:"rounds"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// currentSettings mirrors what was last loaded or saved so partial changes
// such as a mute toggle keep the rest of the file intact
var currentSettings = SavedSettings{
	MusicVolume:     cfg.Audio.DefaultMusicVol,
	SFXVolume:       cfg.Audio.DefaultSFXVol,
	ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "laundry-squadron",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadJSON(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	found, err := loadJSON("settings", &settings)
	if !found {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes the current audio and display settings to disk
func SaveSettings() {
	currentSettings.MusicVolume = globalMusicVolume
	currentSettings.SFXVolume = globalSFXVolume
	currentSettings.Muted = globalMuted
	currentSettings.Fullscreen = ebiten.IsFullscreen()
	_ = saveJSON("settings", &currentSettings)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	currentSettings = *saved

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadRecord returns the saved best round, or a zero record
func LoadRecord() SavedRecord {
	var record SavedRecord
	if _, err := loadJSON("record", &record); err != nil {
		return SavedRecord{}
	}
	return record
}

// RecordRound stores a finished round and reports whether it beat the best.
func RecordRound(survived float64) bool {
	record := LoadRecord()
	record.Rounds++
	best := survived > record.BestSeconds
	if best {
		record.BestSeconds = survived
	}
	_ = saveJSON("record", &record)
	return best
}
