package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/laundry-squadron/systems"
	"github.com/automoto/laundry-squadron/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	best         float64
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldStart {
		ms.shouldStart = false
		systems.StartGame(ms.ecs, ms.sceneChanger, ms.createWorldScene)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) createWorldScene() interface{} {
	return NewWorldScene(ms.sceneChanger)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.best = systems.LoadRecord().BestSeconds

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.createWorldScene))

	menuUI, err := ui.NewMenuUI(
		[]ui.MenuItem{
			ui.Static("Play", func() { ms.shouldStart = true }),
			{Label: systems.MuteLabel, OnClick: func() { systems.ToggleMute(ms.ecs) }},
			ui.Static("Quit", func() { os.Exit(0) }),
		},
		[]ui.MenuItem{
			{Label: systems.MusicVolumeLabel, OnClick: func() { systems.CycleMusicVolume(ms.ecs) }},
			{Label: systems.SFXVolumeLabel, OnClick: func() { systems.CycleSFXVolume(ms.ecs) }},
			{Label: systems.FullscreenLabel, OnClick: func() { systems.ToggleFullscreen(ms.ecs) }},
			{Label: systems.ResolutionLabel, OnClick: func() { systems.CycleResolution(ms.ecs) }},
		},
		func() float64 { return ms.best },
	)
	if err != nil {
		log.Fatalf("Failed to build menu: %v", err)
	}
	ms.menuUI = menuUI

	systems.PlayMusic(ms.ecs)
}
