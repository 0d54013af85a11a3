package main

import (
	"flag"
	"image"
	"log"
	"slices"

	"github.com/automoto/laundry-squadron/assets"
	"github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/fonts"
	"github.com/automoto/laundry-squadron/scenes"
	"github.com/automoto/laundry-squadron/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the menu and start a round")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Start with the debug overlay on")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding physics tuning")
	flag.StringVar(&config.Debug.Arena, "arena", assets.DefaultArena, "Embedded arena to play")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	names, err := assets.NewLevelLoader().Names()
	if err != nil {
		log.Fatalf("Failed to list arenas: %v", err)
	}
	if !slices.Contains(names, config.Debug.Arena) {
		log.Fatalf("Unknown arena %q, have %v", config.Debug.Arena, names)
	}

	res := config.SettingsMenu.Resolutions[config.SettingsMenu.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
