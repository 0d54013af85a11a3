package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/laundry-squadron/assets"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/systems"
	"github.com/automoto/laundry-squadron/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is one round of holding the cloth together
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.RoundFinished(ws.ecs) || systems.LeftForMenu(ws.ecs) {
		systems.StopMusic(ws.ecs)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: damage overlay falls back to a flat tint: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so queued sounds play the same tick
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Simulation, frozen while paused
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRound))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCloth))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEmitters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	arena, err := assets.NewLevelLoader().LoadArena(arenaName())
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	clothAt := cfg.Cloth.DefaultOrigin
	if arena.HasCloth {
		clothAt = arena.ClothAt
	}
	spawnerAt := cfg.Projectile.DefaultSpawner
	if arena.HasSpawner {
		spawnerAt = arena.SpawnerAt
	}

	seed := uint64(time.Now().UnixNano())
	factory.CreateCamera(ws.ecs)
	factory.CreateSpace(ws.ecs, clothAt)
	if _, err := factory.CreateCloth(ws.ecs, clothAt); err != nil {
		log.Fatalf("Failed to create cloth: %v", err)
	}
	factory.CreateSpawner(ws.ecs, spawnerAt, seed)
	factory.CreateRound(ws.ecs, systems.LoadRecord().BestSeconds)
	factory.CreateDebug(ws.ecs)

	rng := rand.New(rand.NewPCG(seed, seed>>1))
	sounds := systems.NewSoundSink(ws.ecs)
	for _, placement := range arena.Emitters {
		if _, err := factory.CreateEmitter(ws.ecs, placement, rng, sounds); err != nil {
			log.Printf("Warning: skipping emitter: %v", err)
		}
	}

	systems.PlaySFX(ws.ecs, cfg.SoundStart)
	systems.PlayMusic(ws.ecs)
}

func arenaName() string {
	if cfg.Debug.Arena != "" {
		return cfg.Debug.Arena
	}
	return assets.DefaultArena
}
