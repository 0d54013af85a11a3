package config

import (
	"image/color"
	"math"

	"github.com/automoto/laundry-squadron/physics"
)

// ClothConfig contains the cloth grid and how the player steers it
type ClothConfig struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	ParticleMass   float64 `yaml:"particle_mass"`
	ParticleRadius float64 `yaml:"particle_radius"`
	Iterations     int     `yaml:"iterations"`
	BaseDistance   float64 `yaml:"base_distance"`
	ShearRatio     float64 `yaml:"shear_ratio"`
	BendRatio      float64 `yaml:"bend_ratio"`
	Stiffness      float64 `yaml:"stiffness"`

	// Used when the arena has no cloth object
	DefaultOrigin physics.Vec3 `yaml:"default_origin"`

	// Movement
	MoveSpeed      float64 `yaml:"move_speed"`      // units per second along the camera's left axis
	FastMultiplier float64 `yaml:"fast_multiplier"` // applied while Fast is held
	MaxDriftX      float64 `yaml:"max_drift_x"`     // clamp around the original top-left

	// Visual
	MarkerTint       color.RGBA                            `yaml:"-"`
	ConstraintColors map[physics.ConstraintKind]color.RGBA `yaml:"-"`
	ShowConstraints  map[physics.ConstraintKind]bool       `yaml:"-"`
}

// ProjectileConfig contains the spawner and projectile parameters
type ProjectileConfig struct {
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`    // along -Y
	SpreadX     float64 `yaml:"spread_x"` // uniform in [-SpreadX, SpreadX]
	SpreadZ     float64 `yaml:"spread_z"`
	Restitution float64 `yaml:"restitution"`
	MaxLifetime float64 `yaml:"max_lifetime"` // seconds of simulation time
	ProbeRadius float64 `yaml:"probe_radius"` // radius of the query against cloth particles

	// Spawn cadence follows 1D value noise of elapsed time
	MaxSpawnInterval float64 `yaml:"max_spawn_interval"`
	NoiseFrequency   float64 `yaml:"noise_frequency"`

	DefaultSpawner physics.Vec3 `yaml:"default_spawner"`
	Tint           color.RGBA   `yaml:"-"`
}

// ForcesConfig contains the magnitudes the game applies to the cloth
type ForcesConfig struct {
	GameOverGravity float64 `yaml:"game_over_gravity"`

	GustMagnitude  float64 `yaml:"gust_magnitude"`
	GustDampedness float64 `yaml:"gust_dampedness"`
	GustEvery      int     `yaml:"gust_every"`    // projectiles spawned per available gust
	GustCooldown   float64 `yaml:"gust_cooldown"` // seconds between gusts
	KeepGravity    bool    `yaml:"keep_gravity"`  // whether a gust leaves gravity in place

	DebrisBelowGroundScale float64 `yaml:"debris_below_ground_scale"`
	DebrisFallingScale     float64 `yaml:"debris_falling_scale"`
}

// EmitterKindConfig describes one decorative particle system kind
type EmitterKindConfig struct {
	Shape          physics.Shape `yaml:"-"`
	Tint           color.RGBA    `yaml:"-"`
	ParticleMass   float64       `yaml:"particle_mass"`
	ParticleRadius float64       `yaml:"particle_radius"`
	MuzzleSpeed    float64       `yaml:"muzzle_speed"`

	MinDegreesDownFromUp    float64 `yaml:"min_degrees_down_from_up"`
	MaxDegreesDownFromUp    float64 `yaml:"max_degrees_down_from_up"`
	MinDegreesLeftFromNorth float64 `yaml:"min_degrees_left_from_north"`
	MaxDegreesLeftFromNorth float64 `yaml:"max_degrees_left_from_north"`

	SecondsBetweenEmits float64      `yaml:"seconds_between_emits"`
	SecondsBeforeExpire float64      `yaml:"seconds_before_expire"`
	MaxParticles        int          `yaml:"max_particles"`
	BatchSize           int          `yaml:"batch_size"`
	MaxOffset           physics.Vec3 `yaml:"max_offset"`

	// Force parameters; which ones apply depends on the kind
	ForceMagnitude float64 `yaml:"force_magnitude"`
	Stiffness      float64 `yaml:"stiffness"`
	Dampedness     float64 `yaml:"dampedness"`
}

// Template builds the physics emitter configuration at the given position.
func (k EmitterKindConfig) Template(position physics.Vec3) physics.EmitterConfig {
	return physics.EmitterConfig{
		Position:                position,
		Shape:                   k.Shape,
		ParticleMass:            k.ParticleMass,
		ParticleRadius:          k.ParticleRadius,
		Tint:                    k.Tint,
		MuzzleSpeed:             k.MuzzleSpeed,
		MinDegreesDownFromUp:    k.MinDegreesDownFromUp,
		MaxDegreesDownFromUp:    k.MaxDegreesDownFromUp,
		MinDegreesLeftFromNorth: k.MinDegreesLeftFromNorth,
		MaxDegreesLeftFromNorth: k.MaxDegreesLeftFromNorth,
		SecondsBetweenEmits:     k.SecondsBetweenEmits,
		SecondsBeforeExpire:     k.SecondsBeforeExpire,
		MaxParticles:            k.MaxParticles,
		BatchSize:               k.BatchSize,
		MaxOffset:               k.MaxOffset,
		Integrator:              physics.VelocityVerlet,
		EmitSound:               SoundEmit,
	}
}

// Emitter kinds as named by the arena's "kind" property
const (
	EmitterSparks = "sparks"
	EmitterVortex = "vortex"
	EmitterSpring = "spring"
)

// GameConfig contains round rules
type GameConfig struct {
	GameOverFraction  float64 `yaml:"game_over_fraction"` // constraint fraction below which the round ends
	DamageOverlayBase float64 `yaml:"damage_overlay_base"`
	DamageOverlaySpan float64 `yaml:"damage_overlay_span"`
	FadeSeconds       float64 `yaml:"fade_seconds"`      // game over overlay fade in
	HitFlashSeconds   float64 `yaml:"hit_flash_seconds"` // cloth flash after a hit
	OverlayTitle      string  `yaml:"-"`
	ContinueHint      string  `yaml:"-"`
}

// Camera3DConfig contains the 3D camera defaults
type Camera3DConfig struct {
	Position         physics.Vec3 `yaml:"position"`
	YawDegrees       float64      `yaml:"yaw_degrees"`
	PitchDegrees     float64      `yaml:"pitch_degrees"`
	FovDegrees       float64      `yaml:"fov_degrees"`
	Near             float64      `yaml:"near"`
	Far              float64      `yaml:"far"`
	MaxPitch         float64      `yaml:"max_pitch"`
	FlySpeed         float64      `yaml:"fly_speed"`
	MouseSensitivity float64      `yaml:"mouse_sensitivity"` // degrees per pixel
}

// HUDConfig contains overlay layout and colors
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	TextColor       color.RGBA
	HintColor       color.RGBA
	OverlayColor    color.RGBA
	DamageTint      color.RGBA
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	MinMarkerPixels float64
}

// BroadphaseConfig sizes the spatial grid on the cloth's XZ plane
type BroadphaseConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
}

// PauseConfig contains pause overlay layout
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Cloth ClothConfig
var Projectile ProjectileConfig
var Forces ForcesConfig
var Emitters map[string]EmitterKindConfig
var Game GameConfig
var Camera3D Camera3DConfig
var HUD HUDConfig
var Broadphase BroadphaseConfig
var Menu MenuConfig
var Pause PauseConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	Overlay    bool   // Start with the debug overlay on
	TuningPath string // Optional YAML overrides
	Arena      string // Embedded level to play instead of the default
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Linen        = color.RGBA{R: 235, G: 225, B: 205, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Laundry Squadron",
	}

	Cloth = ClothConfig{
		Rows:           10,
		Cols:           10,
		ParticleMass:   1,
		ParticleRadius: 0.01,
		Iterations:     5,
		BaseDistance:   1,
		ShearRatio:     math.Sqrt2,
		BendRatio:      2 * math.Sqrt2,
		Stiffness:      0.5,

		DefaultOrigin: physics.Vec3{140, 20, 100},

		MoveSpeed:      4.5,
		FastMultiplier: 8,
		MaxDriftX:      16,

		MarkerTint: Linen,
		ConstraintColors: map[physics.ConstraintKind]color.RGBA{
			physics.Structural: Linen,
			physics.Shear:      LightBlue,
			physics.Bend:       Purple,
		},
		ShowConstraints: map[physics.ConstraintKind]bool{
			physics.Structural: true,
			physics.Shear:      false,
			physics.Bend:       false,
		},
	}

	Projectile = ProjectileConfig{
		Mass:        1,
		Radius:      0.5,
		Speed:       10,
		SpreadX:     2,
		SpreadZ:     1.5,
		Restitution: 1,
		MaxLifetime: 15,
		ProbeRadius: 0.1,

		MaxSpawnInterval: 0.5,
		NoiseFrequency:   0.7,

		DefaultSpawner: physics.Vec3{144, 100, 96},
		Tint:           BrightOrange,
	}

	Forces = ForcesConfig{
		GameOverGravity: 100,

		GustMagnitude:  6,
		GustDampedness: 0.8,
		GustEvery:      10,
		GustCooldown:   3,
		KeepGravity:    true,

		DebrisBelowGroundScale: physics.DefaultBelowGroundScale,
		DebrisFallingScale:     physics.DefaultFallingScale,
	}

	Emitters = map[string]EmitterKindConfig{
		EmitterSparks: {
			Shape:                   physics.ShapeBox,
			Tint:                    Orange,
			ParticleMass:            0.2,
			ParticleRadius:          0.08,
			MuzzleSpeed:             7,
			MinDegreesDownFromUp:    0,
			MaxDegreesDownFromUp:    35,
			MinDegreesLeftFromNorth: 0,
			MaxDegreesLeftFromNorth: 360,
			SecondsBetweenEmits:     0.4,
			SecondsBeforeExpire:     4,
			MaxParticles:            60,
			BatchSize:               6,
			MaxOffset:               physics.Vec3{0.3, 0.3, 0},
			ForceMagnitude:          physics.StandardGravity / 4, // scaled by height above the floor
		},
		EmitterVortex: {
			Shape:                   physics.ShapeSphere,
			Tint:                    Magenta,
			ParticleMass:            0.5,
			ParticleRadius:          0.1,
			MuzzleSpeed:             4,
			MinDegreesDownFromUp:    60,
			MaxDegreesDownFromUp:    120,
			MinDegreesLeftFromNorth: 0,
			MaxDegreesLeftFromNorth: 360,
			SecondsBetweenEmits:     0.25,
			SecondsBeforeExpire:     6,
			MaxParticles:            48,
			BatchSize:               4,
			MaxOffset:               physics.Vec3{0.5, 0.5, 0.5},
			ForceMagnitude:          1.5,
			Dampedness:              0.6,
		},
		EmitterSpring: {
			Shape:                   physics.ShapeSphere,
			Tint:                    LightGreen,
			ParticleMass:            0.5,
			ParticleRadius:          0.12,
			MuzzleSpeed:             5,
			MinDegreesDownFromUp:    20,
			MaxDegreesDownFromUp:    70,
			MinDegreesLeftFromNorth: 0,
			MaxDegreesLeftFromNorth: 360,
			SecondsBetweenEmits:     0.5,
			SecondsBeforeExpire:     5,
			MaxParticles:            30,
			BatchSize:               3,
			MaxOffset:               physics.Vec3{0.2, 0.2, 0.2},
			ForceMagnitude:          1,
			Stiffness:               4,
			Dampedness:              0.4,
		},
	}

	Game = GameConfig{
		GameOverFraction:  0.9,
		DamageOverlayBase: 0.5,
		DamageOverlaySpan: 0.2,
		FadeSeconds:       1.5,
		HitFlashSeconds:   0.25,
		OverlayTitle:      "Great Job.",
		ContinueHint:      "Press ENTER to continue",
	}

	Camera3D = Camera3DConfig{
		Position:         physics.Vec3{144, -10, 96},
		YawDegrees:       90,
		PitchDegrees:     0,
		FovDegrees:       50,
		Near:             0.1,
		Far:              1000,
		MaxPitch:         89.9,
		FlySpeed:         12,
		MouseSensitivity: 0.15,
	}

	HUD = HUDConfig{
		Margin:          8,
		LineHeight:      16,
		TextColor:       White,
		HintColor:       color.RGBA{R: 180, G: 180, B: 180, A: 255},
		OverlayColor:    BlackOverlay,
		DamageTint:      LightRed,
		BackgroundColor: color.RGBA{R: 24, G: 28, B: 40, A: 255},
		GroundColor:     color.RGBA{R: 50, G: 56, B: 72, A: 255},
		MinMarkerPixels: 1.5,
	}

	Broadphase = BroadphaseConfig{
		Width:    320,
		Height:   200,
		CellSize: 2,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		MenuOptions:       []string{"Resume", "Restart", "Main Menu"},
		MenuItemHeight:    20,
		MenuItemGap:       10,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      Linen,
		TextColor:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		Title:           "LAUNDRY SQUADRON",
	}
}
