package physics

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
)

var ErrBatchExceedsCap = errors.New("batch size exceeds particle cap")

type EmitterConfig struct {
	Position       Vec3
	Shape          Shape
	ParticleMass   float64
	ParticleRadius float64
	Tint           color.RGBA
	MuzzleSpeed    float64

	MinDegreesDownFromUp    float64
	MaxDegreesDownFromUp    float64
	MinDegreesLeftFromNorth float64
	MaxDegreesLeftFromNorth float64

	SecondsBetweenEmits float64
	SecondsBeforeExpire float64
	MaxParticles        int
	BatchSize           int
	MaxOffset           Vec3

	Integrator Integrator
	EmitSound  SoundID
}

// ParticleSystem emits batches of particles from a template on a fixed
// cadence and keeps at most MaxParticles alive.
type ParticleSystem struct {
	cfg      EmitterConfig
	template *Particle
	live     []*Particle
	rng      *rand.Rand
	sounds   SoundSink

	secondsSinceLastEmit float64
}

// NewParticleSystem validates cfg and returns an idle emitter. The first
// emission happens on the first update once the interval has elapsed. sounds
// may be nil.
func NewParticleSystem(cfg EmitterConfig, rng *rand.Rand, sounds SoundSink) (*ParticleSystem, error) {
	if cfg.BatchSize < 1 {
		return nil, fmt.Errorf("physics: emitter batch size %d must be at least 1", cfg.BatchSize)
	}
	if cfg.BatchSize > cfg.MaxParticles {
		return nil, fmt.Errorf("physics: emitter: %w (%d > %d)", ErrBatchExceedsCap, cfg.BatchSize, cfg.MaxParticles)
	}
	template, err := NewParticle(cfg.Shape, cfg.ParticleMass, cfg.SecondsBeforeExpire, cfg.ParticleRadius)
	if err != nil {
		return nil, fmt.Errorf("physics: emitter template: %w", err)
	}
	template.Tint = cfg.Tint
	template.SetState(NewLinearDynamicsState(cfg.Position, Zero))

	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	return &ParticleSystem{
		cfg:      cfg,
		template: template,
		live:     make([]*Particle, 0, cfg.MaxParticles),
		rng:      rng,
		sounds:   sounds,
	}, nil
}

func (ps *ParticleSystem) Config() EmitterConfig {
	return ps.cfg
}

// AddForce adds f to the template. Every later emission gets its own clone.
func (ps *ParticleSystem) AddForce(f Force) {
	ps.template.AddForce(f)
}

func (ps *ParticleSystem) Count() int {
	return len(ps.live)
}

// Particles returns the live particles, oldest first.
func (ps *ParticleSystem) Particles() []*Particle {
	out := make([]*Particle, len(ps.live))
	copy(out, ps.live)
	return out
}

func (ps *ParticleSystem) SecondsUntilNextEmit() float64 {
	left := ps.cfg.SecondsBetweenEmits - ps.secondsSinceLastEmit
	if left < 0 {
		return 0
	}
	return left
}

// UpdateParticles ages and steps the live particles, drops the expired ones
// and emits a batch when the interval has elapsed.
func (ps *ParticleSystem) UpdateParticles(dt float64) {
	for _, p := range ps.live {
		p.StepAndAge(ps.cfg.Integrator, dt)
	}
	ps.dropExpired()
	ps.emit(dt)
}

func (ps *ParticleSystem) dropExpired() {
	kept := ps.live[:0]
	for _, p := range ps.live {
		if !p.IsExpired() {
			kept = append(kept, p)
		}
	}
	clear(ps.live[len(kept):])
	ps.live = kept
}

func (ps *ParticleSystem) emit(dt float64) {
	if ps.secondsSinceLastEmit < ps.cfg.SecondsBetweenEmits {
		ps.secondsSinceLastEmit += dt
		return
	}
	ps.secondsSinceLastEmit = 0

	// Oldest first out.
	if overflow := len(ps.live) + ps.cfg.BatchSize - ps.cfg.MaxParticles; overflow > 0 {
		n := copy(ps.live, ps.live[overflow:])
		clear(ps.live[n:])
		ps.live = ps.live[:n]
	}

	for i := 0; i < ps.cfg.BatchSize; i++ {
		ps.live = append(ps.live, ps.template.Spawn(ps.jitteredPosition(), ps.muzzleVelocity()))
	}

	if ps.sounds != nil {
		ps.sounds.PlaySound(ps.cfg.EmitSound)
	}
}

func (ps *ParticleSystem) jitteredPosition() Vec3 {
	off := ps.cfg.MaxOffset
	return ps.cfg.Position.Add(Vec3{
		off[0] * ps.symmetric(),
		off[1] * ps.symmetric(),
		off[2] * ps.symmetric(),
	})
}

func (ps *ParticleSystem) muzzleVelocity() Vec3 {
	theta := ps.between(ps.cfg.MinDegreesDownFromUp, ps.cfg.MaxDegreesDownFromUp)
	phi := ps.between(ps.cfg.MinDegreesLeftFromNorth, ps.cfg.MaxDegreesLeftFromNorth)
	return FromSpherical(ps.cfg.MuzzleSpeed, theta, phi)
}

func (ps *ParticleSystem) symmetric() float64 {
	return ps.rng.Float64()*2 - 1
}

func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + (hi-lo)*ps.rng.Float64()
}

func (ps *ParticleSystem) Render(sink MarkerSink) {
	for _, p := range ps.live {
		p.Render(sink)
	}
}
