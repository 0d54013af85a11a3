package physics

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	ErrNonPositiveMass = errors.New("mass must be positive")
	ErrInvalidRadius   = errors.New("radius must be non-negative")
)

// Particle is a simulated point mass with a lifetime.
type Particle struct {
	Mass          float64
	SecondsToLive float64
	Shape         Shape
	Radius        float64
	Tint          color.RGBA

	state   *LinearDynamicsState
	expired bool
}

// NewParticle returns a particle without a dynamics state. Use math.Inf(1)
// for secondsToLive to make it immortal.
func NewParticle(shape Shape, mass, secondsToLive, radius float64) (*Particle, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("physics: particle: %w (got %v)", ErrNonPositiveMass, mass)
	}
	if radius < 0 {
		return nil, fmt.Errorf("physics: particle: %w (got %v)", ErrInvalidRadius, radius)
	}
	return &Particle{
		Mass:          mass,
		SecondsToLive: secondsToLive,
		Shape:         shape,
		Radius:        radius,
		Tint:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

// Spawn copies the particle's parameters into a new particle with the given
// state and independent clones of p's forces.
func (p *Particle) Spawn(position, velocity Vec3) *Particle {
	c := &Particle{
		Mass:          p.Mass,
		SecondsToLive: p.SecondsToLive,
		Shape:         p.Shape,
		Radius:        p.Radius,
		Tint:          p.Tint,
	}
	c.state = NewLinearDynamicsState(position, velocity)
	c.CloneForcesFrom(p)
	return c
}

func (p *Particle) State() *LinearDynamicsState {
	return p.state
}

// SetState replaces the dynamics state. The particle owns it afterwards.
func (p *Particle) SetState(s *LinearDynamicsState) {
	p.state = s
}

func (p *Particle) Position() (Vec3, bool) {
	if p.state == nil {
		return Zero, false
	}
	return p.state.Position, true
}

func (p *Particle) SetPosition(v Vec3) bool {
	if p.state == nil {
		return false
	}
	p.state.Position = v
	return true
}

func (p *Particle) Translate(offset Vec3) bool {
	if p.state == nil {
		return false
	}
	p.state.Position = p.state.Position.Add(offset)
	return true
}

func (p *Particle) Velocity() (Vec3, bool) {
	if p.state == nil {
		return Zero, false
	}
	return p.state.Velocity, true
}

// AddForce is a no-op until the particle has a state.
func (p *Particle) AddForce(f Force) bool {
	if p.state == nil {
		return false
	}
	p.state.AddForce(f)
	return true
}

func (p *Particle) Forces() []Force {
	if p.state == nil {
		return nil
	}
	return p.state.Forces()
}

func (p *Particle) CloneForcesFrom(src *Particle) {
	if p.state == nil || src == nil {
		return
	}
	p.state.CloneForcesFrom(src.state)
}

// StepAndAge integrates one step and burns dt off the lifetime.
func (p *Particle) StepAndAge(integrator Integrator, dt float64) {
	if p.state != nil {
		p.state.Step(integrator, p.Mass, dt)
	}
	p.SecondsToLive -= dt
}

func (p *Particle) IsExpired() bool {
	return p.expired || p.SecondsToLive <= 0
}

// SetExpired flags the particle independently of its lifetime.
func (p *Particle) SetExpired(expired bool) {
	p.expired = expired
}

func (p *Particle) Immortal() bool {
	return math.IsInf(p.SecondsToLive, 1)
}

func (p *Particle) Render(sink MarkerSink) {
	if p.state == nil || sink == nil {
		return
	}
	sink.DrawMarker(p.state.Position, p.Radius, p.Shape, p.Tint)
}
