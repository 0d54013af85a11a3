package physics

import (
	"fmt"
	"math"
)

// NoCollision is returned by SweptContactTime when the pair does not touch
// within the step.
const NoCollision = -1.0

// Projectile is a ballistic sphere tested with swept collision. It keeps the
// state from before its last update so contact can be solved inside a step.
type Projectile struct {
	Mass      float64
	Radius    float64
	BirthTime float64
	Collided  bool

	state LinearDynamicsState
	prev  LinearDynamicsState
}

func NewProjectile(mass, radius float64, position, velocity Vec3, birthTime float64) (*Projectile, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("physics: projectile: %w (got %v)", ErrNonPositiveMass, mass)
	}
	if radius < 0 {
		return nil, fmt.Errorf("physics: projectile: %w (got %v)", ErrInvalidRadius, radius)
	}
	s := LinearDynamicsState{Position: position, Velocity: velocity}
	return &Projectile{
		Mass:      mass,
		Radius:    radius,
		BirthTime: birthTime,
		state:     s,
		prev:      s,
	}, nil
}

// NewProbe returns a stationary projectile used only as a collision query
// target. Its mass is nominal.
func NewProbe(position Vec3, radius float64) *Projectile {
	s := LinearDynamicsState{Position: position}
	return &Projectile{Mass: 1, Radius: radius, state: s, prev: s}
}

func (p *Projectile) Position() Vec3         { return p.state.Position }
func (p *Projectile) Velocity() Vec3         { return p.state.Velocity }
func (p *Projectile) PreviousPosition() Vec3 { return p.prev.Position }

// Update remembers the current state and moves the projectile along its
// velocity for dt.
func (p *Projectile) Update(dt float64) {
	p.prev = p.state
	p.state.Position = p.state.Position.Add(p.state.Velocity.Mul(dt))
}

func (p *Projectile) rewind() {
	p.state = p.prev
}

func (p *Projectile) Expired(now, maxLifetime float64) bool {
	return p.Collided || now-p.BirthTime > maxLifetime
}

func (p *Projectile) KineticEnergy() float64 {
	v := p.state.Velocity
	return 0.5 * p.Mass * v.Dot(v)
}

// SweptContactTime solves for the earliest fraction t of the last step at
// which a and b were exactly touching. It returns NoCollision when they never
// touch in [0, 1], have no relative motion, or are already moving apart.
func SweptContactTime(a, b *Projectile) float64 {
	x0 := b.prev.Position.Sub(a.prev.Position)
	e := b.state.Position.Sub(a.state.Position).Sub(x0)
	reach := a.Radius + b.Radius

	ee := e.Dot(e)
	if ee == 0 {
		return NoCollision
	}
	x0e := x0.Dot(e)
	if x0e >= 0 {
		return NoCollision
	}

	quarterDisc := x0e*x0e - ee*(x0.Dot(x0)-reach*reach)
	if quarterDisc <= 0 {
		return NoCollision
	}
	root := math.Sqrt(quarterDisc)
	enter := (-x0e - root) / ee
	exit := (-x0e + root) / ee
	if enter > 1 || exit <= 0 {
		return NoCollision
	}
	return math.Max(enter, 0)
}

// CollideAndBounce resolves a contact found inside the last step of length
// dt. Both projectiles are rewound, advanced to the contact instant, given a
// restitution impulse along the line of impact and advanced through the rest
// of the step. It reports whether a contact was resolved.
func CollideAndBounce(a, b *Projectile, restitution, dt float64) bool {
	t := SweptContactTime(a, b)
	if t < 0 {
		return false
	}
	a.Collided = true
	b.Collided = true

	a.rewind()
	b.rewind()
	a.Update(t * dt)
	b.Update(t * dt)

	normal := SafeNormalize(b.state.Position.Sub(a.state.Position))
	if normal != Zero {
		bounce(a, b, normal, restitution)
	}

	rest := (1 - t) * dt
	a.Update(rest)
	b.Update(rest)
	return true
}

// ResolvePairs runs CollideAndBounce over every pair in slice order and
// plays sound once per contact. sounds may be nil. It returns the number of
// contacts.
func ResolvePairs(ps []*Projectile, restitution, dt float64, sounds SoundSink, sound SoundID) int {
	var contacts int
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if !CollideAndBounce(ps[i], ps[j], restitution, dt) {
				continue
			}
			contacts++
			if sounds != nil {
				sounds.PlaySound(sound)
			}
		}
	}
	return contacts
}

func bounce(a, b *Projectile, normal Vec3, restitution float64) {
	va := a.state.Velocity.Dot(normal)
	vb := b.state.Velocity.Dot(normal)
	ma, mb := a.Mass, b.Mass
	total := ma + mb

	momentum := ma*va + mb*vb
	vaAfter := (momentum - mb*restitution*(va-vb)) / total
	vbAfter := (momentum + ma*restitution*(va-vb)) / total

	a.state.Velocity = a.state.Velocity.Add(normal.Mul(vaAfter - va))
	b.state.Velocity = b.state.Velocity.Add(normal.Mul(vbAfter - vb))
}

// Strikes reports whether p swept through a stationary sphere of the given
// radius around particle during its last update.
func (p *Projectile) Strikes(particle *Particle, radius float64) bool {
	pos, ok := particle.Position()
	if !ok {
		return false
	}
	return SweptContactTime(p, NewProbe(pos, radius)) >= 0
}
