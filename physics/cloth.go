package physics

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCloth = errors.New("invalid cloth configuration")

// ConstraintKind classifies a cloth constraint by grid topology.
type ConstraintKind int

const (
	Structural ConstraintKind = iota
	Shear
	Bend
)

func (k ConstraintKind) String() string {
	switch k {
	case Shear:
		return "shear"
	case Bend:
		return "bend"
	default:
		return "structural"
	}
}

// ClothConstraint keeps two particles, addressed by flat grid index, near
// RestDistance apart.
type ClothConstraint struct {
	Kind         ConstraintKind
	A, B         int
	RestDistance float64
}

// ClothState tracks the lifecycle of a cloth.
type ClothState int

const (
	ClothConstructed ClothState = iota
	ClothSimulating
	ClothDamaged
	ClothDestroyed
)

func (s ClothState) String() string {
	switch s {
	case ClothSimulating:
		return "simulating"
	case ClothDamaged:
		return "damaged"
	case ClothDestroyed:
		return "destroyed"
	default:
		return "constructed"
	}
}

type ClothConfig struct {
	Origin     Vec3 // top-left particle
	ColumnAxis Vec3 // zero means +X
	RowAxis    Vec3 // zero means -Up

	Rows, Cols     int
	ParticleMass   float64
	ParticleRadius float64
	Shape          Shape

	Iterations   int
	BaseDistance float64
	ShearRatio   float64
	BendRatio    float64
	// Stiffness scales each correction, in (0, 1]. Zero means 1.
	Stiffness float64

	InitialVelocity Vec3
	Integrator      Integrator
}

// Cloth is a grid of particles held together by distance constraints.
// Particles live in a fixed row-major arena; a removed particle leaves a nil
// slot so constraint indices stay stable.
type Cloth struct {
	rows, cols  int
	iterations  int
	stiffness   float64
	integrator  Integrator
	particles   []*Particle
	constraints []ClothConstraint

	initialConstraints int
	originalTopLeft    Vec3
	state              ClothState
}

func NewCloth(cfg ClothConfig) (*Cloth, error) {
	if err := validateCloth(cfg); err != nil {
		return nil, err
	}

	colAxis := SafeNormalize(cfg.ColumnAxis)
	if colAxis == Zero {
		colAxis = UnitX
	}
	rowAxis := SafeNormalize(cfg.RowAxis)
	if rowAxis == Zero {
		rowAxis = Up.Mul(-1)
	}
	stiffness := cfg.Stiffness
	if stiffness == 0 {
		stiffness = 1
	}

	c := &Cloth{
		rows:            cfg.Rows,
		cols:            cfg.Cols,
		iterations:      cfg.Iterations,
		stiffness:       stiffness,
		integrator:      cfg.Integrator,
		particles:       make([]*Particle, cfg.Rows*cfg.Cols),
		originalTopLeft: cfg.Origin,
	}

	for r := 0; r < cfg.Rows; r++ {
		for col := 0; col < cfg.Cols; col++ {
			p, err := NewParticle(cfg.Shape, cfg.ParticleMass, math.Inf(1), cfg.ParticleRadius)
			if err != nil {
				return nil, fmt.Errorf("physics: cloth particle (%d,%d): %w", r, col, err)
			}
			pos := cfg.Origin.
				Add(colAxis.Mul(float64(col) * cfg.BaseDistance)).
				Add(rowAxis.Mul(float64(r) * cfg.BaseDistance))
			p.SetState(NewLinearDynamicsState(pos, cfg.InitialVelocity))
			c.particles[c.index(r, col)] = p
		}
	}

	c.link(Structural, cfg.BaseDistance, [][2]int{{0, 1}, {1, 0}})
	c.link(Shear, cfg.BaseDistance*cfg.ShearRatio, [][2]int{{1, 1}, {1, -1}})
	c.link(Bend, cfg.BaseDistance*cfg.BendRatio, [][2]int{{2, 2}, {2, -2}})
	c.initialConstraints = len(c.constraints)

	return c, nil
}

func validateCloth(cfg ClothConfig) error {
	switch {
	case cfg.Rows <= 0 || cfg.Cols <= 0:
		return fmt.Errorf("physics: %w: grid %dx%d", ErrInvalidCloth, cfg.Rows, cfg.Cols)
	case cfg.Iterations < 0:
		return fmt.Errorf("physics: %w: %d iterations", ErrInvalidCloth, cfg.Iterations)
	case !(cfg.BaseDistance > 0):
		return fmt.Errorf("physics: %w: base distance %v", ErrInvalidCloth, cfg.BaseDistance)
	case !(cfg.ShearRatio > 0) || !(cfg.BendRatio > 0):
		return fmt.Errorf("physics: %w: ratios shear=%v bend=%v", ErrInvalidCloth, cfg.ShearRatio, cfg.BendRatio)
	case cfg.Stiffness < 0 || cfg.Stiffness > 1:
		return fmt.Errorf("physics: %w: stiffness %v", ErrInvalidCloth, cfg.Stiffness)
	case !(cfg.ParticleMass > 0):
		return fmt.Errorf("physics: cloth: %w (got %v)", ErrNonPositiveMass, cfg.ParticleMass)
	}
	return nil
}

// link adds one constraint per unordered neighbour pair for each offset.
func (c *Cloth) link(kind ConstraintKind, rest float64, offsets [][2]int) {
	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			for _, off := range offsets {
				nr, nc := r+off[0], col+off[1]
				if !c.inBounds(nr, nc) {
					continue
				}
				c.constraints = append(c.constraints, ClothConstraint{
					Kind:         kind,
					A:            c.index(r, col),
					B:            c.index(nr, nc),
					RestDistance: rest,
				})
			}
		}
	}
}

func (c *Cloth) index(row, col int) int {
	return row*c.cols + col
}

func (c *Cloth) inBounds(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < c.cols
}

func (c *Cloth) Rows() int { return c.rows }
func (c *Cloth) Cols() int { return c.cols }

func (c *Cloth) State() ClothState { return c.state }

// Particle returns the live particle at (row, col). It reports false when
// the cell is out of range or its particle was removed.
func (c *Cloth) Particle(row, col int) (*Particle, bool) {
	if !c.inBounds(row, col) {
		return nil, false
	}
	return c.ParticleAt(c.index(row, col))
}

func (c *Cloth) ParticleAt(index int) (*Particle, bool) {
	if index < 0 || index >= len(c.particles) {
		return nil, false
	}
	p := c.particles[index]
	return p, p != nil
}

// LiveParticles calls fn for every particle still in the grid.
func (c *Cloth) LiveParticles(fn func(index int, p *Particle)) {
	for i, p := range c.particles {
		if p != nil {
			fn(i, p)
		}
	}
}

func (c *Cloth) LiveCount() int {
	n := 0
	for _, p := range c.particles {
		if p != nil {
			n++
		}
	}
	return n
}

// Update prunes expired particles, steps every live particle, then relaxes
// the constraints.
func (c *Cloth) Update(dt float64) {
	if c.state == ClothDestroyed {
		return
	}
	if c.state == ClothConstructed {
		c.state = ClothSimulating
	}

	c.pruneExpired()
	for _, p := range c.particles {
		if p != nil {
			p.StepAndAge(c.integrator, dt)
		}
	}
	c.SatisfyConstraints()
}

// SatisfyConstraints runs the configured number of relaxation passes.
func (c *Cloth) SatisfyConstraints() {
	for i := 0; i < c.iterations; i++ {
		c.Relax()
	}
}

// Relax visits every constraint once, splitting each correction evenly
// between its two particles regardless of their masses.
func (c *Cloth) Relax() {
	for _, k := range c.constraints {
		a, okA := c.ParticleAt(k.A)
		b, okB := c.ParticleAt(k.B)
		if !okA || !okB || a.state == nil || b.state == nil {
			continue
		}

		delta := b.state.Position.Sub(a.state.Position)
		dist := delta.Len()
		if dist == 0 || dist == k.RestDistance {
			continue
		}

		half := delta.Mul(c.stiffness * 0.5 * (dist - k.RestDistance) / dist)
		a.state.Position = a.state.Position.Add(half)
		b.state.Position = b.state.Position.Sub(half)
	}
}

func (c *Cloth) pruneExpired() {
	for i, p := range c.particles {
		if p != nil && p.IsExpired() {
			c.removeAt(i)
		}
	}
}

// RemoveParticle drops the particle at (row, col) along with its constraints.
func (c *Cloth) RemoveParticle(row, col int) bool {
	if _, ok := c.Particle(row, col); !ok {
		return false
	}
	c.removeAt(c.index(row, col))
	return true
}

func (c *Cloth) removeAt(index int) {
	c.RemoveConstraintsOf(index)
	c.particles[index] = nil
	c.markDamaged()
}

// RemoveConstraintsOf drops every constraint that references index and
// returns how many were removed.
func (c *Cloth) RemoveConstraintsOf(index int) int {
	kept := c.constraints[:0]
	for _, k := range c.constraints {
		if k.A != index && k.B != index {
			kept = append(kept, k)
		}
	}
	removed := len(c.constraints) - len(kept)
	c.constraints = kept
	if removed > 0 {
		c.markDamaged()
	}
	return removed
}

// RemoveAllConstraints leaves every particle in free flight.
func (c *Cloth) RemoveAllConstraints() {
	if len(c.constraints) > 0 {
		c.markDamaged()
	}
	c.constraints = nil
}

func (c *Cloth) markDamaged() {
	if c.LiveCount() == 0 {
		c.state = ClothDestroyed
		return
	}
	if c.state != ClothDestroyed {
		c.state = ClothDamaged
	}
}

// MoveByOffset translates every live particle.
func (c *Cloth) MoveByOffset(offset Vec3) {
	for _, p := range c.particles {
		if p != nil {
			p.Translate(offset)
		}
	}
}

// AddForce gives every live particle its own clone of f.
func (c *Cloth) AddForce(f Force) {
	for _, p := range c.particles {
		if p != nil {
			p.AddForce(f.Clone())
		}
	}
}

// ResetForces clears particle forces, optionally keeping gravity.
func (c *Cloth) ResetForces(keepGravity bool) {
	for _, p := range c.particles {
		if p == nil || p.state == nil {
			continue
		}
		if !keepGravity {
			p.state.ResetForces()
			continue
		}
		p.state.RemoveForces(func(f Force) bool {
			_, isGravity := f.(*GravityForce)
			return !isGravity
		})
	}
}

func (c *Cloth) OriginalTopLeft() Vec3 {
	return c.originalTopLeft
}

// CurrentTopLeft is the position of the first live particle in row-major
// order.
func (c *Cloth) CurrentTopLeft() (Vec3, bool) {
	for _, p := range c.particles {
		if p != nil {
			return p.Position()
		}
	}
	return Zero, false
}

func (c *Cloth) IsDead() bool {
	return c.LiveCount() == 0
}

func (c *Cloth) ConstraintCount() int {
	return len(c.constraints)
}

func (c *Cloth) InitialConstraintCount() int {
	return c.initialConstraints
}

// ConstraintsLeftFraction is the share of constraints remaining, in [0, 1].
func (c *Cloth) ConstraintsLeftFraction() float64 {
	if c.initialConstraints == 0 {
		return 1
	}
	return float64(len(c.constraints)) / float64(c.initialConstraints)
}

func (c *Cloth) Constraints() []ClothConstraint {
	out := make([]ClothConstraint, len(c.constraints))
	copy(out, c.constraints)
	return out
}

// EachConstraintSegment reports the endpoints of every constraint whose
// particles are both live.
func (c *Cloth) EachConstraintSegment(fn func(kind ConstraintKind, a, b Vec3)) {
	for _, k := range c.constraints {
		pa, okA := c.ParticleAt(k.A)
		pb, okB := c.ParticleAt(k.B)
		if !okA || !okB {
			continue
		}
		a, okA := pa.Position()
		b, okB := pb.Position()
		if okA && okB {
			fn(k.Kind, a, b)
		}
	}
}

func (c *Cloth) Render(sink MarkerSink) {
	for _, p := range c.particles {
		if p != nil {
			p.Render(sink)
		}
	}
}
