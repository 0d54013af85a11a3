package physics

import (
	"errors"
	"math"
	"testing"
)

func testClothConfig(rows, cols int) ClothConfig {
	return ClothConfig{
		Origin:         Vec3{140, 20, 100},
		Rows:           rows,
		Cols:           cols,
		ParticleMass:   1,
		ParticleRadius: 0.01,
		Iterations:     5,
		BaseDistance:   1,
		ShearRatio:     math.Sqrt2,
		BendRatio:      2 * math.Sqrt2,
	}
}

// pair builds a 1x2 cloth, which has exactly one structural constraint.
func pair(t *testing.T, stiffness float64) *Cloth {
	t.Helper()
	cfg := testClothConfig(1, 2)
	cfg.Stiffness = stiffness
	cfg.Iterations = 1
	c, err := NewCloth(cfg)
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	if n := c.ConstraintCount(); n != 1 {
		t.Fatalf("1x2 cloth has %d constraints, want 1", n)
	}
	return c
}

func positions(t *testing.T, c *Cloth) (Vec3, Vec3) {
	t.Helper()
	a, _ := c.Particle(0, 0)
	b, _ := c.Particle(0, 1)
	pa, _ := a.Position()
	pb, _ := b.Position()
	return pa, pb
}

func TestClothConstraintCounts(t *testing.T) {
	c, err := NewCloth(testClothConfig(10, 10))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}

	counts := map[ConstraintKind]int{}
	for _, k := range c.Constraints() {
		counts[k.Kind]++
	}
	// Structural: 2*r*(c-1). Shear: 2*(r-1)*(c-1). Bend: 2*(r-2)*(c-2).
	want := map[ConstraintKind]int{Structural: 180, Shear: 162, Bend: 128}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%v constraints = %d, want %d", kind, counts[kind], n)
		}
	}
	if c.ConstraintsLeftFraction() != 1 {
		t.Errorf("fresh cloth fraction = %v, want 1", c.ConstraintsLeftFraction())
	}
	if c.State() != ClothConstructed {
		t.Errorf("state = %v, want constructed", c.State())
	}
}

func TestClothLayout(t *testing.T) {
	c, err := NewCloth(testClothConfig(3, 4))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	p, ok := c.Particle(2, 3)
	if !ok {
		t.Fatal("particle (2,3) missing")
	}
	got, _ := p.Position()
	if want := (Vec3{143, 20, 98}); !nearVec(got, want, eps) {
		t.Fatalf("particle (2,3) at %v, want %v", got, want)
	}
	if tl, _ := c.CurrentTopLeft(); tl != c.OriginalTopLeft() {
		t.Fatalf("top-left %v differs from origin %v", tl, c.OriginalTopLeft())
	}
}

func TestClothRestingGridIsUnchangedBySolver(t *testing.T) {
	c, err := NewCloth(testClothConfig(6, 6))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	before := map[int]Vec3{}
	c.LiveParticles(func(i int, p *Particle) {
		before[i], _ = p.Position()
	})

	c.SatisfyConstraints()

	c.LiveParticles(func(i int, p *Particle) {
		got, _ := p.Position()
		if !nearVec(got, before[i], 1e-9) {
			t.Fatalf("particle %d moved from %v to %v", i, before[i], got)
		}
	})
}

func TestRelaxAtRestIsIdempotent(t *testing.T) {
	c := pair(t, 1)
	a0, b0 := positions(t, c)
	c.Relax()
	a1, b1 := positions(t, c)
	if a0 != a1 || b0 != b1 {
		t.Fatalf("satisfied constraint moved particles: %v,%v -> %v,%v", a0, b0, a1, b1)
	}
}

func TestRelaxStretchedConstraintConverges(t *testing.T) {
	c := pair(t, 0.5)
	b, _ := c.Particle(0, 1)
	a0, _ := positions(t, c)
	b.SetPosition(a0.Add(Vec3{2, 0, 0}))
	a0, b0 := positions(t, c)

	c.Relax()
	a1, b1 := positions(t, c)

	moveA := Distance(a0, a1)
	moveB := Distance(b0, b1)
	if !near(moveA, moveB, 1e-12) {
		t.Fatalf("asymmetric correction: %v vs %v", moveA, moveB)
	}
	d := Distance(a1, b1)
	if !(d > 1 && d < 2) {
		t.Fatalf("distance after one pass = %v, want strictly between 1 and 2", d)
	}
	if a1.X() <= a0.X() || b1.X() >= b0.X() {
		t.Fatalf("particles did not move toward each other: %v->%v, %v->%v", a0, a1, b0, b1)
	}

	for i := 0; i < 200; i++ {
		c.Relax()
	}
	a, b2 := positions(t, c)
	if d := Distance(a, b2); !near(d, 1, 1e-9) {
		t.Fatalf("distance after many passes = %v, want 1", d)
	}
}

func TestRelaxFullStiffnessSatisfiesInOnePass(t *testing.T) {
	c := pair(t, 1)
	b, _ := c.Particle(0, 1)
	a0, _ := positions(t, c)
	b.SetPosition(a0.Add(Vec3{3, 0, 0}))

	c.Relax()
	a, b1 := positions(t, c)
	if d := Distance(a, b1); !near(d, 1, 1e-12) {
		t.Fatalf("distance = %v, want 1", d)
	}
}

func TestRelaxSkipsCoincidentParticles(t *testing.T) {
	c := pair(t, 1)
	a, _ := c.Particle(0, 0)
	b, _ := c.Particle(0, 1)
	pa, _ := a.Position()
	b.SetPosition(pa)

	c.Relax()

	pb, _ := b.Position()
	if pb != pa || !IsFinite(pb) {
		t.Fatalf("coincident pair changed: %v vs %v", pa, pb)
	}
}

func TestParticleOutOfRange(t *testing.T) {
	c, err := NewCloth(testClothConfig(2, 3))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {100, 100}} {
		if p, ok := c.Particle(rc[0], rc[1]); ok || p != nil {
			t.Errorf("Particle(%d,%d) = %v,%v, want nil,false", rc[0], rc[1], p, ok)
		}
	}
	if _, ok := c.ParticleAt(6); ok {
		t.Error("ParticleAt(6) reported a particle on a 2x3 grid")
	}
}

func TestRemovalLeavesSolverConsistent(t *testing.T) {
	c, err := NewCloth(testClothConfig(5, 5))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	center := 2*5 + 2
	before := c.ConstraintCount()

	removed := c.RemoveConstraintsOf(center)
	if removed == 0 {
		t.Fatal("center particle had no constraints")
	}
	if !c.RemoveParticle(2, 2) {
		t.Fatal("RemoveParticle(2,2) = false")
	}
	if c.ConstraintCount() != before-removed {
		t.Fatalf("constraint count %d, want %d", c.ConstraintCount(), before-removed)
	}
	if c.InitialConstraintCount() != before {
		t.Fatalf("initial count %d changed after removal, want %d", c.InitialConstraintCount(), before)
	}
	for _, k := range c.Constraints() {
		if k.A == center || k.B == center {
			t.Fatalf("constraint %+v still references removed particle", k)
		}
	}
	if _, ok := c.Particle(2, 2); ok {
		t.Fatal("removed particle still reported")
	}
	if c.State() != ClothDamaged {
		t.Fatalf("state = %v, want damaged", c.State())
	}

	c.SatisfyConstraints()
	c.LiveParticles(func(i int, p *Particle) {
		if pos, _ := p.Position(); !IsFinite(pos) {
			t.Fatalf("particle %d not finite after solve: %v", i, pos)
		}
	})
}

func TestExpiredParticlesArePrunedOnUpdate(t *testing.T) {
	c, err := NewCloth(testClothConfig(3, 3))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	p, _ := c.Particle(1, 1)
	p.SetExpired(true)

	c.Update(1.0 / 60)

	if _, ok := c.Particle(1, 1); ok {
		t.Fatal("expired particle survived update")
	}
	if c.ConstraintsLeftFraction() >= 1 {
		t.Fatalf("fraction = %v, want < 1", c.ConstraintsLeftFraction())
	}
	if c.LiveCount() != 8 {
		t.Fatalf("live = %d, want 8", c.LiveCount())
	}
}

func TestClothWithoutForcesStaysPut(t *testing.T) {
	c, err := NewCloth(testClothConfig(4, 4))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60)
	}
	if tl, _ := c.CurrentTopLeft(); !nearVec(tl, c.OriginalTopLeft(), 1e-9) {
		t.Fatalf("force-free cloth drifted to %v", tl)
	}
	if c.State() != ClothSimulating {
		t.Fatalf("state = %v, want simulating", c.State())
	}
}

func TestSlackClothFreeFalls(t *testing.T) {
	c, err := NewCloth(testClothConfig(3, 3))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	c.RemoveAllConstraints()
	c.AddForce(NewGravityForce(100))
	c.Update(0.1)
	c.Update(0.1)

	c.LiveParticles(func(i int, p *Particle) {
		v, _ := p.Velocity()
		if !near(v.Z(), -15, 1e-9) {
			t.Fatalf("particle %d vz = %v, want -15", i, v.Z())
		}
	})
}

func TestMoveAndForces(t *testing.T) {
	c, err := NewCloth(testClothConfig(2, 2))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	c.MoveByOffset(Vec3{3, 0, 0})
	if tl, _ := c.CurrentTopLeft(); !nearVec(tl, Vec3{143, 20, 100}, eps) {
		t.Fatalf("top-left after move = %v", tl)
	}

	c.AddForce(NewGravityForce(StandardGravity))
	c.AddForce(NewConstantWindForce(3, UnitY, 1))

	var shared Force
	c.LiveParticles(func(_ int, p *Particle) {
		fs := p.Forces()
		if len(fs) != 2 {
			t.Fatalf("particle has %d forces, want 2", len(fs))
		}
		if fs[0] == shared {
			t.Fatal("particles share a force instance")
		}
		shared = fs[0]
	})

	c.ResetForces(true)
	c.LiveParticles(func(_ int, p *Particle) {
		fs := p.Forces()
		if len(fs) != 1 {
			t.Fatalf("after reset keeping gravity: %d forces", len(fs))
		}
		if _, ok := fs[0].(*GravityForce); !ok {
			t.Fatalf("kept %T, want gravity", fs[0])
		}
	})

	c.ResetForces(false)
	c.LiveParticles(func(_ int, p *Particle) {
		if n := len(p.Forces()); n != 0 {
			t.Fatalf("after full reset: %d forces", n)
		}
	})
}

func TestClothDeathAndDestroyedState(t *testing.T) {
	c, err := NewCloth(testClothConfig(1, 2))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	c.RemoveParticle(0, 0)
	if c.IsDead() {
		t.Fatal("cloth dead with one particle left")
	}
	c.RemoveParticle(0, 1)
	if !c.IsDead() || c.State() != ClothDestroyed {
		t.Fatalf("dead=%v state=%v, want dead and destroyed", c.IsDead(), c.State())
	}
	if _, ok := c.CurrentTopLeft(); ok {
		t.Fatal("dead cloth reported a top-left")
	}
	c.Update(0.1)
}

func TestNewClothRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClothConfig)
		want   error
	}{
		{"zero rows", func(c *ClothConfig) { c.Rows = 0 }, ErrInvalidCloth},
		{"negative iterations", func(c *ClothConfig) { c.Iterations = -1 }, ErrInvalidCloth},
		{"zero base distance", func(c *ClothConfig) { c.BaseDistance = 0 }, ErrInvalidCloth},
		{"zero shear ratio", func(c *ClothConfig) { c.ShearRatio = 0 }, ErrInvalidCloth},
		{"stiffness above one", func(c *ClothConfig) { c.Stiffness = 1.5 }, ErrInvalidCloth},
		{"zero mass", func(c *ClothConfig) { c.ParticleMass = 0 }, ErrNonPositiveMass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testClothConfig(3, 3)
			tt.mutate(&cfg)
			if _, err := NewCloth(cfg); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEachConstraintSegmentSkipsRemoved(t *testing.T) {
	c, err := NewCloth(testClothConfig(2, 2))
	if err != nil {
		t.Fatalf("NewCloth: %v", err)
	}
	total := 0
	c.EachConstraintSegment(func(ConstraintKind, Vec3, Vec3) { total++ })
	if total != c.ConstraintCount() {
		t.Fatalf("segments = %d, constraints = %d", total, c.ConstraintCount())
	}

	c.RemoveParticle(0, 0)
	total = 0
	c.EachConstraintSegment(func(ConstraintKind, Vec3, Vec3) { total++ })
	if total != c.ConstraintCount() {
		t.Fatalf("segments = %d after removal, constraints = %d", total, c.ConstraintCount())
	}
}
