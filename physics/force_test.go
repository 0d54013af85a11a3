package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearVec(a, b Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestZeroMagnitudeForcesAreInert(t *testing.T) {
	states := []*LinearDynamicsState{
		NewLinearDynamicsState(Zero, Zero),
		NewLinearDynamicsState(Vec3{3, -4, 12}, Vec3{1, 2, -3}),
		NewLinearDynamicsState(Vec3{0, 0, -50}, Vec3{0, 0, -9}),
	}
	forces := map[string]Force{
		"gravity":  &GravityForce{Magnitude: 0, Direction: Up.Mul(-1)},
		"wind":     NewConstantWindForce(0, UnitX, 0.8),
		"wormhole": NewWormholeForce(0, 1, Zero),
		"spring":   NewSpringForce(0, 5, 0.3, Zero),
		"debris":   NewDebrisForce(0, 2),
	}

	for name, f := range forces {
		t.Run(name, func(t *testing.T) {
			for _, s := range states {
				if got := f.ForceFor(s, 2.5); got != Zero {
					t.Fatalf("ForceFor(%v) = %v, want zero", s.Position, got)
				}
			}
		})
	}
}

func TestGravityScalesWithMass(t *testing.T) {
	g := NewGravityForce(StandardGravity)
	s := NewLinearDynamicsState(Vec3{1, 2, 3}, Vec3{4, 5, 6})

	got := g.ForceFor(s, 2)
	want := Vec3{0, 0, -2 * StandardGravity}
	if !nearVec(got, want, eps) {
		t.Fatalf("gravity = %v, want %v", got, want)
	}
}

func TestConstantWindDragsTowardWind(t *testing.T) {
	w := NewConstantWindForce(5, UnitX, 0.5)

	still := NewLinearDynamicsState(Zero, Zero)
	if got, want := w.ForceFor(still, 1), (Vec3{2.5, 0, 0}); !nearVec(got, want, eps) {
		t.Errorf("at rest = %v, want %v", got, want)
	}

	matching := NewLinearDynamicsState(Zero, Vec3{5, 0, 0})
	if got := w.ForceFor(matching, 1); !nearVec(got, Zero, eps) {
		t.Errorf("moving with wind = %v, want zero", got)
	}
}

func TestWormholePullsTowardCenterAndGrowsWithDistance(t *testing.T) {
	w := NewWormholeForce(2, 1, Zero)

	inner := w.ForceFor(NewLinearDynamicsState(Vec3{1, 0, 0}, Zero), 1)
	distant := w.ForceFor(NewLinearDynamicsState(Vec3{3, 0, 0}, Zero), 1)

	if inner[0] >= 0 || distant[0] >= 0 {
		t.Fatalf("expected pull toward origin, got %v and %v", inner, distant)
	}
	if !near(distant.Len(), 3*inner.Len(), eps) {
		t.Fatalf("expected linear growth, got %v and %v", inner.Len(), distant.Len())
	}

	centered := NewWormholeForce(2, 1, Vec3{10, 0, 0})
	if got := centered.ForceFor(NewLinearDynamicsState(Vec3{10, 0, 0}, Zero), 1); got != Zero {
		t.Fatalf("at center = %v, want zero", got)
	}
}

func TestSpringRestoresAndDamps(t *testing.T) {
	s := NewSpringForce(1, 4, 0.5, Zero)
	state := NewLinearDynamicsState(Vec3{2, 0, 0}, Vec3{0, 2, 0})

	got := s.ForceFor(state, 1)
	want := Vec3{-8, -1, 0}
	if !nearVec(got, want, eps) {
		t.Fatalf("spring = %v, want %v", got, want)
	}
}

func TestDebrisForceRegions(t *testing.T) {
	d := NewDebrisForce(10, 5)

	tests := []struct {
		name     string
		position Vec3
		velocity Vec3
		want     Vec3
	}{
		{"below ground pushes up", Vec3{0, 0, 2}, Zero, Vec3{0, 0, 10 * 3 * DefaultBelowGroundScale * 2}},
		{"above ground falling is damped", Vec3{0, 0, 9}, Vec3{0, 0, -1}, Vec3{0, 0, -10 * 4 * DefaultFallingScale * 2}},
		{"above ground rising pulls down", Vec3{0, 0, 9}, Vec3{0, 0, 1}, Vec3{0, 0, -10 * 4 * 2}},
		{"on ground is zero", Vec3{0, 0, 5}, Vec3{0, 0, -1}, Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.ForceFor(NewLinearDynamicsState(tt.position, tt.velocity), 2)
			if !nearVec(got, tt.want, eps) {
				t.Fatalf("debris = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebrisForceFadesNearGround(t *testing.T) {
	d := NewDebrisForce(1, 0)
	falling := Vec3{0, 0, -1}

	prev := math.Inf(1)
	for _, h := range []float64{50, 1, 0.01} {
		got := d.ForceFor(NewLinearDynamicsState(Vec3{0, 0, h}, falling), 1).Len()
		if got >= prev {
			t.Fatalf("force at h=%v is %v, not below %v", h, got, prev)
		}
		prev = got
	}
	if !near(prev, 0.01*DefaultFallingScale, eps) {
		t.Fatalf("force at h=0.01 is %v", prev)
	}

	shallow := d.ForceFor(NewLinearDynamicsState(Vec3{0, 0, -0.01}, Zero), 1)
	deep := d.ForceFor(NewLinearDynamicsState(Vec3{0, 0, -5}, Zero), 1)
	if shallow.Len() >= deep.Len() || shallow.Z() <= 0 {
		t.Fatalf("below ground: shallow %v, deep %v", shallow, deep)
	}
}

func TestDebrisScalesAreConfigurable(t *testing.T) {
	d := NewDebrisForce(1, 0)
	d.BelowGroundScale = 3
	got := d.ForceFor(NewLinearDynamicsState(Vec3{0, 0, -1}, Zero), 1)
	if !nearVec(got, Vec3{0, 0, 3}, eps) {
		t.Fatalf("debris = %v, want 3 up", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewConstantWindForce(4, UnitX, 1)
	clone := orig.Clone().(*ConstantWindForce)
	clone.Magnitude = 9

	if orig.Magnitude != 4 {
		t.Fatalf("mutating clone changed original: %v", orig.Magnitude)
	}
	if clone.Direction != orig.Direction || clone.Dampedness != orig.Dampedness {
		t.Fatalf("clone parameters differ: %+v vs %+v", clone, orig)
	}
}
