package physics

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

type recordingMarkers struct {
	drawn []Vec3
	shape []Shape
}

func (r *recordingMarkers) DrawMarker(position Vec3, _ float64, shape Shape, _ color.RGBA) {
	r.drawn = append(r.drawn, position)
	r.shape = append(r.shape, shape)
}

func TestNewParticleRejectsNonPositiveMass(t *testing.T) {
	for _, m := range []float64{0, -1, math.NaN()} {
		if _, err := NewParticle(ShapeSphere, m, 1, 1); !errors.Is(err, ErrNonPositiveMass) {
			t.Errorf("mass %v: err = %v, want ErrNonPositiveMass", m, err)
		}
	}
}

func TestParticleWithoutStateIsInert(t *testing.T) {
	p, err := NewParticle(ShapeBox, 1, 2, 0.5)
	if err != nil {
		t.Fatalf("NewParticle: %v", err)
	}
	if p.AddForce(NewGravityForce(1)) {
		t.Fatal("AddForce succeeded without a state")
	}
	if _, ok := p.Position(); ok {
		t.Fatal("Position reported without a state")
	}
	p.StepAndAge(VelocityVerlet, 0.5)
	if p.SecondsToLive != 1.5 {
		t.Fatalf("SecondsToLive = %v, want 1.5", p.SecondsToLive)
	}
	markers := &recordingMarkers{}
	p.Render(markers)
	if len(markers.drawn) != 0 {
		t.Fatal("stateless particle rendered")
	}
}

func TestParticleExpiry(t *testing.T) {
	p, _ := NewParticle(ShapeSphere, 1, 0.1, 0.5)
	p.SetState(NewLinearDynamicsState(Zero, Zero))
	if p.IsExpired() {
		t.Fatal("fresh particle expired")
	}
	p.StepAndAge(ForwardEuler, 0.1)
	if !p.IsExpired() {
		t.Fatal("particle outlived its lifetime")
	}

	immortal, _ := NewParticle(ShapeSphere, 1, math.Inf(1), 0.5)
	immortal.StepAndAge(ForwardEuler, 1e6)
	if immortal.IsExpired() || !immortal.Immortal() {
		t.Fatal("immortal particle expired")
	}
	immortal.SetExpired(true)
	if !immortal.IsExpired() {
		t.Fatal("expired flag ignored")
	}
}

func TestSpawnClonesTemplate(t *testing.T) {
	tmpl, _ := NewParticle(ShapeBox, 2, 5, 0.25)
	tmpl.SetState(NewLinearDynamicsState(Zero, Zero))
	tmpl.AddForce(NewGravityForce(StandardGravity))

	p := tmpl.Spawn(Vec3{1, 2, 3}, Vec3{0, 0, 1})
	if p.Mass != 2 || p.Shape != ShapeBox || p.Radius != 0.25 || p.SecondsToLive != 5 {
		t.Fatalf("spawned particle parameters differ: %+v", p)
	}
	if pos, _ := p.Position(); pos != (Vec3{1, 2, 3}) {
		t.Fatalf("position = %v", pos)
	}
	if p.Forces()[0] == tmpl.Forces()[0] {
		t.Fatal("spawned particle shares the template's force")
	}

	markers := &recordingMarkers{}
	p.Render(markers)
	if len(markers.drawn) != 1 || markers.shape[0] != ShapeBox {
		t.Fatalf("render calls = %v %v", markers.drawn, markers.shape)
	}
}

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name       string
		theta, phi float64
		want       Vec3
	}{
		{"straight up", 0, 0, Vec3{0, 0, 3}},
		{"north", 90, 0, Vec3{3, 0, 0}},
		{"west", 90, 90, Vec3{0, 3, 0}},
		{"straight down", 180, 45, Vec3{0, 0, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSpherical(3, tt.theta, tt.phi); !nearVec(got, tt.want, 1e-12) {
				t.Fatalf("FromSpherical = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSafeNormalize(t *testing.T) {
	if got := SafeNormalize(Zero); got != Zero {
		t.Fatalf("SafeNormalize(zero) = %v", got)
	}
	if got := SafeNormalize(Vec3{0, 3, 4}); !nearVec(got, Vec3{0, 0.6, 0.8}, eps) {
		t.Fatalf("SafeNormalize = %v", got)
	}
	if IsFinite(Vec3{0, math.Inf(1), 0}) || IsFinite(Vec3{math.NaN(), 0, 0}) {
		t.Fatal("IsFinite accepted a non-finite vector")
	}
}
