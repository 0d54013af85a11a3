package physics

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

type recordingSounds struct {
	played []SoundID
}

func (r *recordingSounds) PlaySound(id SoundID) {
	r.played = append(r.played, id)
}

func testEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Position:                Vec3{10, 10, 10},
		ParticleMass:            1,
		ParticleRadius:          0.1,
		MuzzleSpeed:             5,
		MinDegreesDownFromUp:    0,
		MaxDegreesDownFromUp:    30,
		MinDegreesLeftFromNorth: 0,
		MaxDegreesLeftFromNorth: 360,
		SecondsBetweenEmits:     0.1,
		SecondsBeforeExpire:     10,
		MaxParticles:            10,
		BatchSize:               4,
		MaxOffset:               Vec3{0.5, 0.5, 0.5},
		EmitSound:               7,
	}
}

func newTestEmitter(t *testing.T, cfg EmitterConfig, sounds SoundSink) *ParticleSystem {
	t.Helper()
	ps, err := NewParticleSystem(cfg, rand.New(rand.NewPCG(42, 7)), sounds)
	if err != nil {
		t.Fatalf("NewParticleSystem: %v", err)
	}
	return ps
}

func TestEmitterRejectsBatchLargerThanCap(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.BatchSize = 11
	_, err := NewParticleSystem(cfg, nil, nil)
	if !errors.Is(err, ErrBatchExceedsCap) {
		t.Fatalf("err = %v, want ErrBatchExceedsCap", err)
	}
}

func TestEmitterRejectsBadTemplate(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.ParticleMass = 0
	if _, err := NewParticleSystem(cfg, nil, nil); !errors.Is(err, ErrNonPositiveMass) {
		t.Fatalf("err = %v, want ErrNonPositiveMass", err)
	}

	cfg = testEmitterConfig()
	cfg.BatchSize = 0
	if _, err := NewParticleSystem(cfg, nil, nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestEmitterNeverExceedsCap(t *testing.T) {
	sounds := &recordingSounds{}
	ps := newTestEmitter(t, testEmitterConfig(), sounds)

	for i := 0; i < 500; i++ {
		ps.UpdateParticles(0.05)
		if ps.Count() > 10 {
			t.Fatalf("step %d: %d live particles, cap is 10", i, ps.Count())
		}
	}
	if ps.Count() == 0 {
		t.Fatal("emitter never emitted")
	}
	if len(sounds.played) == 0 || sounds.played[0] != 7 {
		t.Fatalf("emit sound not played: %v", sounds.played)
	}
}

func TestEmitterCadence(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBetweenEmits = 0.25
	sounds := &recordingSounds{}
	ps := newTestEmitter(t, cfg, sounds)

	// The accumulator only grows while below the interval.
	for i := 0; i < 5; i++ {
		ps.UpdateParticles(0.1)
	}
	if got := len(sounds.played); got != 1 {
		t.Fatalf("emissions after 5 steps = %d, want 1", got)
	}
	if ps.Count() != cfg.BatchSize {
		t.Fatalf("live = %d, want %d", ps.Count(), cfg.BatchSize)
	}
}

func TestEmitterEvictsOldestFirst(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBetweenEmits = 0
	cfg.MaxParticles = 6
	cfg.BatchSize = 4
	ps := newTestEmitter(t, cfg, nil)

	ps.UpdateParticles(0.01)
	first := ps.Particles()
	ps.UpdateParticles(0.01)
	second := ps.Particles()

	if len(second) != 6 {
		t.Fatalf("live = %d, want 6", len(second))
	}
	// Two of the first batch were evicted; the two youngest survive at the front.
	if second[0] != first[2] || second[1] != first[3] {
		t.Fatal("eviction did not remove the oldest particles")
	}
}

func TestEmittedParticlesRespectConeAndOffset(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBetweenEmits = 0
	cfg.MaxParticles = 40
	cfg.BatchSize = 40
	ps := newTestEmitter(t, cfg, nil)
	ps.UpdateParticles(0.01)

	maxTilt := math.Cos(30 * math.Pi / 180)
	for _, p := range ps.Particles() {
		pos, _ := p.Position()
		off := pos.Sub(cfg.Position)
		for i := 0; i < 3; i++ {
			if math.Abs(off[i]) > cfg.MaxOffset[i]+eps {
				t.Fatalf("offset %v outside %v", off, cfg.MaxOffset)
			}
		}
		v, _ := p.Velocity()
		if !near(v.Len(), cfg.MuzzleSpeed, 1e-9) {
			t.Fatalf("speed = %v, want %v", v.Len(), cfg.MuzzleSpeed)
		}
		if v.Z()/v.Len() < maxTilt-1e-9 {
			t.Fatalf("velocity %v outside the 30 degree cone", v)
		}
	}
}

func TestEmittedParticlesOwnTheirForces(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBetweenEmits = 0
	ps := newTestEmitter(t, cfg, nil)
	ps.AddForce(NewGravityForce(StandardGravity))
	ps.UpdateParticles(0.01)

	seen := map[Force]bool{}
	for _, p := range ps.Particles() {
		fs := p.Forces()
		if len(fs) != 1 {
			t.Fatalf("particle has %d forces, want 1", len(fs))
		}
		if seen[fs[0]] {
			t.Fatal("two particles share a force instance")
		}
		seen[fs[0]] = true
	}
}

func TestEmittedParticlesExpire(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBeforeExpire = 0.2
	cfg.SecondsBetweenEmits = 100
	ps := newTestEmitter(t, cfg, nil)

	// Nothing is emitted until the accumulator reaches the interval.
	for ps.Count() == 0 {
		ps.UpdateParticles(50)
	}
	for i := 0; i < 3; i++ {
		ps.UpdateParticles(0.1)
	}
	if ps.Count() != 0 {
		t.Fatalf("live = %d after lifetime elapsed, want 0", ps.Count())
	}
}

func TestSecondsUntilNextEmit(t *testing.T) {
	cfg := testEmitterConfig()
	cfg.SecondsBetweenEmits = 1
	ps := newTestEmitter(t, cfg, nil)
	ps.UpdateParticles(0.25)
	if got := ps.SecondsUntilNextEmit(); !near(got, 0.75, eps) {
		t.Fatalf("SecondsUntilNextEmit = %v, want 0.75", got)
	}
}
