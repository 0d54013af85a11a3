package config

import "testing"

func restoreGlobals(t *testing.T) {
	t.Helper()
	cloth, projectile, forces := Cloth, Projectile, Forces
	game, camera, broad := Game, Camera3D, Broadphase
	emitters := make(map[string]EmitterKindConfig, len(Emitters))
	for k, v := range Emitters {
		emitters[k] = v
	}
	t.Cleanup(func() {
		Cloth, Projectile, Forces = cloth, projectile, forces
		Game, Camera3D, Broadphase = game, camera, broad
		Emitters = emitters
	})
}

func TestApplyTuningOverlaysPartialSections(t *testing.T) {
	restoreGlobals(t)
	cols, speed := Cloth.Cols, Projectile.Speed
	vortex := Emitters[EmitterVortex]

	err := ApplyTuning([]byte(`
cloth:
  rows: 12
emitters:
  vortex:
    max_particles: 7
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	if Cloth.Rows != 12 {
		t.Errorf("cloth rows = %d, want 12", Cloth.Rows)
	}
	if Cloth.Cols != cols {
		t.Errorf("cloth cols = %d, want untouched %d", Cloth.Cols, cols)
	}
	if Projectile.Speed != speed {
		t.Errorf("projectile speed = %v, want untouched %v", Projectile.Speed, speed)
	}

	got := Emitters[EmitterVortex]
	if got.MaxParticles != 7 {
		t.Errorf("vortex max particles = %d, want 7", got.MaxParticles)
	}
	if got.Tint != vortex.Tint || got.Shape != vortex.Shape {
		t.Errorf("vortex lost its built-in look: %+v", got)
	}
	if got.ForceMagnitude != vortex.ForceMagnitude {
		t.Errorf("vortex force = %v, want untouched %v", got.ForceMagnitude, vortex.ForceMagnitude)
	}
	if _, ok := Emitters[EmitterSparks]; !ok {
		t.Error("sparks kind dropped by a vortex-only override")
	}
}

func TestApplyTuningCommitsNothingOnError(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad field type", "cloth:\n  rows: 3\nprojectile:\n  speed: fast\n"},
		{"bad emitter entry", "cloth:\n  rows: 3\nemitters:\n  vortex:\n    max_particles: many\n"},
		{"not yaml", "cloth: [rows: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			rows := Cloth.Rows
			vortex := Emitters[EmitterVortex]

			if err := ApplyTuning([]byte(tt.doc)); err == nil {
				t.Fatal("expected an error")
			}
			if Cloth.Rows != rows {
				t.Errorf("cloth rows = %d after failed tuning, want %d", Cloth.Rows, rows)
			}
			if Emitters[EmitterVortex] != vortex {
				t.Errorf("vortex changed after failed tuning: %+v", Emitters[EmitterVortex])
			}
		})
	}
}
