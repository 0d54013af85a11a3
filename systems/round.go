package systems

import (
	"log"

	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/automoto/laundry-squadron/systems/factory"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound advances the round clock, handles the global hotkeys and ends
// the round once the cloth has lost too many constraints.
func UpdateRound(e *ecs.ECS) {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)
	dt := tickSeconds()
	round.Clock += dt

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionTwah).JustPressed {
		PlaySFX(e, cfg.SoundTwah)
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		ResetRound(e)
		return
	}

	switch round.State {
	case cfg.RoundPlaying:
		clothEntry, ok := tags.Cloth.First(e.World)
		if !ok {
			return
		}
		cloth := components.Cloth.Get(clothEntry).Cloth
		fraction := cloth.ConstraintsLeftFraction()
		round.Damage = DamageOverlayAlpha(fraction)
		if cloth.IsDead() || fraction < cfg.Game.GameOverFraction {
			endRound(e, round, cloth)
		}
	case cfg.RoundOver:
		if round.Fade != nil {
			alpha, done := round.Fade.Update(float32(dt))
			round.FadeAlpha = float64(alpha)
			if done {
				round.Fade = nil
			}
		}
	}
}

// RoundFinished reports whether the player dismissed the results overlay
func RoundFinished(e *ecs.ECS) bool {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return false
	}
	round := components.Round.Get(roundEntry)
	if round.State != cfg.RoundOver || round.Fade != nil || GetOrCreatePause(e).IsPaused {
		return false
	}
	return GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed
}

// DamageOverlayAlpha maps the share of constraints left to the red overlay's
// opacity. An intact cloth shows none.
func DamageOverlayAlpha(fraction float64) float64 {
	g := cfg.Game
	return gamemath.Clamp(g.DamageOverlayBase-(fraction-g.GameOverFraction)/g.DamageOverlaySpan, 0, 1)
}

func endRound(e *ecs.ECS, round *components.RoundData, cloth *physics.Cloth) {
	round.State = cfg.RoundOver
	round.Survived = round.Clock
	round.Damage = 0
	round.NewBest = RecordRound(round.Survived)
	if round.NewBest {
		round.Best = round.Survived
	}
	round.Fade = gween.New(0, 1, float32(cfg.Game.FadeSeconds), ease.InOutQuad)
	round.FadeAlpha = 0

	// Let what is left of the cloth fall away
	cloth.RemoveAllConstraints()
	cloth.AddForce(physics.NewGravityForce(cfg.Forces.GameOverGravity))

	PlaySFX(e, cfg.SoundDeath)
	FadeOutMusic(e)
	TriggerScreenShake(e, 6, 30)
	log.Printf("Round over after %.1fs (%s)", round.Survived, round.State)
}

// ResetRound rebuilds the cloth where the arena placed it and starts a new
// round.
func ResetRound(e *ecs.ECS) {
	if clothEntry, ok := tags.Cloth.First(e.World); ok {
		data := components.Cloth.Get(clothEntry)
		cloth, err := factory.NewCloth(data.Origin)
		if err != nil {
			log.Printf("Warning: could not rebuild cloth: %v", err)
			return
		}
		data.Cloth = cloth
		*components.Flash.Get(clothEntry) = components.FlashData{}
	}

	ClearProjectiles(e)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Clear()
	}

	if spawnerEntry, ok := tags.Spawner.First(e.World); ok {
		s := components.Spawner.Get(spawnerEntry)
		s.SinceSpawn, s.Interval = 0, 0
		s.Spawned, s.GustsEarned, s.GustCooldown = 0, 0, 0
	}

	if roundEntry, ok := components.Round.First(e.World); ok {
		round := components.Round.Get(roundEntry)
		*round = components.RoundData{State: cfg.RoundPlaying, Best: round.Best}
	}

	PlaySFX(e, cfg.SoundStart)
	PlayMusic(e)
}
