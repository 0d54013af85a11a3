package factory

import (
	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRound(ecs *ecs.ECS, best float64) *donburi.Entry {
	entry := archetypes.Round.Spawn(ecs)
	components.Round.Set(entry, &components.RoundData{
		State: cfg.RoundPlaying,
		Best:  best,
	})
	return entry
}

func CreateDebug(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Debug.Spawn(ecs)
	components.Debug.Set(entry, &components.DebugData{Overlay: cfg.Debug.Overlay})
	return entry
}
