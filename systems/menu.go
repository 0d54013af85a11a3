package systems

import (
	"os"

	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the menu's keyboard and gamepad handling. The mouse
// is handled by the menu widgets.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	// The key that left the previous scene may still be held on the first tick
	primed := false
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if !primed {
			primed = true
			return
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			StartGame(e, sceneChanger, createWorldScene)
			return
		}
		if GetAction(input, cfg.ActionMute).JustPressed {
			ToggleMute(e)
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// StartGame leaves the menu for a new round
func StartGame(e *ecs.ECS, sceneChanger SceneChanger, createWorldScene func() interface{}) {
	PlaySFX(e, cfg.SoundMenuSelect)
	UpdateAudio(e)
	sceneChanger.ChangeScene(createWorldScene())
}
