package components

import (
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Cursor position and its change since last frame, in pixels
	MouseX, MouseY   int
	MouseDX, MouseDY int
	mouseSeen        bool

	// Right stick, after deadzone, for looking around in fly mode
	LookX, LookY float64
}

// TrackMouse records a new cursor position and derives the frame delta. The
// first sample yields no delta.
func (in *InputData) TrackMouse(x, y int) {
	if in.mouseSeen {
		in.MouseDX, in.MouseDY = x-in.MouseX, y-in.MouseY
	}
	in.MouseX, in.MouseY = x, y
	in.mouseSeen = true
}

var Input = donburi.NewComponentType[InputData]()
