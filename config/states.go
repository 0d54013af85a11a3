package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = 0

// RoundStateID is the phase of a round.
type RoundStateID int

const (
	RoundPlaying RoundStateID = iota
	RoundOver
)

func (s RoundStateID) String() string {
	if s == RoundOver {
		return "over"
	}
	return "playing"
}
