package components

import (
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RoundData is the singleton round state
type RoundData struct {
	State cfg.RoundStateID
	Clock float64 // simulation seconds since the round started

	Survived float64 // length of the finished round
	Best     float64
	NewBest  bool

	// Damage overlay alpha while playing
	Damage float64
	// Game over overlay fade, 0 to 1
	Fade      *gween.Tween
	FadeAlpha float64
}

var Round = donburi.NewComponentType[RoundData]()
