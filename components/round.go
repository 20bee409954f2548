package components

import (
	"math/rand"

	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the round state and meters.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	State cfg.RoundStateID
	Clock float64 // ms of simulated time since the round started

	TimeLeft   float64 // seconds, may dip below zero on the final tick
	Score      int
	Sunlight   float64 // 0..100
	SuperReady bool

	LastOrbSpawn float64 // round clock of the previous orb spawn
	OrbEligible  bool    // true until the first orb of the round spawns

	EndSignaled bool // round-end notification already raised
	Rand        *rand.Rand
}

var Round = donburi.NewComponentType[RoundData]()

// PlayfieldData is the current display surface size, refreshed every frame.
type PlayfieldData struct {
	Width  float64
	Height float64
}

var Playfield = donburi.NewComponentType[PlayfieldData]()

// AddSunlight charges the meter and arms the super ability when it fills.
func (r *RoundData) AddSunlight(amount, max float64) {
	r.Sunlight += amount
	if r.Sunlight >= max {
		r.Sunlight = max
		r.SuperReady = true
	}
	if r.Sunlight < 0 {
		r.Sunlight = 0
	}
}

// ConsumeSuper empties the meter.
func (r *RoundData) ConsumeSuper() {
	r.Sunlight = 0
	r.SuperReady = false
}
