package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// System advances one concern of the simulation by dt milliseconds.
type System func(w donburi.World, dt float64)

// WithRunningCheck wraps a system to skip execution unless the round is running.
func WithRunningCheck(system System) System {
	return func(w donburi.World, dt float64) {
		if !IsRunning(w) {
			return
		}
		system(w, dt)
	}
}

// GetRound returns the singleton round data, or nil before the round entry exists.
func GetRound(w donburi.World) *components.RoundData {
	entry, ok := components.Round.First(w)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// GetPlayfield returns the current playfield size.
func GetPlayfield(w donburi.World) *components.PlayfieldData {
	entry, ok := components.Playfield.First(w)
	if !ok {
		return &components.PlayfieldData{}
	}
	return components.Playfield.Get(entry)
}

// GetPlayer returns the player data, or nil if no player exists.
func GetPlayer(w donburi.World) *components.PlayerData {
	entry, ok := components.Player.First(w)
	if !ok {
		return nil
	}
	return components.Player.Get(entry)
}

// IsRunning reports whether the round is in the Running state.
func IsRunning(w donburi.World) bool {
	r := GetRound(w)
	return r != nil && r.State == cfg.RoundRunning
}
