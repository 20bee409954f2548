package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
)

// StartRound clears the playfield and begins a fresh round. Starting and restarting share
// this initialization.
func StartRound(w donburi.World) {
	roundEntry, ok := components.Round.First(w)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)
	pf := components.Playfield.Get(roundEntry)

	clearEntities(w)
	factory.ResetSpace(roundEntry, pf.Width, pf.Height)
	ClearIntents(w)
	ClearSchedule(w)
	components.Audio.Get(roundEntry).PendingSFX = components.Audio.Get(roundEntry).PendingSFX[:0]

	round.State = cfg.RoundRunning
	round.Clock = 0
	round.TimeLeft = cfg.Round.Duration
	round.Score = 0
	round.Sunlight = 0
	round.SuperReady = false
	round.LastOrbSpawn = 0
	round.OrbEligible = true
	round.EndSignaled = false

	factory.SpawnPlants(w, round.Rand, pf, components.Space.Get(roundEntry))

	if player := GetPlayer(w); player != nil {
		player.Position.X = pf.Width / 2
		player.Position.Y = pf.Height - cfg.Player.BottomOffset
		player.TargetX = player.Position.X
		player.Facing = cfg.FacingBack
	} else {
		factory.CreatePlayer(w, pf)
	}
}

// clearEntities removes every plant, drop, particle and orb.
func clearEntities(w donburi.World) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) { toRemove = append(toRemove, e) }
	tags.Plant.Each(w, collect)
	tags.Drop.Each(w, collect)
	tags.Particle.Each(w, collect)
	tags.Orb.Each(w, collect)

	for _, e := range toRemove {
		e.Remove()
	}
}

// UpdateClock advances the round clock used by deferred effects and the orb cooldown.
func UpdateClock(w donburi.World, dt float64) {
	GetRound(w).Clock += dt
}

// UpdateTimer counts the round down and ends it when time runs out.
func UpdateTimer(w donburi.World, dt float64) {
	round := GetRound(w)
	round.TimeLeft -= dt / 1000
	if round.TimeLeft <= 0 {
		round.State = cfg.RoundEnded
	}
}

// TimeLeftClamped is the remaining time as shown to the player.
func TimeLeftClamped(r *components.RoundData) float64 {
	if r.TimeLeft < 0 {
		return 0
	}
	return r.TimeLeft
}
