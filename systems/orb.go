package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
)

// UpdateOrb moves the active orb and resolves a catch or a miss. With no orb active, a new
// one spawns once the cooldown since the previous spawn has passed.
func UpdateOrb(w donburi.World, dt float64) {
	round := GetRound(w)
	pf := GetPlayfield(w)

	orbEntry, ok := components.Orb.First(w)
	if !ok {
		if round.OrbEligible || round.Clock-round.LastOrbSpawn >= cfg.Orb.Cooldown {
			SpawnOrb(w)
		}
		return
	}

	orb := components.Orb.Get(orbEntry)
	orb.Position.Y += orb.SpeedY

	player := GetPlayer(w)
	if player != nil && orb.Position.Y > pf.Height-cfg.Orb.CatchHeight &&
		gamemath.WithinX(orb.Position.X, player.Position.X, cfg.Orb.CatchRange) {
		pos := orb.Position
		orbEntry.Remove()
		round.AddSunlight(cfg.Orb.Charge, cfg.Round.MaxSunlight)
		factory.SpawnBurst(w, round.Rand, pos, cfg.Particles.OrbCatch)
		QueueSFX(w, cfg.SoundRequest{ID: cfg.SoundOrbCollect, Volume: cfg.Audio.DefaultSFXVol})
		return
	}

	if orb.Position.Y > pf.Height-cfg.Orb.MissHeight {
		orbEntry.Remove()
		penalizeMiss(w)
	}
}

// SpawnOrb creates the orb at a random column along the top edge. No-op if one exists.
func SpawnOrb(w donburi.World) {
	if _, ok := components.Orb.First(w); ok {
		return
	}
	round := GetRound(w)
	pf := GetPlayfield(w)

	x := gamemath.RandRange(round.Rand, cfg.Orb.Margin, pf.Width-cfg.Orb.Margin)
	factory.CreateOrb(w, x)
	round.LastOrbSpawn = round.Clock
	round.OrbEligible = false
	QueueSFX(w, cfg.SoundRequest{ID: cfg.SoundOrbSpawn, Volume: cfg.Audio.DefaultSFXVol})
}

func penalizeMiss(w donburi.World) {
	tags.Plant.Each(w, func(e *donburi.Entry) {
		p := components.Plant.Get(e)
		if !p.Alive {
			return
		}
		p.Thirst = gamemath.Clamp(p.Thirst-cfg.Orb.MissPenalty, 0, cfg.Plant.MaxThirst)
	})
}
