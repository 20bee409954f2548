package game

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/systems"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
)

// Snapshot is a plain copy of the round state. Changing it does not affect the round.
type Snapshot struct {
	State      cfg.RoundStateID
	Clock      float64
	TimeLeft   float64
	Score      int
	Sunlight   float64
	SuperReady bool
	Width      float64
	Height     float64

	Player    components.PlayerData
	Plants    []components.PlantData
	Drops     []components.DropData
	Particles []components.ParticleData
	Orb       *components.OrbData
}

func (r *Round) Snapshot() Snapshot {
	round := components.Round.Get(r.entry)
	pf := components.Playfield.Get(r.entry)
	s := Snapshot{
		State:      round.State,
		Clock:      round.Clock,
		TimeLeft:   round.TimeLeft,
		Score:      round.Score,
		Sunlight:   round.Sunlight,
		SuperReady: round.SuperReady,
		Width:      pf.Width,
		Height:     pf.Height,
	}

	if p := systems.GetPlayer(r.world); p != nil {
		s.Player = *p
	}
	tags.Plant.Each(r.world, func(e *donburi.Entry) {
		s.Plants = append(s.Plants, *components.Plant.Get(e))
	})
	tags.Drop.Each(r.world, func(e *donburi.Entry) {
		s.Drops = append(s.Drops, *components.Drop.Get(e))
	})
	tags.Particle.Each(r.world, func(e *donburi.Entry) {
		s.Particles = append(s.Particles, *components.Particle.Get(e))
	})
	if e, ok := tags.Orb.First(r.world); ok {
		orb := *components.Orb.Get(e)
		s.Orb = &orb
	}
	return s
}
