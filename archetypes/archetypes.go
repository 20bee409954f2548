package archetypes

import (
	"github.com/automoto/sunsprout/components"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
)

var (
	Round = newArchetype(
		tags.Round,
		components.Round,
		components.Playfield,
		components.Schedule,
		components.IntentQueue,
		components.Audio,
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Plant = newArchetype(
		tags.Plant,
		components.Plant,
		components.Object,
	)
	Drop = newArchetype(
		tags.Drop,
		components.Drop,
		components.Object,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
