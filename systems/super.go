package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TriggerSuper spends the sunlight charge: every living plant is fully watered, each plant
// gets a rain burst and the bonus is scored.
func TriggerSuper(w donburi.World) {
	round := GetRound(w)

	var centres []math.Vec2
	components.Plant.Each(w, func(e *donburi.Entry) {
		p := components.Plant.Get(e)
		if p.Alive {
			p.Water(cfg.Plant.MaxThirst)
		}
		centres = append(centres, p.Position)
	})
	round.ConsumeSuper()

	for _, c := range centres {
		factory.SpawnBurst(w, round.Rand, c, cfg.Particles.SuperRain)
	}
	QueueSplash(w, cfg.SoundSuperSplash, cfg.Audio.SuperSplash)
	round.Score += cfg.Super.Bonus
}
