package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateDrops integrates drop ballistics, waters the first living plant a drop lands in and
// culls drops that hit, leave the playfield or run out of life. A drop is removed at most once.
func UpdateDrops(w donburi.World, dt float64) {
	round := GetRound(w)
	pf := GetPlayfield(w)

	var toRemove []*donburi.Entry
	var splashes []math.Vec2

	components.Drop.Each(w, func(e *donburi.Entry) {
		d := components.Drop.Get(e)
		d.Position.X += d.Velocity.X
		d.Position.Y += d.Velocity.Y
		d.Velocity.Y += cfg.Drop.Gravity
		d.Life -= dt

		obj := components.Object.Get(e)
		if obj.Object != nil {
			obj.X, obj.Y = d.Position.X, d.Position.Y
			obj.Update()
		}

		if plantEntry := findHitPlant(w, obj.Object, d.Position); plantEntry != nil {
			components.Plant.Get(plantEntry).Water(cfg.Plant.MaxThirst)
			round.Score += cfg.Plant.WaterScore
			splashes = append(splashes, d.Position)
			toRemove = append(toRemove, e)
			return
		}

		if d.Life <= 0 || dropOutOfBounds(d.Position, pf) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.DestroyDrop(e)
	}

	for _, pos := range splashes {
		factory.SpawnBurst(w, round.Rand, pos, cfg.Particles.Splash)
		QueueSplash(w, cfg.SoundSplash, cfg.Audio.Splash)
	}
}

func dropOutOfBounds(pos math.Vec2, pf *components.PlayfieldData) bool {
	return pos.Y > pf.Height+cfg.Drop.BottomMargin ||
		pos.X < -cfg.Drop.SideMargin ||
		pos.X > pf.Width+cfg.Drop.SideMargin
}
