package factory

import (
	"github.com/automoto/sunsprout/archetypes"
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateDrop launches a water drop from pos.
func CreateDrop(w donburi.World, space *resolv.Space, pos, vel math.Vec2) *donburi.Entry {
	drop := archetypes.Drop.Spawn(w)
	components.Drop.SetValue(drop, components.DropData{
		Position: pos,
		Velocity: vel,
		Life:     cfg.Drop.Life,
	})

	obj := resolv.NewObject(pos.X, pos.Y, 1, 1, tags.ResolvDrop)
	obj.Data = drop
	components.Object.SetValue(drop, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}
	return drop
}

// DestroyDrop removes a drop and its collision object.
func DestroyDrop(drop *donburi.Entry) {
	if !drop.Valid() {
		return
	}
	if obj := components.Object.Get(drop); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	drop.Remove()
}

// CreateOrb drops a new light orb from the top of the playfield at x.
func CreateOrb(w donburi.World, x float64) *donburi.Entry {
	orb := archetypes.Orb.Spawn(w)
	components.Orb.SetValue(orb, components.OrbData{
		Position: math.NewVec2(x, cfg.Orb.SpawnY),
		Radius:   cfg.Orb.Radius,
		SpeedY:   cfg.Orb.Speed,
	})
	return orb
}
