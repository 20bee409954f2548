package factory

import (
	"math/rand"

	"github.com/automoto/sunsprout/archetypes"
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/automoto/sunsprout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnPlants creates 4-5 plants spread across the planting band. Each placement is retried
// until it keeps MinDistance from the plants already placed; after MaxTries the last candidate
// is used anyway.
func SpawnPlants(w donburi.World, r *rand.Rand, pf *components.PlayfieldData, space *resolv.Space) []*donburi.Entry {
	count := cfg.Plant.MinCount + r.Intn(cfg.Plant.MaxCount-cfg.Plant.MinCount+1)
	placed := make([]math.Vec2, 0, count)
	plants := make([]*donburi.Entry, 0, count)

	for i := 0; i < count; i++ {
		var pos math.Vec2
		for tries := 0; tries < cfg.Plant.MaxTries; tries++ {
			pos = math.NewVec2(
				gamemath.RandRange(r, cfg.Plant.Margin, pf.Width-cfg.Plant.Margin),
				pf.Height*cfg.Plant.TopFraction+r.Float64()*pf.Height*cfg.Plant.BandHeight,
			)
			if farFromAll(pos, placed, cfg.Plant.MinDistance) {
				break
			}
		}
		placed = append(placed, pos)
		plants = append(plants, CreatePlant(w, space, pos))
	}
	return plants
}

func farFromAll(pos math.Vec2, placed []math.Vec2, minDist float64) bool {
	for _, p := range placed {
		if gamemath.Distance(p, pos) < minDist {
			return false
		}
	}
	return true
}

// CreatePlant creates a fully watered plant centred on pos and registers its hit box.
func CreatePlant(w donburi.World, space *resolv.Space, pos math.Vec2) *donburi.Entry {
	plant := archetypes.Plant.Spawn(w)
	pw, ph := cfg.Plant.Width, cfg.Plant.Height
	components.Plant.SetValue(plant, components.PlantData{
		Position: pos,
		Width:    pw,
		Height:   ph,
		Thirst:   cfg.Plant.MaxThirst,
		Alive:    true,
	})

	// One pixel of padding so the right and bottom edges register in their grid cells
	obj := resolv.NewObject(pos.X-pw/2, pos.Y-ph/2, pw+1, ph+1, tags.ResolvPlant)
	obj.SetShape(resolv.NewRectangle(0, 0, pw+1, ph+1))
	obj.Data = plant // Linked for O(1) lookup
	components.Object.SetValue(plant, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}
	return plant
}
