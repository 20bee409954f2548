package systems

import (
	"github.com/automoto/sunsprout/components"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/automoto/sunsprout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func getSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// findHitPlant returns the first living plant, in plant order, whose box strictly contains
// pos. The resolv space narrows the candidates to plants sharing a cell with the drop; a drop
// the space cannot place is tested against every plant.
func findHitPlant(w donburi.World, obj *resolv.Object, pos math.Vec2) *donburi.Entry {
	if obj == nil || obj.Space == nil {
		return scanPlants(w, pos, nil)
	}

	check := obj.Check(0, 0, tags.ResolvPlant)
	if check == nil {
		return scanPlants(w, pos, nil)
	}
	candidates := make(map[donburi.Entity]bool, len(check.Objects))
	for _, o := range check.Objects {
		plantEntry, ok := o.Data.(*donburi.Entry)
		if !ok || plantEntry == nil || !plantEntry.Valid() {
			continue
		}
		candidates[plantEntry.Entity()] = true
	}
	return scanPlants(w, pos, candidates)
}

// scanPlants walks the plants in order and returns the first living one containing pos.
// A nil candidate set means every plant is tested.
func scanPlants(w donburi.World, pos math.Vec2, candidates map[donburi.Entity]bool) *donburi.Entry {
	var hit *donburi.Entry
	tags.Plant.Each(w, func(e *donburi.Entry) {
		if hit != nil || (candidates != nil && !candidates[e.Entity()]) {
			return
		}
		if plantContains(components.Plant.Get(e), pos) {
			hit = e
		}
	})
	return hit
}

func plantContains(p *components.PlantData, pos math.Vec2) bool {
	return p.Alive && gamemath.PointInBox(pos, p.Position, p.Width, p.Height)
}
