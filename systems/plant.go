package systems

import (
	"math"

	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// UpdatePlants drains thirst from living plants and decays their grow pulse. A plant whose
// thirst reaches zero dies and stays dead until the next round.
func UpdatePlants(w donburi.World, dt float64) {
	components.Plant.Each(w, func(e *donburi.Entry) {
		p := components.Plant.Get(e)
		if !p.Alive {
			p.Thirst = 0
			return
		}

		p.Thirst = math.Max(0, p.Thirst-cfg.Plant.ThirstDecay*dt/1000)
		if p.Thirst <= 0 {
			p.Alive = false
			p.Thirst = 0
		}
		if p.Grow > 0 {
			p.Grow = math.Max(0, p.Grow-dt/cfg.Plant.GrowDecayPeriod)
		}
	})
}

// LivingPlants counts plants still alive.
func LivingPlants(w donburi.World) int {
	n := 0
	components.Plant.Each(w, func(e *donburi.Entry) {
		if components.Plant.Get(e).Alive {
			n++
		}
	})
	return n
}
