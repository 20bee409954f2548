package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlantData struct {
	Position math.Vec2 // centre
	Width    float64
	Height   float64
	Thirst   float64 // 0..100, 0 kills the plant for the rest of the round
	Alive    bool
	Grow     float64 // watering pulse, decays from 1 to 0
}

var Plant = donburi.NewComponentType[PlantData]()

// Water restores a living plant to full and starts the grow pulse.
func (p *PlantData) Water(maxThirst float64) {
	p.Thirst = maxThirst
	p.Grow = 1
}
