package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DropData is a thrown water drop
type DropData struct {
	Position math.Vec2
	Velocity math.Vec2 // px per frame
	Life     float64   // ms remaining
}

var Drop = donburi.NewComponentType[DropData]()

// OrbData is the falling light orb. At most one exists.
type OrbData struct {
	Position math.Vec2
	Radius   float64
	SpeedY   float64
}

var Orb = donburi.NewComponentType[OrbData]()
