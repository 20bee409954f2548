package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is a short-lived decorative droplet or spark
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64 // ms remaining
}

var Particle = donburi.NewComponentType[ParticleData]()
