package components

import (
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is the gardener. Position.X is the sprite centre, Position.Y its top edge.
type PlayerData struct {
	Position math.Vec2
	TargetX  float64 // movement goal set by swipes
	Ease     float64
	Facing   cfg.Facing
}

var Player = donburi.NewComponentType[PlayerData]()
