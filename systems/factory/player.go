package factory

import (
	"github.com/automoto/sunsprout/archetypes"
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer places the gardener at the bottom centre of the playfield.
func CreatePlayer(w donburi.World, pf *components.PlayfieldData) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	x := pf.Width / 2
	components.Player.SetValue(player, components.PlayerData{
		Position: math.NewVec2(x, pf.Height-cfg.Player.BottomOffset),
		TargetX:  x,
		Ease:     cfg.Player.Ease,
		Facing:   cfg.FacingBack,
	})
	return player
}
