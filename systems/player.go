package systems

import (
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer eases the player toward its target and keeps it anchored to the playfield
// bottom. The ease factor is applied once per step regardless of dt.
func UpdatePlayer(w donburi.World, dt float64) {
	player := GetPlayer(w)
	if player == nil {
		return
	}
	pf := GetPlayfield(w)

	player.Position.X = gamemath.EaseToward(player.Position.X, player.TargetX, player.Ease)
	player.Position.Y = pf.Height - cfg.Player.BottomOffset
}
