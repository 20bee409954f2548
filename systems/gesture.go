package systems

import (
	"math"

	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
)

// InterpretSwipe classifies a raw swipe. A short horizontal swipe starting near the bottom
// is a move; any sufficiently upward swipe is a throw, escalated to a super throw when the
// sunlight meter is full. Everything else is ignored.
func InterpretSwipe(s components.Swipe, playfieldHeight float64, superReady bool) components.Intent {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y

	if math.Abs(dy) < cfg.Gesture.MoveMaxDY && math.Abs(dx) > cfg.Gesture.MoveMinDX &&
		s.Start.Y > playfieldHeight-cfg.Gesture.MoveZoneHeight {
		return components.Intent{Kind: components.IntentMove, DeltaX: dx}
	}

	if dy < cfg.Gesture.ThrowMaxDY {
		if superReady {
			return components.Intent{Kind: components.IntentSuperThrow}
		}
		intent := components.Intent{Kind: components.IntentThrow}
		intent.Velocity.X = dx / cfg.Drop.DivX * cfg.Drop.PowerBoost
		intent.Velocity.Y = dy / cfg.Drop.DivY * cfg.Drop.PowerBoost
		return intent
	}

	return components.Intent{Kind: components.IntentNone}
}
