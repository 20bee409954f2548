package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/yohamta/donburi"
)

// QueueSwipe records a swipe for the next step.
func QueueSwipe(w donburi.World, s components.Swipe) {
	entry, ok := components.IntentQueue.First(w)
	if !ok {
		return
	}
	q := components.IntentQueue.Get(entry)
	q.Pending = append(q.Pending, s)
}

// ClearIntents drops every queued swipe.
func ClearIntents(w donburi.World) {
	if entry, ok := components.IntentQueue.First(w); ok {
		q := components.IntentQueue.Get(entry)
		q.Pending = q.Pending[:0]
	}
}

// ApplyIntents interprets queued swipes in arrival order against the live meters, so a
// second upward swipe in the same frame as a super throw becomes a normal throw.
func ApplyIntents(w donburi.World, dt float64) {
	entry, ok := components.IntentQueue.First(w)
	if !ok {
		return
	}
	q := components.IntentQueue.Get(entry)
	if len(q.Pending) == 0 {
		return
	}

	round := GetRound(w)
	pf := GetPlayfield(w)
	for _, s := range q.Pending {
		ApplyIntent(w, InterpretSwipe(s, pf.Height, round.SuperReady))
	}
	q.Pending = q.Pending[:0]
}

// ApplyIntent executes a single interpreted intent.
func ApplyIntent(w donburi.World, intent components.Intent) {
	player := GetPlayer(w)
	if player == nil {
		return
	}

	switch intent.Kind {
	case components.IntentMove:
		pf := GetPlayfield(w)
		player.TargetX = gamemath.Clamp(player.Position.X+intent.DeltaX, cfg.Player.MinX, pf.Width-cfg.Player.MinX)

	case components.IntentThrow:
		player.Facing = cfg.FacingFront
		Schedule(w, cfg.Player.FrontDuration, components.EffectFaceBack)
		factory.CreateDrop(w, getSpace(w), player.Position, intent.Velocity)

	case components.IntentSuperThrow:
		TriggerSuper(w)
	}
}
