package factory

import (
	"math/rand"

	"github.com/automoto/sunsprout/archetypes"
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Collision cell size for the plant space
const spaceCellSize = 32

// CreateRound creates the singleton round entry holding meters, queues and the collision space.
func CreateRound(w donburi.World, width, height float64, seed int64) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	components.Playfield.SetValue(round, components.PlayfieldData{Width: width, Height: height})
	components.IntentQueue.SetValue(round, components.IntentQueueData{
		Pending: make([]components.Swipe, 0, 4),
	})
	components.Audio.SetValue(round, components.AudioData{
		PendingSFX: make([]cfg.SoundRequest, 0, 8),
	})
	ResetSpace(round, width, height)
	return round
}

// ResetSpace replaces the collision space with one covering the given playfield.
func ResetSpace(round *donburi.Entry, width, height float64) {
	space := resolv.NewSpace(int(width)+spaceCellSize, int(height)+spaceCellSize, spaceCellSize, spaceCellSize)
	components.Space.Set(round, space)
}
