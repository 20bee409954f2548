package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IntentKind classifies a swipe
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentThrow
	IntentSuperThrow
)

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "Move"
	case IntentThrow:
		return "Throw"
	case IntentSuperThrow:
		return "SuperThrow"
	}
	return "None"
}

// Intent is the interpreted meaning of one swipe
type Intent struct {
	Kind     IntentKind
	DeltaX   float64   // Move
	Velocity math.Vec2 // Throw
}

// Swipe is a raw gesture in playfield-local coordinates
type Swipe struct {
	Start math.Vec2
	End   math.Vec2
}

// IntentQueueData holds swipes received since the previous step (singleton component).
type IntentQueueData struct {
	Pending []Swipe
}

var IntentQueue = donburi.NewComponentType[IntentQueueData]()
