package components

import "github.com/yohamta/donburi"

// ScheduledEffect identifies a deferred mutation
type ScheduledEffect int

const (
	EffectNone ScheduledEffect = iota
	EffectFaceBack
)

// ScheduledEvent fires once the round clock reaches FireAt
type ScheduledEvent struct {
	FireAt float64 // round clock (ms)
	Effect ScheduledEffect
}

// ScheduleData is the deferred event queue (singleton component)
type ScheduleData struct {
	Events []ScheduledEvent
}

var Schedule = donburi.NewComponentType[ScheduleData]()
