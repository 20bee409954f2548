package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// Schedule queues effect to fire delay ms of round time from now.
func Schedule(w donburi.World, delay float64, effect components.ScheduledEffect) {
	entry, ok := components.Schedule.First(w)
	if !ok {
		return
	}
	round := GetRound(w)
	s := components.Schedule.Get(entry)
	s.Events = append(s.Events, components.ScheduledEvent{
		FireAt: round.Clock + delay,
		Effect: effect,
	})
}

// UpdateSchedule fires every event that has come due, in the order it was scheduled.
func UpdateSchedule(w donburi.World, dt float64) {
	entry, ok := components.Schedule.First(w)
	if !ok {
		return
	}
	round := GetRound(w)
	s := components.Schedule.Get(entry)

	pending := s.Events[:0]
	var due []components.ScheduledEvent
	for _, ev := range s.Events {
		if ev.FireAt <= round.Clock {
			due = append(due, ev)
			continue
		}
		pending = append(pending, ev)
	}
	s.Events = pending

	for _, ev := range due {
		fire(w, ev.Effect)
	}
}

func fire(w donburi.World, effect components.ScheduledEffect) {
	switch effect {
	case components.EffectFaceBack:
		if player := GetPlayer(w); player != nil {
			player.Facing = cfg.FacingBack
		}
	}
}

// ClearSchedule drops every pending event.
func ClearSchedule(w donburi.World) {
	if entry, ok := components.Schedule.First(w); ok {
		s := components.Schedule.Get(entry)
		s.Events = s.Events[:0]
	}
}
