package input

import (
	"github.com/automoto/sunsprout/components"
	"github.com/yohamta/donburi/features/math"
)

// PointerID identifies a mouse or touch contact.
type PointerID int

// MousePointer is the id used for the left mouse button. Touch ids are non-negative.
const MousePointer PointerID = -1

// Tracker turns press/release pairs into swipes. Each pointer is tracked independently,
// so two fingers can swipe in the same frame.
type Tracker struct {
	start  map[PointerID]math.Vec2
	last   map[PointerID]math.Vec2
	swipes []components.Swipe
	taps   int
}

func NewTracker() *Tracker {
	return &Tracker{
		start: make(map[PointerID]math.Vec2),
		last:  make(map[PointerID]math.Vec2),
	}
}

// Press starts tracking a pointer at pos.
func (t *Tracker) Press(id PointerID, pos math.Vec2) {
	t.start[id] = pos
	t.last[id] = pos
}

// Move records the latest position of a held pointer.
func (t *Tracker) Move(id PointerID, pos math.Vec2) {
	if _, ok := t.start[id]; ok {
		t.last[id] = pos
	}
}

// Release finishes a pointer's gesture at its last known position. A release without a
// matching press is ignored.
func (t *Tracker) Release(id PointerID) {
	start, ok := t.start[id]
	if !ok {
		return
	}
	end := t.last[id]
	delete(t.start, id)
	delete(t.last, id)

	t.swipes = append(t.swipes, components.Swipe{Start: start, End: end})
	t.taps++
}

// Held reports whether any pointer is down.
func (t *Tracker) Held() bool {
	return len(t.start) > 0
}

// Drain returns the swipes completed since the last call.
func (t *Tracker) Drain() []components.Swipe {
	if len(t.swipes) == 0 {
		return nil
	}
	out := t.swipes
	t.swipes = nil
	t.taps = 0
	return out
}

// Tapped reports whether any pointer was released since the last drain and clears it.
func (t *Tracker) Tapped() bool {
	tapped := t.taps > 0
	t.swipes = nil
	t.taps = 0
	return tapped
}

// Reset forgets held pointers and pending gestures.
func (t *Tracker) Reset() {
	for id := range t.start {
		delete(t.start, id)
		delete(t.last, id)
	}
	t.swipes = nil
	t.taps = 0
}
