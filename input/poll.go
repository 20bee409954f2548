package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slices for touch IDs to avoid allocations
var (
	pressedTouchIDs  []ebiten.TouchID
	heldTouchIDs     []ebiten.TouchID
	releasedTouchIDs []ebiten.TouchID
)

// Poll feeds this frame's mouse and touch state into the tracker. Must run once per Update.
func Poll(t *Tracker) {
	pollMouse(t)
	pollTouches(t)
}

func pollMouse(t *Tracker) {
	x, y := ebiten.CursorPosition()
	pos := math.NewVec2(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.Press(MousePointer, pos)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		t.Move(MousePointer, pos)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		t.Move(MousePointer, pos)
		t.Release(MousePointer)
	}
}

func pollTouches(t *Tracker) {
	pressedTouchIDs = inpututil.AppendJustPressedTouchIDs(pressedTouchIDs[:0])
	for _, id := range pressedTouchIDs {
		x, y := ebiten.TouchPosition(id)
		t.Press(PointerID(id), math.NewVec2(float64(x), float64(y)))
	}

	heldTouchIDs = ebiten.AppendTouchIDs(heldTouchIDs[:0])
	for _, id := range heldTouchIDs {
		x, y := ebiten.TouchPosition(id)
		t.Move(PointerID(id), math.NewVec2(float64(x), float64(y)))
	}

	// Released touches report no position, so the last held position ends the swipe
	releasedTouchIDs = inpututil.AppendJustReleasedTouchIDs(releasedTouchIDs[:0])
	for _, id := range releasedTouchIDs {
		t.Release(PointerID(id))
	}
}
