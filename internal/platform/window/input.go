package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// keyBinding maps physical keys to an action. Held bindings fire on every tick
// the key is down; the rest fire only on the tick the key goes down.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
	held   bool
}

var keyBindings = []keyBinding{
	{action: core.ActionLeft, keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, held: true},
	{action: core.ActionRight, keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, held: true},
	{action: core.ActionLaunch, keys: []ebiten.Key{ebiten.KeySpace}},
	{action: core.ActionConfirm, keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{action: core.ActionBack, keys: []ebiten.Key{ebiten.KeyEscape}},
	{action: core.ActionPause, keys: []ebiten.Key{ebiten.KeyP}},
	{action: core.ActionQuit, keys: []ebiten.Key{ebiten.KeyQ}},
}

// keySource reports key state; ebiten's polling functions satisfy it.
type keySource struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// collectKeys sets every action whose binding is active this tick.
func collectKeys(frame *core.InputFrame, src keySource) {
	for _, b := range keyBindings {
		check := src.justPressed
		if b.held {
			check = src.pressed
		}
		for _, k := range b.keys {
			if check(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// pointerTracker turns absolute cursor positions into motion events.
type pointerTracker struct {
	x, y  int
	known bool
}

// update records the cursor at (x, y) and its button state on the frame.
func (t *pointerTracker) update(frame *core.InputFrame, x, y int, clicked bool) {
	if !t.known || x != t.x || y != t.y {
		frame.MovePointer(float64(x), float64(y))
		t.x, t.y, t.known = x, y, true
	}
	if clicked {
		frame.Click(float64(x), float64(y))
	}
}
