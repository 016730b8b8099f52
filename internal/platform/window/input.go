package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// binding maps a key to a discrete action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// discreteKeys in priority order; at most one fires per tick.
var discreteKeys = []binding{
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionCancel},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyDigit1, core.ActionSlot1},
	{ebiten.KeyDigit2, core.ActionSlot2},
	{ebiten.KeyDigit3, core.ActionSlot3},
	{ebiten.KeyB, core.ActionSlotBoss},
	{ebiten.KeyN, core.ActionWarp},
}

// readInput samples the keyboard for one tick.
func readInput() core.InputFrame {
	f := core.NewInputFrame()

	for _, b := range discreteKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			f.Set(b.action)
			break
		}
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		f.Hold(core.ActionLeft)
	case right && !left:
		f.Hold(core.ActionRight)
	}

	return f
}
