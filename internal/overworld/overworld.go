// Package overworld tracks progression across worlds: which levels and
// bosses have been cleared and which world the player is standing on.
package overworld

import "github.com/vovakirdan/ultrabros/internal/core"

// Worlds is the number of worlds on the map.
const Worlds = 5

// Slots per world: three levels then the boss.
const Slots = 4

// Slot indexes within a world.
const (
	SlotLevel1 = 0
	SlotLevel2 = 1
	SlotLevel3 = 2
	SlotBoss   = 3
)

// Anchors are the map positions of the world nodes.
var Anchors = [Worlds]core.Point{
	{X: 100, Y: 300},
	{X: 250, Y: 250},
	{X: 400, Y: 200},
	{X: 550, Y: 250},
	{X: 700, Y: 300},
}

// Overworld is the progression map. Grid entries only ever go from false
// to true during a session.
type Overworld struct {
	Current int // 0-based world index
	Grid    [Worlds][Slots]bool
}

// New creates a map with nothing cleared, standing on the first world.
func New() *Overworld {
	return &Overworld{}
}

// Unlocked reports whether a slot of a world may be entered. The first
// level is always open, levels 2 and 3 need the previous slot cleared, and
// the boss needs all three levels.
func (o *Overworld) Unlocked(world, slot int) bool {
	if !validWorld(world) || slot < 0 || slot >= Slots {
		return false
	}
	switch slot {
	case SlotLevel1:
		return true
	case SlotBoss:
		g := o.Grid[world]
		return g[SlotLevel1] && g[SlotLevel2] && g[SlotLevel3]
	default:
		return o.Grid[world][slot-1]
	}
}

// Complete marks a slot cleared. Clearing level 1 or 2 also marks the next
// level, so it opens without replaying. It never clears a slot.
func (o *Overworld) Complete(world, slot int) {
	if !validWorld(world) || slot < 0 || slot >= Slots {
		return
	}
	o.Grid[world][slot] = true
	if slot < SlotLevel3 {
		o.Grid[world][slot+1] = true
	}
}

// Cleared reports whether a slot has been cleared.
func (o *Overworld) Cleared(world, slot int) bool {
	if !validWorld(world) || slot < 0 || slot >= Slots {
		return false
	}
	return o.Grid[world][slot]
}

// CanMoveRight reports whether the player may walk to the next world: the
// current world's boss must be beaten.
func (o *Overworld) CanMoveRight() bool {
	return o.Current < Worlds-1 && o.Grid[o.Current][SlotBoss]
}

// CanMoveLeft reports whether the player may walk to the previous world.
// The gate is on the target world's boss, not the current one.
func (o *Overworld) CanMoveLeft() bool {
	return o.Current > 0 && o.Grid[o.Current-1][SlotBoss]
}

// MoveLeft walks one world left when allowed. It reports whether it moved.
func (o *Overworld) MoveLeft() bool {
	if !o.CanMoveLeft() {
		return false
	}
	o.Current--
	return true
}

// MoveRight walks one world right when allowed. It reports whether it moved.
func (o *Overworld) MoveRight() bool {
	if !o.CanMoveRight() {
		return false
	}
	o.Current++
	return true
}

// AdvanceWorld moves to the next world after a boss, stopping at the last.
func (o *Overworld) AdvanceWorld() {
	if o.Current < Worlds-1 {
		o.Current++
	}
}

// Anchor returns the map position of the current world.
func (o *Overworld) Anchor() core.Point {
	return Anchors[o.Current]
}

// ClearedCount returns the number of cleared slots across all worlds.
func (o *Overworld) ClearedCount() int {
	n := 0
	for _, w := range o.Grid {
		for _, done := range w {
			if done {
				n++
			}
		}
	}
	return n
}

func validWorld(world int) bool {
	return world >= 0 && world < Worlds
}
