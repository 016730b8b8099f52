package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ultrabros/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"2", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, core.ActionSlot2, false},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, core.ActionSlotBoss, false},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, core.ActionWarp, false},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestInputQueueFIFO(t *testing.T) {
	q := newInputQueue(3)
	q.Push(core.ActionDown)
	q.Push(core.ActionDown)
	q.Push(core.ActionConfirm)
	q.Push(core.ActionNone)

	want := []core.Action{core.ActionDown, core.ActionDown, core.ActionConfirm}
	for i, a := range want {
		f := q.Next()
		if !f.Has(a) || len(f.Actions) != 1 {
			t.Errorf("tick %d: Actions = %v, expected only %v", i, f.Actions, a)
		}
	}
	if f := q.Next(); len(f.Actions) != 0 {
		t.Errorf("Actions = %v, expected empty queue", f.Actions)
	}
}

func TestInputQueueQuitJumpsQueue(t *testing.T) {
	q := newInputQueue(3)
	q.Push(core.ActionDown)
	q.Push(core.ActionQuit)

	if f := q.Next(); !f.Has(core.ActionQuit) {
		t.Errorf("Actions = %v, expected quit first", f.Actions)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", q.Len())
	}
}

func TestInputQueueBounded(t *testing.T) {
	q := newInputQueue(3)
	for i := 0; i < maxQueued+10; i++ {
		q.Push(core.ActionUp)
	}
	if q.Len() != maxQueued {
		t.Errorf("Len() = %d, expected %d", q.Len(), maxQueued)
	}
}

func TestInputQueueHeldWindow(t *testing.T) {
	q := newInputQueue(3)
	q.Push(core.ActionRight)

	for i := 0; i < 3; i++ {
		if f := q.Next(); !f.IsHeld(core.ActionRight) {
			t.Errorf("tick %d: right not held", i)
		}
	}
	if f := q.Next(); f.IsHeld(core.ActionRight) {
		t.Error("right still held after the window")
	}

	// Auto-repeat refreshes the window.
	q.Push(core.ActionRight)
	q.Next()
	q.Next()
	q.Push(core.ActionRight)
	for i := 0; i < 3; i++ {
		if f := q.Next(); !f.IsHeld(core.ActionRight) {
			t.Errorf("refreshed tick %d: right not held", i)
		}
	}
}

func TestInputQueueOppositeReleases(t *testing.T) {
	q := newInputQueue(5)
	q.Push(core.ActionLeft)
	q.Push(core.ActionRight)

	f := q.Next()
	if f.IsHeld(core.ActionLeft) || !f.IsHeld(core.ActionRight) {
		t.Errorf("Held = %v, expected only right", f.Held)
	}
}

func TestHoldable(t *testing.T) {
	if !Holdable(core.ActionLeft) || !Holdable(core.ActionRight) {
		t.Error("left and right should be holdable")
	}
	if Holdable(core.ActionJump) {
		t.Error("jump should not be holdable")
	}
}
