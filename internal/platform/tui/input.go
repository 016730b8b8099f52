package tui

import "github.com/vovakirdan/ultrabros/internal/core"

// DefaultHeldWindow is how many ticks a left/right press keeps the key held.
// Terminals report no key-up events, so auto-repeat refreshes the window
// while the key stays down.
const DefaultHeldWindow = 9

// maxQueued bounds the discrete action queue.
const maxQueued = 16

// inputQueue turns asynchronous key messages into one InputFrame per tick.
// Discrete actions are delivered first-in first-out, one per tick; held
// actions stay down until their window runs out.
type inputQueue struct {
	pending []core.Action
	held    map[core.Action]int
	window  int
}

func newInputQueue(window int) *inputQueue {
	if window <= 0 {
		window = DefaultHeldWindow
	}
	return &inputQueue{
		held:   make(map[core.Action]int),
		window: window,
	}
}

// Push records a key press.
func (q *inputQueue) Push(a core.Action) {
	if a == core.ActionNone {
		return
	}

	if Holdable(a) {
		// Pressing one direction releases the other.
		delete(q.held, core.ActionLeft)
		delete(q.held, core.ActionRight)
		q.held[a] = q.window
	}

	// Quit jumps the queue so it is honoured at the next tick.
	if a == core.ActionQuit {
		q.pending = append([]core.Action{a}, q.pending...)
		return
	}
	if len(q.pending) >= maxQueued {
		return
	}
	q.pending = append(q.pending, a)
}

// Next builds the frame for one tick and ages the held keys.
func (q *inputQueue) Next() core.InputFrame {
	f := core.NewInputFrame()
	if len(q.pending) > 0 {
		f.Set(q.pending[0])
		q.pending = q.pending[1:]
	}
	for a, left := range q.held {
		f.Hold(a)
		if left <= 1 {
			delete(q.held, a)
		} else {
			q.held[a] = left - 1
		}
	}
	return f
}

// Len returns the number of queued discrete actions.
func (q *inputQueue) Len() int {
	return len(q.pending)
}
