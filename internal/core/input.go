package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, W - menu navigation
	ActionDown            // Down arrow, S - menu navigation
	ActionLeft            // Left arrow, A - walk left (held) / previous world
	ActionRight           // Right arrow, D - walk right (held) / next world
	ActionJump            // Space, Up - jump in a level or arena
	ActionConfirm         // Enter - confirm selection
	ActionCancel          // Escape - back to the title menu
	ActionPause           // P - pause/unpause a level or arena
	ActionQuit            // Q, Ctrl+C - exit the program
	ActionSlot1           // 1 - enter level 1 of the current world
	ActionSlot2           // 2 - enter level 2 of the current world
	ActionSlot3           // 3 - enter level 3 of the current world
	ActionSlotBoss        // B - enter the boss arena of the current world
	ActionWarp            // N - debug quick-load, only honoured when warp is enabled
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionSlotBoss:
		return "SlotBoss"
	case ActionWarp:
		return "Warp"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick.
// Actions holds discrete "pressed this frame" events; Held holds continuous
// "currently down" state used for walking.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Press returns a frame carrying a single discrete action.
func Press(a Action) InputFrame {
	f := NewInputFrame()
	f.Set(a)
	return f
}

// HoldOnly returns a frame with the given actions held and no discrete event.
func HoldOnly(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}
