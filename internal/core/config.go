package core

// Logical play-field size. The simulation always runs in this coordinate space;
// front ends scale it to their output surface.
const (
	LogicalWidth  = 800
	LogicalHeight = 600
)

// RuntimeConfig contains configuration passed to the session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Output width (cells for the TUI, pixels for the window)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  LogicalWidth,
		ScreenH:  LogicalHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int    // Coins collected this run
	Mode     string // Name of the active mode
	GameOver bool   // Whether the run has ended (game over or victory)
	Paused   bool   // Whether the active level or arena is paused
	Quit     bool   // Whether the player asked to leave the program
}

// EventKind names a kind of Event. Values are declared by the session package.
type EventKind string

// Event is something noteworthy that happened during a tick.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
