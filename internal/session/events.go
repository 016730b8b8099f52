package session

import "github.com/vovakirdan/ultrabros/internal/core"

// Events reported in core.StepResult.Events.
const (
	EventModeChanged   core.EventKind = "mode_changed"
	EventFallDeath     core.EventKind = "fall_death"
	EventRespawn       core.EventKind = "respawn"
	EventStomp         core.EventKind = "stomp"
	EventDamage        core.EventKind = "damage"
	EventCoin          core.EventKind = "coin"
	EventBossHit       core.EventKind = "boss_hit"
	EventLevelCleared  core.EventKind = "level_cleared"
	EventBossDefeated  core.EventKind = "boss_defeated"
	EventWorldAdvanced core.EventKind = "world_advanced"
	EventRunEnded      core.EventKind = "run_ended"
)

// Outcome is how a run finished.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeGameOver Outcome = "game_over"
	OutcomeVictory  Outcome = "victory"
)

// RunSummary describes one run, from the title menu to game over or victory.
type RunSummary struct {
	Outcome        Outcome
	Coins          int
	LevelsCleared  int
	BossesDefeated int
	Deaths         int
	Ticks          uint64
	World          int // Furthest world reached, 1-based
}

// runStats are the counters behind RunSummary.
type runStats struct {
	levelsCleared  int
	bossesDefeated int
	deaths         int
	ticks          uint64
	outcome        Outcome
}

// HasEvent reports whether events contains an event of the given kind.
func HasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
