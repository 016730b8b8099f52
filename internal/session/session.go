// Package session is the top-level game state machine. A Session owns the
// player, the overworld and at most one active level or boss arena, and
// advances them one fixed tick at a time from an input snapshot.
//
// The session never logs and never touches a display: what happened during a
// tick is returned as events, and Render fills a draw list on request.
package session

import (
	"fmt"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/entity"
	"github.com/vovakirdan/ultrabros/internal/overworld"
	"github.com/vovakirdan/ultrabros/internal/physics"
	"github.com/vovakirdan/ultrabros/internal/stage"
)

// Mode is the state of the session state machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModeOverworld
	ModeLevel
	ModeBoss
	ModeGameOver
	ModeVictory
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "MENU"
	case ModeOverworld:
		return "OVERWORLD"
	case ModeLevel:
		return "LEVEL"
	case ModeBoss:
		return "BOSS"
	case ModeGameOver:
		return "GAME_OVER"
	case ModeVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// MenuItems are the title menu entries, top to bottom.
var MenuItems = []string{"Start Game", "Select World", "Options", "Exit"}

const (
	menuStart = 0
	menuExit  = 3
)

// Session is one play session.
type Session struct {
	tuning  config.Tuning
	layouts stage.Layouts
	rng     *core.RNG

	mode      Mode
	player    *entity.Player
	level     *stage.Level
	arena     *stage.Arena
	world     *overworld.Overworld
	menuIndex int
	paused    bool
	quit      bool

	tick      uint64 // Steps since Reset
	modeTicks int    // Steps since the last mode change, drives animation
	stats     runStats
	events    []core.Event
}

// New creates a session. Call Reset before the first Step.
func New(t config.Tuning, lay stage.Layouts) *Session {
	s := &Session{tuning: t, layouts: lay}
	s.Reset(core.RuntimeConfig{TickRate: t.Screen.TickRate})
	return s
}

// Reset starts a completely fresh session at the title menu, seeding the
// RNG from rc.
func (s *Session) Reset(rc core.RuntimeConfig) {
	s.rng = core.NewRNG(rc.Seed)
	s.tick = 0
	s.quit = false
	s.events = nil
	s.resetRun()
	s.mode = ModeMenu
	s.modeTicks = 0
}

// resetRun starts a new run: fresh player and map, title menu selection at
// the top.
func (s *Session) resetRun() {
	s.player = entity.NewPlayer(s.tuning)
	s.world = overworld.New()
	s.level = nil
	s.arena = nil
	s.menuIndex = 0
	s.paused = false
	s.stats = runStats{}
}

// Retune swaps tuning and layouts. They apply from the next level, arena or
// player constructed; whatever is live keeps its values.
func (s *Session) Retune(t config.Tuning, lay stage.Layouts) {
	s.tuning = t
	s.layouts = lay
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.events = nil
	s.tick++
	s.modeTicks++

	if in.Has(core.ActionQuit) {
		s.quit = true
		return core.StepResult{State: s.State()}
	}

	s.dispatch(in)

	if (s.mode == ModeLevel || s.mode == ModeBoss) && !s.paused {
		s.stats.ticks++
		s.advance(in)
	}

	return core.StepResult{State: s.State(), Events: s.events}
}

// dispatch handles the discrete input events for the current mode.
func (s *Session) dispatch(in core.InputFrame) {
	if in.Has(core.ActionWarp) && s.tuning.Debug.Warp {
		s.warp()
		return
	}

	switch s.mode {
	case ModeMenu:
		s.dispatchMenu(in)
	case ModeOverworld:
		s.dispatchOverworld(in)
	case ModeLevel, ModeBoss:
		s.dispatchPlay(in)
	case ModeGameOver:
		if in.Has(core.ActionConfirm) {
			s.resetRun()
			s.setMode(ModeMenu)
		}
	case ModeVictory:
		if in.Has(core.ActionConfirm) {
			s.newRunKeepingMap()
			s.setMode(ModeMenu)
		}
	}
}

func (s *Session) dispatchMenu(in core.InputFrame) {
	n := len(MenuItems)
	switch {
	case in.Has(core.ActionUp):
		s.menuIndex = (s.menuIndex - 1 + n) % n
	case in.Has(core.ActionDown):
		s.menuIndex = (s.menuIndex + 1) % n
	case in.Has(core.ActionConfirm):
		switch s.menuIndex {
		case menuStart:
			s.setMode(ModeOverworld)
		case menuExit:
			s.quit = true
		}
	}
}

func (s *Session) dispatchOverworld(in core.InputFrame) {
	cur := s.world.Current
	switch {
	case in.Has(core.ActionLeft):
		s.world.MoveLeft()
	case in.Has(core.ActionRight):
		s.world.MoveRight()
	case in.Has(core.ActionSlot1):
		s.enterSlot(cur, overworld.SlotLevel1)
	case in.Has(core.ActionSlot2):
		s.enterSlot(cur, overworld.SlotLevel2)
	case in.Has(core.ActionSlot3):
		s.enterSlot(cur, overworld.SlotLevel3)
	case in.Has(core.ActionSlotBoss):
		s.enterSlot(cur, overworld.SlotBoss)
	case in.Has(core.ActionCancel):
		s.setMode(ModeMenu)
	}
}

func (s *Session) dispatchPlay(in core.InputFrame) {
	switch {
	case in.Has(core.ActionCancel):
		s.level = nil
		s.arena = nil
		s.paused = false
		s.setMode(ModeMenu)
	case in.Has(core.ActionPause):
		s.paused = !s.paused
	case s.paused:
	case in.Has(core.ActionJump), in.Has(core.ActionUp):
		s.player.Jump()
	}
}

// enterSlot starts a level or the boss of a world when the slot is
// unlocked. Locked slots are ignored.
func (s *Session) enterSlot(world, slot int) {
	if !s.world.Unlocked(world, slot) {
		return
	}
	if slot == overworld.SlotBoss {
		s.startArena(world + 1)
		return
	}
	s.startLevel(world+1, slot+1)
}

func (s *Session) startLevel(world, index int) {
	s.level = stage.NewLevel(world, index, s.layouts, s.tuning)
	s.arena = nil
	s.player = s.player.Respawn(s.tuning)
	s.paused = false
	s.setMode(ModeLevel)
}

func (s *Session) startArena(world int) {
	s.arena = stage.NewArena(world, s.layouts, s.tuning)
	s.level = nil
	s.player = s.player.Respawn(s.tuning)
	s.paused = false
	s.setMode(ModeBoss)
}

// warp is the debug quick-load. It ignores unlock gating and leaves the
// completion grid alone.
func (s *Session) warp() {
	switch s.mode {
	case ModeLevel:
		s.startLevel(s.level.World, s.level.Index%stage.LevelsPerWorld+1)
	case ModeBoss:
		s.startLevel(s.arena.World, 1)
	case ModeGameOver:
		s.resetRun()
		s.startLevel(s.world.Current+1, 1)
	case ModeVictory:
		s.newRunKeepingMap()
		s.startLevel(s.world.Current+1, 1)
	default:
		s.startLevel(s.world.Current+1, 1)
	}
}

// newRunKeepingMap starts a new run after a victory. Cleared slots stay
// cleared for the rest of the session.
func (s *Session) newRunKeepingMap() {
	s.player = entity.NewPlayer(s.tuning)
	s.level = nil
	s.arena = nil
	s.menuIndex = 0
	s.paused = false
	s.stats = runStats{}
}

// advance runs one tick of the active level or arena.
func (s *Session) advance(in core.InputFrame) {
	switch {
	case in.IsHeld(core.ActionLeft):
		s.player.MoveLeft()
	case in.IsHeld(core.ActionRight):
		s.player.MoveRight()
	default:
		s.player.Stop()
	}

	platforms := s.platforms()
	if !s.player.Update(platforms, s.tuning.Screen.Width, s.tuning.Screen.Height) {
		s.player.LoseLife()
		s.stats.deaths++
		s.emit(EventFallDeath, fmt.Sprintf("lives=%d", s.player.Lives))
		if s.player.Lives <= 0 {
			s.endRun(ModeGameOver, OutcomeGameOver)
			return
		}
		s.player = s.player.Respawn(s.tuning)
		s.emit(EventRespawn, "")
	}

	if s.mode == ModeLevel {
		s.advanceLevel()
	} else {
		s.advanceArena()
	}
}

func (s *Session) advanceLevel() {
	for _, it := range s.level.Update(s.player) {
		s.emitInteraction(it)
	}
	if !s.level.Completed {
		return
	}

	w, idx := s.level.World, s.level.Index
	s.world.Complete(w-1, idx-1)
	s.stats.levelsCleared++
	s.emit(EventLevelCleared, fmt.Sprintf("%d-%d", w, idx))
	s.level = nil
	s.setMode(ModeOverworld)
}

func (s *Session) advanceArena() {
	for _, it := range s.arena.Update(s.player, s.rng) {
		s.emitInteraction(it)
	}
	if !s.arena.Completed {
		return
	}

	w := s.arena.World
	s.world.Complete(w-1, overworld.SlotBoss)
	s.stats.bossesDefeated++
	s.emit(EventBossDefeated, fmt.Sprintf("world=%d", w))
	s.arena = nil

	if w-1 == overworld.Worlds-1 {
		s.endRun(ModeVictory, OutcomeVictory)
		return
	}
	s.world.AdvanceWorld()
	s.emit(EventWorldAdvanced, fmt.Sprintf("world=%d", s.world.Current+1))
	s.setMode(ModeOverworld)
}

func (s *Session) emitInteraction(it stage.Interaction) {
	switch it.Kind {
	case stage.InteractionStomp:
		s.emit(EventStomp, fmt.Sprintf("enemy=%d", it.Index))
	case stage.InteractionDamage:
		s.emit(EventDamage, "enemy power="+s.player.Power.String())
	case stage.InteractionProjectileHit:
		s.emit(EventDamage, "projectile power="+s.player.Power.String())
	case stage.InteractionCoin:
		s.emit(EventCoin, fmt.Sprintf("coins=%d", s.player.Coins))
	case stage.InteractionBossHit:
		s.emit(EventBossHit, fmt.Sprintf("hp=%d", s.arena.Boss.HP))
	}
}

func (s *Session) endRun(mode Mode, outcome Outcome) {
	s.stats.outcome = outcome
	s.level = nil
	s.arena = nil
	s.paused = false
	s.setMode(mode)
	s.emit(EventRunEnded, string(outcome))
}

func (s *Session) setMode(m Mode) {
	if m == s.mode {
		return
	}
	s.emit(EventModeChanged, s.mode.String()+"->"+m.String())
	s.mode = m
	s.modeTicks = 0
}

func (s *Session) emit(kind core.EventKind, detail string) {
	s.events = append(s.events, core.Event{Kind: kind, Detail: detail})
}

func (s *Session) platforms() []physics.Platform {
	if s.level != nil {
		return s.level.Platforms
	}
	return s.arena.Platforms
}

// State returns the externally visible session state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.player.Coins,
		Mode:     s.mode.String(),
		GameOver: s.mode == ModeGameOver || s.mode == ModeVictory,
		Paused:   s.paused,
		Quit:     s.quit,
	}
}

// Summary reports the current run.
func (s *Session) Summary() RunSummary {
	return RunSummary{
		Outcome:        s.stats.outcome,
		Coins:          s.player.Coins,
		LevelsCleared:  s.stats.levelsCleared,
		BossesDefeated: s.stats.bossesDefeated,
		Deaths:         s.stats.deaths,
		Ticks:          s.stats.ticks,
		World:          s.world.Current + 1,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Player returns the active player.
func (s *Session) Player() *entity.Player { return s.player }

// Level returns the active level, or nil.
func (s *Session) Level() *stage.Level { return s.level }

// Arena returns the active boss arena, or nil.
func (s *Session) Arena() *stage.Arena { return s.arena }

// Overworld returns the progression map.
func (s *Session) Overworld() *overworld.Overworld { return s.world }

// MenuIndex returns the highlighted title menu entry.
func (s *Session) MenuIndex() int { return s.menuIndex }

// Tuning returns the tuning new stages are built with.
func (s *Session) Tuning() config.Tuning { return s.tuning }

// Tick returns the number of steps since Reset.
func (s *Session) Tick() uint64 { return s.tick }
