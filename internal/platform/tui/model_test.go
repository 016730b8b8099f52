package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/session"
	"github.com/vovakirdan/ultrabros/internal/stage"
	"github.com/vovakirdan/ultrabros/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Tuning:  config.DefaultTuning(),
		Layouts: stage.DefaultLayouts(),
		Store:   store,
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Player:  "tester",
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Time{}))
	return next.(Model), cmd
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().Mode() != session.ModeMenu {
		t.Fatal("keys should wait for the next tick")
	}

	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeOverworld {
		t.Fatalf("Mode() = %s, expected OVERWORLD", m.Session().Mode())
	}

	// Two presses in one frame are delivered on consecutive ticks.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeMenu {
		t.Fatalf("Mode() = %s, expected MENU", m.Session().Mode())
	}
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeOverworld {
		t.Errorf("Mode() = %s, expected OVERWORLD", m.Session().Mode())
	}
}

func TestModelHeldWalk(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeLevel {
		t.Fatalf("Mode() = %s, expected LEVEL", m.Session().Mode())
	}

	x := m.Session().Player().X
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < DefaultHeldWindow; i++ {
		m, _ = tick(t, m)
	}
	if got := m.Session().Player().X; got != x+5*DefaultHeldWindow {
		t.Errorf("X = %v, expected %v after the held window", got, x+5*DefaultHeldWindow)
	}

	m, _ = tick(t, m)
	if m.Session().Player().VX != 0 {
		t.Errorf("VX = %v, expected the key released", m.Session().Player().VX)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := tick(t, m)

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m, _ = tick(t, m)

	p := m.Session().Player()
	p.Lives = 1
	p.Coins = 4
	p.Y = 700
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeGameOver {
		t.Fatalf("Mode() = %s, expected GAME_OVER", m.Session().Mode())
	}
	for i := 0; i < 5; i++ {
		m, _ = tick(t, m)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Outcome != "game_over" || r.Coins != 4 || r.Player != "tester" || r.Deaths != 1 {
		t.Errorf("stored run = %+v", r)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	out := m.View()
	if !strings.Contains(out, "Start Game") {
		t.Errorf("View() missing the menu, got %q", out)
	}
	if got := strings.Count(out, "\n"); got != 23 {
		t.Errorf("View() has %d newlines, expected 23", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if got := strings.Count(m.View(), "\n"); got != 29 {
		t.Errorf("View() after resize has %d newlines, expected 29", got)
	}
}

func TestModelReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("goal:\n  x: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewModel(Options{
		Tuning:  config.DefaultTuning(),
		Layouts: stage.DefaultLayouts(),
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Reload: func() (config.Tuning, stage.Layouts, error) {
			tun, err := config.Load(path)
			return tun, stage.DefaultLayouts(), err
		},
	})

	next, _ := m.Update(reloadMsg{path: path})
	m = next.(Model)
	if got := m.Session().Tuning().Goal.X; got != 300 {
		t.Errorf("Goal.X = %v, expected 300 after reload", got)
	}
}

func TestRunFromSummary(t *testing.T) {
	sum := session.RunSummary{
		Outcome:        session.OutcomeVictory,
		Coins:          9,
		LevelsCleared:  15,
		BossesDefeated: 5,
		Deaths:         2,
		Ticks:          600,
		World:          5,
	}
	r := RunFromSummary(sum, "alice")
	want := storage.Run{
		Outcome:        "victory",
		Coins:          9,
		LevelsCleared:  15,
		BossesDefeated: 5,
		Deaths:         2,
		World:          5,
		Ticks:          600,
		Player:         "alice",
	}
	if r != want {
		t.Errorf("RunFromSummary() = %+v, expected %+v", r, want)
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{
		{Outcome: "victory", Coins: 9, LevelsCleared: 15, BossesDefeated: 5, Ticks: 3600, Player: "alice"},
		{Outcome: "game_over", Coins: 2, Ticks: 90, Player: "local"},
	}, 60)

	if len(rows) != 2 {
		t.Fatalf("RunRows() returned %d rows", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][2] != "VICTORY" || rows[0][5] != "1m0s" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "game over" || rows[1][5] != "2s" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestModelSavesRunAfterWarpRestart(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tuning := config.DefaultTuning()
	tuning.Debug.Warp = true
	m := NewModel(Options{
		Tuning:  tuning,
		Layouts: stage.DefaultLayouts(),
		Store:   store,
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Player:  "tester",
	})

	die := func() {
		t.Helper()
		p := m.Session().Player()
		p.Lives = 1
		p.Y = 700
		m, _ = tick(t, m)
		if m.Session().Mode() != session.ModeGameOver {
			t.Fatalf("Mode() = %s, expected GAME_OVER", m.Session().Mode())
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeLevel {
		t.Fatalf("Mode() = %s, expected LEVEL after warp", m.Session().Mode())
	}
	die()

	// Warping out of GAME_OVER starts the next run without the title menu.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m, _ = tick(t, m)
	if m.Session().Mode() != session.ModeLevel {
		t.Fatalf("Mode() = %s, expected LEVEL after warp", m.Session().Mode())
	}
	die()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("stored %d runs, expected 2", len(runs))
	}
}
