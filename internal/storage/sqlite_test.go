package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	// Reopening runs the migration again against the existing schema.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store.Close()
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestSaveRunRequiresOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Coins: 3}); err == nil {
		t.Error("SaveRun() without outcome should fail")
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Outcome: "game_over", Coins: 4, LevelsCleared: 1, Deaths: 3, World: 1, Ticks: 600},
		{Outcome: "victory", Coins: 12, LevelsCleared: 15, BossesDefeated: 5, World: 5, Ticks: 36000, Player: "alice"},
		{Outcome: "game_over", Coins: 12, LevelsCleared: 6, BossesDefeated: 2, Deaths: 3, World: 3, Ticks: 9000},
		{Outcome: "game_over", Coins: 0, Deaths: 3, World: 1, Ticks: 120},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveRun() id = %d, expected positive", id)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns(3) returned %d runs", len(top))
	}
	if top[0].Outcome != "victory" || top[0].Coins != 12 {
		t.Errorf("TopRuns()[0] = %+v, expected the 12-coin victory", top[0])
	}
	if top[1].Coins != 12 || top[2].Coins != 4 {
		t.Errorf("TopRuns() coins = %d, %d, expected 12, 4", top[1].Coins, top[2].Coins)
	}
	if top[0].Player != "alice" || top[1].Player != "local" {
		t.Errorf("players = %q, %q, expected alice, local", top[0].Player, top[1].Player)
	}
	if top[0].Ticks != 36000 || top[0].BossesDefeated != 5 || top[0].World != 5 {
		t.Errorf("TopRuns()[0] = %+v, fields not round-tripped", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Ticks != 120 || recent[1].Ticks != 9000 {
		t.Errorf("RecentRuns(2) = %+v, expected the last two saved, newest first", recent)
	}
}

func TestBestCoinsAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestCoins()
	if err != nil {
		t.Fatalf("BestCoins() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestCoins() on empty store = %d, expected 0", best)
	}
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Stats() on empty store = %+v", st)
	}

	store.SaveRun(Run{Outcome: "victory", Coins: 9, BossesDefeated: 5})
	store.SaveRun(Run{Outcome: "game_over", Coins: 20, BossesDefeated: 1})

	best, _ = store.BestCoins()
	if best != 20 {
		t.Errorf("BestCoins() = %d, expected 20", best)
	}
	st, _ = store.Stats()
	want := Stats{Runs: 2, Victories: 1, BestCoins: 20, Bosses: 6}
	if st != want {
		t.Errorf("Stats() = %+v, expected %+v", st, want)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Outcome: "victory", Coins: 1})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("RecentRuns() after clear = %d runs", len(runs))
	}
}

func TestRunDuration(t *testing.T) {
	tests := []struct {
		ticks uint64
		rate  int
		want  time.Duration
	}{
		{60, 60, time.Second},
		{90, 60, 1500 * time.Millisecond},
		{0, 60, 0},
		{60, 0, 0},
	}

	for _, tt := range tests {
		if got := (Run{Ticks: tt.ticks}).Duration(tt.rate); got != tt.want {
			t.Errorf("Duration(%d ticks @ %d) = %v, expected %v", tt.ticks, tt.rate, got, tt.want)
		}
	}
}
