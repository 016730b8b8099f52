package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ultrabros/internal/config"
)

func TestSettingsApply(t *testing.T) {
	base := config.DefaultTuning()

	tests := []struct {
		name      string
		s         settings
		wantLives int
		wantTPS   int
		wantWarp  bool
		wantErr   bool
	}{
		{"defaults", settings{}, base.Player.StartLives, base.Screen.TickRate, false, false},
		{"easy", settings{difficulty: "easy"}, 5, base.Screen.TickRate, false, false},
		{"hard", settings{difficulty: "hard"}, 1, base.Screen.TickRate, false, false},
		{"fps override", settings{fps: 30}, base.Player.StartLives, 30, false, false},
		{"warp", settings{warp: true}, base.Player.StartLives, base.Screen.TickRate, true, false},
		{"bad difficulty", settings{difficulty: "nightmare"}, 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.apply(base)
			if tt.wantErr {
				if err == nil {
					t.Error("apply() error = nil, expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("apply() error = %v", err)
			}
			if got.Player.StartLives != tt.wantLives {
				t.Errorf("StartLives = %d, expected %d", got.Player.StartLives, tt.wantLives)
			}
			if got.Screen.TickRate != tt.wantTPS {
				t.Errorf("TickRate = %d, expected %d", got.Screen.TickRate, tt.wantTPS)
			}
			if got.Debug.Warp != tt.wantWarp {
				t.Errorf("Debug.Warp = %v, expected %v", got.Debug.Warp, tt.wantWarp)
			}
		})
	}
}

func TestSettingsApplyKeepsInput(t *testing.T) {
	base := config.DefaultTuning()
	lives := base.Player.StartLives

	if _, err := (settings{difficulty: "hard"}).apply(base); err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if base.Player.StartLives != lives {
		t.Errorf("apply() changed its input: StartLives = %d, expected %d", base.Player.StartLives, lives)
	}
}

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(cfgPath, []byte("screen:\n  tick_rate: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	old := flagLevels
	defer func() { flagLevels = old }()

	flagLevels = filepath.Join(dir, "missing")
	got := watchDirs(cfgPath)
	found := false
	for _, d := range got {
		if d == dir {
			found = true
		}
		if d == flagLevels {
			t.Errorf("watchDirs() = %v, expected missing directories to be skipped", got)
		}
	}
	if !found {
		t.Errorf("watchDirs() = %v, expected it to contain %s", got, dir)
	}

	// The config directory and the levels directory are the same here.
	flagLevels = dir
	n := 0
	for _, d := range watchDirs(cfgPath) {
		if d == dir {
			n++
		}
	}
	if n != 1 {
		t.Errorf("watchDirs() listed %s %d times, expected 1", dir, n)
	}
}

func TestLoadGameScreenWidth(t *testing.T) {
	oldConfig, oldLevels := flagConfig, flagLevels
	defer func() { flagConfig, flagLevels = oldConfig, oldLevels }()
	flagLevels = ""

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"default width", "screen:\n  width: 800\n", false},
		{"narrower screen", "screen:\n  width: 640\n", false},
		{"ground too short", "screen:\n  width: 1000\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig = filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(flagConfig, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := loadGame(log.New(io.Discard))
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadGame() error = %v, expected error %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "full-width ground") {
				t.Errorf("loadGame() error = %v, expected it to mention the ground", err)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := portOf(tt.addr); got != tt.want {
				t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
			}
		})
	}
}
