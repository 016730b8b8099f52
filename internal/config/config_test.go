package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	got, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(got, DefaultTuning()) {
		t.Errorf("embedded tuning = %+v, expected %+v", got, DefaultTuning())
	}
}

func TestDefaultConstants(t *testing.T) {
	d := DefaultTuning()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"gravity", d.Physics.Gravity, 0.8},
		{"jump strength", d.Player.JumpStrength, -15},
		{"move speed", d.Player.MoveSpeed, 5},
		{"tick rate", float64(d.Screen.TickRate), 60},
		{"player width", d.Player.Width, 32},
		{"player height", d.Player.Height, 48},
		{"enemy width", d.Enemy.Width, 32},
		{"enemy height", d.Enemy.Height, 32},
		{"boss width", d.Boss.Width, 64},
		{"boss height", d.Boss.Height, 64},
		{"coin size", d.Coin.Size, 24},
		{"boss gravity factor", d.Physics.BossGravityFactor, 0.7},
		{"boss jump threshold", float64(d.Boss.JumpThreshold), 120},
		{"boss attack threshold", float64(d.Boss.AttackThreshold), 90},
		{"projectile speed", d.Projectile.Speed, 5},
		{"projectile drift", d.Projectile.Drift, 2},
		{"enemy stomp bounce", d.Enemy.StompBounce, -8},
		{"boss stomp bounce", d.Boss.StompBounce, -12},
		{"goal radius", d.Goal.Radius, 50},
		{"screen width", d.Screen.Width, 800},
		{"screen height", d.Screen.Height, 600},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.want)
		}
	}

	if g := d.BossGravity(); g < 0.5599 || g > 0.5601 {
		t.Errorf("BossGravity() = %v, expected 0.56", g)
	}
}

func TestParseOverlay(t *testing.T) {
	got, err := Parse([]byte("physics:\n  gravity: 1.2\ndebug:\n  warp: true\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Physics.Gravity != 1.2 {
		t.Errorf("Physics.Gravity = %v, expected 1.2", got.Physics.Gravity)
	}
	if !got.Debug.Warp {
		t.Error("Debug.Warp = false, expected true")
	}
	if got.Physics.BossGravityFactor != 0.7 {
		t.Errorf("unset keys should keep defaults, BossGravityFactor = %v", got.Physics.BossGravityFactor)
	}
	if got.Player.Width != 32 {
		t.Errorf("unset sections should keep defaults, Player.Width = %v", got.Player.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "physics: [1, 2"},
		{"zero width", "player:\n  width: 0\n"},
		{"upward jump sign", "player:\n  jump_strength: 15\n"},
		{"zero tick rate", "screen:\n  tick_rate: 0\n"},
		{"negative drift", "projectile:\n  drift: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil, expected an error")
			}
			if !reflect.DeepEqual(got, DefaultTuning()) {
				t.Error("Parse() should return defaults alongside an error")
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	bad := DefaultTuning()
	bad.Boss.HP = 0
	bad.Coin.Period = 0

	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected an error")
	}
	for _, key := range []string{"boss.hp", "coin.period"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() error %q does not mention %s", err, key)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("goal:\n  radius: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, src, err := LoadSource(path)
	if err != nil {
		t.Fatalf("LoadSource() error: %v", err)
	}
	if src != path {
		t.Errorf("LoadSource() source = %q, expected %q", src, path)
	}
	if got.Goal.Radius != 80 {
		t.Errorf("Goal.Radius = %v, expected 80", got.Goal.Radius)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestResolveReportsBrokenUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".ultrabros")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, FileName)
	if err := os.WriteFile(broken, []byte("boss:\n  hp: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != SourceEmbedded {
		t.Errorf("Resolve() source = %q, expected %q", res.Source, SourceEmbedded)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("Resolve() skipped %d files, expected 1", len(res.Skipped))
	}
	if res.Skipped[0].Path != broken || res.Skipped[0].Err == nil {
		t.Errorf("Resolve() skipped = %+v, expected %s with an error", res.Skipped[0], broken)
	}
}

func TestResolveFallsThroughToLocalFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".ultrabros")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("boss:\n  hp: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", FileName)
	if err := os.WriteFile(local, []byte("goal:\n  radius: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != local {
		t.Errorf("Resolve() source = %q, expected %q", res.Source, local)
	}
	if res.Tuning.Goal.Radius != 70 {
		t.Errorf("Goal.Radius = %v, expected 70", res.Tuning.Goal.Radius)
	}
	if len(res.Skipped) != 1 {
		t.Errorf("Resolve() skipped %d files, expected 1", len(res.Skipped))
	}
}

func TestResolveIgnoresMissingFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	res, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != SourceEmbedded || len(res.Skipped) != 0 {
		t.Errorf("Resolve() = source %q, skipped %v, expected embedded with nothing skipped", res.Source, res.Skipped)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		lives int
	}{
		{"", DifficultyNormal, 3},
		{"normal", DifficultyNormal, 3},
		{"easy", DifficultyEasy, 5},
		{"hard", DifficultyHard, 1},
	}
	for _, tt := range tests {
		p, err := ParsePreset(tt.in)
		if err != nil {
			t.Fatalf("ParsePreset(%q) error: %v", tt.in, err)
		}
		if p != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, p, tt.want)
		}
		tun := DefaultTuning()
		ApplyPreset(&tun, p)
		if tun.Player.StartLives != tt.lives {
			t.Errorf("ApplyPreset(%q) lives = %d, expected %d", p, tun.Player.StartLives, tt.lives)
		}
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestIsYAML(t *testing.T) {
	tests := map[string]bool{
		"tuning.yaml":    true,
		"worlds.YML":     true,
		"notes.txt":      false,
		"tuning.yaml~":   false,
		"dir/levels.yml": true,
	}
	for path, want := range tests {
		if got := IsYAML(path); got != want {
			t.Errorf("IsYAML(%q) = %v, expected %v", path, got, want)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("debug:\n  warp: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != FileName {
			t.Errorf("watcher event = %q, expected %s", got, FileName)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the YAML write")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
