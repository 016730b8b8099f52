// Package window runs the game in a desktop window with Ebiten. It draws the
// same draw list the terminal front end rasterizes, at the full 800x600
// logical resolution.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/session"
	"github.com/vovakirdan/ultrabros/internal/stage"
	"github.com/vovakirdan/ultrabros/internal/storage"
)

// RunSaver stores a finished run. *storage.Store satisfies it.
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Game.
type Options struct {
	Tuning  config.Tuning
	Layouts stage.Layouts
	Seed    int64
	Store   RunSaver // Optional
	Logger  *log.Logger
	Player  string  // Name stored with each run
	Scale   float64 // Window size multiplier, 1 when zero
	Watcher *config.Watcher
	Reload  func() (config.Tuning, stage.Layouts, error)
}

// Game adapts a Session to ebiten.Game.
type Game struct {
	session *session.Session
	list    *core.DrawList
	store   RunSaver
	logger  *log.Logger
	player  string
	watcher *config.Watcher
	reload  func() (config.Tuning, stage.Layouts, error)
	width   int
	height  int
}

// NewGame creates a game with a fresh session.
func NewGame(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	player := opts.Player
	if player == "" {
		player = "local"
	}

	s := session.New(opts.Tuning, opts.Layouts)
	s.Reset(core.RuntimeConfig{
		ScreenW:  int(opts.Tuning.Screen.Width),
		ScreenH:  int(opts.Tuning.Screen.Height),
		TickRate: opts.Tuning.Screen.TickRate,
		Seed:     seed,
	})

	return &Game{
		session: s,
		list:    core.NewDrawList(),
		store:   opts.Store,
		logger:  logger,
		player:  player,
		watcher: opts.Watcher,
		reload:  opts.Reload,
		width:   int(opts.Tuning.Screen.Width),
		height:  int(opts.Tuning.Screen.Height),
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	g.pollReload()

	result := g.session.Step(readInput())
	for _, e := range result.Events {
		if e.Kind == session.EventModeChanged {
			g.logger.Info("mode changed", "change", e.Detail)
			continue
		}
		g.logger.Debug("event", "kind", e.Kind, "detail", e.Detail)
	}

	if session.HasEvent(result.Events, session.EventRunEnded) {
		g.saveRun()
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// pollReload applies pending config changes without blocking the tick.
func (g *Game) pollReload() {
	if g.watcher == nil || g.reload == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		t, lay, err := g.reload()
		if err != nil {
			g.logger.Warn("reload failed, keeping current tuning", "path", path, "error", err)
			return
		}
		g.session.Retune(t, lay)
		g.logger.Info("reloaded", "path", path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("config watcher error", "error", err)
		}
	default:
	}
}

func (g *Game) saveRun() {
	sum := g.session.Summary()
	g.logger.Info("run ended", "outcome", sum.Outcome, "coins", sum.Coins)
	if g.store == nil {
		return
	}
	_, err := g.store.SaveRun(storage.Run{
		Outcome:        string(sum.Outcome),
		Coins:          sum.Coins,
		LevelsCleared:  sum.LevelsCleared,
		BossesDefeated: sum.BossesDefeated,
		Deaths:         sum.Deaths,
		World:          sum.World,
		Ticks:          sum.Ticks,
		Player:         g.player,
	})
	if err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.list)
	drawList(screen, g.list)
}

// Layout keeps the logical resolution regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := NewGame(opts)
	ebiten.SetWindowTitle("Ultra Bros")
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Tuning.Screen.TickRate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
