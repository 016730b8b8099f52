package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/session"
	"github.com/vovakirdan/ultrabros/internal/stage"
	"github.com/vovakirdan/ultrabros/internal/storage"
)

// ReloadFunc reloads tuning and layouts after a watched file changed.
type ReloadFunc func() (config.Tuning, stage.Layouts, error)

// Options configures a Model.
type Options struct {
	Tuning     config.Tuning
	Layouts    stage.Layouts
	Store      *storage.Store // Optional; runs are not saved without it
	Config     core.RuntimeConfig
	Logger     *log.Logger // Optional; defaults to discarding
	Player     string      // Name stored with each run
	HeldWindow int         // Ticks a left/right press stays held
	Watcher    *config.Watcher
	Reload     ReloadFunc
	Renderer   *lipgloss.Renderer // Optional; per-session renderer over SSH
}

// reloadMsg is sent when a watched config file changed.
type reloadMsg struct{ path string }

// watchErrMsg carries a watcher error.
type watchErrMsg struct{ err error }

// Model is the Bubble Tea model that runs a game session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	list     *core.DrawList
	store    *storage.Store
	config   core.RuntimeConfig
	input    *inputQueue
	keys     *KeyMapper
	logger   *log.Logger
	player   string
	watcher  *config.Watcher
	reload   ReloadFunc
	renderer *lipgloss.Renderer
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Tuning.Screen.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = 80, 24
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	s := session.New(opts.Tuning, opts.Layouts)
	s.Reset(cfg)

	return Model{
		session:  s,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		list:     core.NewDrawList(),
		store:    opts.Store,
		config:   cfg,
		input:    newInputQueue(opts.HeldWindow),
		keys:     NewKeyMapper(),
		logger:   logger,
		player:   player,
		watcher:  opts.Watcher,
		reload:   opts.Reload,
		renderer: renderer,
	}
}

// Init starts the tick loop and, when watching, the reload listener.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "player", m.player, "seed", m.config.Seed, "tps", m.config.TickRate)
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForReload())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case reloadMsg:
		m.applyReload(msg.path)
		return m, m.waitForReload()

	case watchErrMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, m.waitForReload()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	m.input.Push(action)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.input.Next())
	m.logEvents(result.Events)

	if session.HasEvent(result.Events, session.EventRunEnded) {
		m.saveRun()
	}

	if result.State.Quit {
		m.quitting = true
		m.logger.Info("session ended", "player", m.player, "ticks", m.session.Tick())
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		if e.Kind == session.EventModeChanged {
			m.logger.Info("mode changed", "change", e.Detail, "player", m.player)
			continue
		}
		m.logger.Debug("event", "kind", e.Kind, "detail", e.Detail)
	}
}

// saveRun stores the finished run. The session ends each run exactly once.
func (m *Model) saveRun() {
	sum := m.session.Summary()
	m.logger.Info("run ended",
		"outcome", sum.Outcome,
		"coins", sum.Coins,
		"levels", sum.LevelsCleared,
		"bosses", sum.BossesDefeated,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(RunFromSummary(sum, m.player)); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// RunFromSummary converts a session summary to a storage record.
func RunFromSummary(sum session.RunSummary, player string) storage.Run {
	return storage.Run{
		Outcome:        string(sum.Outcome),
		Coins:          sum.Coins,
		LevelsCleared:  sum.LevelsCleared,
		BossesDefeated: sum.BossesDefeated,
		Deaths:         sum.Deaths,
		World:          sum.World,
		Ticks:          sum.Ticks,
		Player:         player,
	}
}

// waitForReload blocks on the watcher and reports the next change.
func (m Model) waitForReload() tea.Cmd {
	w := m.watcher
	if w == nil || m.reload == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return reloadMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m Model) applyReload(path string) {
	t, lay, err := m.reload()
	if err != nil {
		m.logger.Warn("reload failed, keeping current tuning", "path", path, "error", err)
		return
	}
	m.session.Retune(t, lay)
	m.logger.Info("reloaded", "path", path)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.session.Render(m.list)
	Rasterize(m.list, m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.session.Mode(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.list)
	Rasterize(m.list, m.screen)
	return renderScreen(m.renderer, m.screen)
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
