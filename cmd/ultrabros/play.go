package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/platform/tui"
)

var flagHeldWindow int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/Right, A/D  - Walk (worlds on the map)
  Space, Up, W     - Jump
  1/2/3, B         - Enter a level or the boss arena on the map
  Enter            - Confirm
  P                - Pause
  Esc              - Back to the title menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a walk key stays held
for --held-window ticks after its last repeat.

Examples:
  ultrabros play
  ultrabros play --difficulty hard
  ultrabros play --seed 42 --log-file play.log --debug
  ultrabros play --config ./my-tuning.yaml --levels ./levels --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeldWindow, "held-window", tui.DefaultHeldWindow, "Ticks a walk key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	t, lay, source, err := loadGame(logger)
	if err != nil {
		return err
	}
	logger.Info("tuning loaded", "source", source, "layouts", lay.Sources)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage - the game still works
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	watcher := startWatcher(source, logger)
	if watcher != nil {
		defer watcher.Close()
	}

	return tui.Run(tui.Options{
		Tuning:  t,
		Layouts: lay,
		Store:   store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: t.Screen.TickRate,
			Seed:     flagSeed,
		},
		Logger:     logger,
		HeldWindow: flagHeldWindow,
		Watcher:    watcher,
		Reload:     reloader(logger),
	})
}
