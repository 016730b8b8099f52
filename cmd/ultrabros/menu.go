package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/platform/tui"
)

// runMenu loops between the launcher, the game and the scoreboard until the
// player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	t, lay, source, err := loadGame(logger)
	if err != nil {
		return err
	}
	logger.Info("tuning loaded", "source", source)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	watcher := startWatcher(source, logger)
	if watcher != nil {
		defer watcher.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	for {
		best := 0
		if store != nil {
			if b, err := store.BestCoins(); err == nil {
				best = b
			}
		}

		res, err := tui.RunMenu(width, height, best)
		if err != nil {
			return fmt.Errorf("launcher: %w", err)
		}
		width, height = res.Width, res.Height

		switch res.Choice {
		case tui.ChoicePlay:
			err := tui.Run(tui.Options{
				Tuning:  t,
				Layouts: lay,
				Store:   store,
				Config: core.RuntimeConfig{
					ScreenW:  width,
					ScreenH:  height,
					TickRate: t.Screen.TickRate,
					Seed:     flagSeed,
				},
				Logger:  logger,
				Watcher: watcher,
				Reload:  reloader(logger),
			})
			if err != nil {
				return fmt.Errorf("game: %w", err)
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, width, height, t.Screen.TickRate)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
