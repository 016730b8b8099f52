package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ultrabros/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in an 800x600 desktop window.

Controls are the same as 'ultrabros play', except that walking follows the
real key state. Logs go to stderr.

Examples:
  ultrabros window
  ultrabros window --scale 1.5
  ultrabros window --watch --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	t, lay, source, err := loadGame(logger)
	if err != nil {
		return err
	}
	logger.Info("tuning loaded", "source", source, "layouts", lay.Sources)

	opts := window.Options{
		Tuning:  t,
		Layouts: lay,
		Seed:    flagSeed,
		Logger:  logger,
		Scale:   flagScale,
		Reload:  reloader(logger),
	}

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	if watcher := startWatcher(source, logger); watcher != nil {
		defer watcher.Close()
		opts.Watcher = watcher
	}

	return window.Run(opts)
}
