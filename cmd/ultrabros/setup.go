package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/stage"
	"github.com/vovakirdan/ultrabros/internal/storage"
)

// newLogger builds the program logger on w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ultrabros",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// terminalLogger logs to --log-file, or nowhere: the terminal front end
// owns stdout and stderr while it runs.
func terminalLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}

// settings are the command-line overrides applied on top of a tuning file.
type settings struct {
	fps        int
	difficulty string
	warp       bool
}

func currentSettings() settings {
	return settings{fps: flagFPS, difficulty: flagDifficulty, warp: flagWarp}
}

// apply overlays the command-line settings and revalidates.
func (s settings) apply(t config.Tuning) (config.Tuning, error) {
	preset, err := config.ParsePreset(s.difficulty)
	if err != nil {
		return t, err
	}
	config.ApplyPreset(&t, preset)
	if s.fps > 0 {
		t.Screen.TickRate = s.fps
	}
	if s.warp {
		t.Debug.Warp = true
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// loadGame reads the tuning and layouts the flags point at. Tuning files the
// search passed over are logged, and the layouts are checked against the
// tuned screen width.
func loadGame(logger *log.Logger) (config.Tuning, stage.Layouts, string, error) {
	res, err := config.Resolve(flagConfig)
	if err != nil {
		return res.Tuning, stage.Layouts{}, res.Source, err
	}
	for _, sk := range res.Skipped {
		logger.Warn("skipping tuning file", "path", sk.Path, "error", sk.Err)
	}
	t, err := currentSettings().apply(res.Tuning)
	if err != nil {
		return t, stage.Layouts{}, res.Source, err
	}
	lay, err := stage.LoadLayouts(flagLevels)
	if err != nil {
		return t, stage.Layouts{}, res.Source, err
	}
	if err := lay.ValidateWidth(t.Screen.Width); err != nil {
		return t, stage.Layouts{}, res.Source, err
	}
	return t, lay, res.Source, nil
}

// reloader is loadGame without the source, for the watcher.
func reloader(logger *log.Logger) func() (config.Tuning, stage.Layouts, error) {
	return func() (config.Tuning, stage.Layouts, error) {
		t, lay, _, err := loadGame(logger)
		return t, lay, err
	}
}

// openStore opens the runs database. Play goes on without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// watchDirs lists the existing directories a tuning or layout change can
// come from.
func watchDirs(source string) []string {
	candidates := []string{config.UserDir(), "configs", flagLevels}
	if source != "" && source != config.SourceEmbedded {
		candidates = append(candidates, filepath.Dir(source))
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			continue
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			continue
		}
		seen[abs] = true
		dirs = append(dirs, abs)
	}
	return dirs
}

// startWatcher starts the file watcher when --watch is set.
func startWatcher(source string, logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	dirs := watchDirs(source)
	if len(dirs) == 0 {
		logger.Warn("nothing to watch", "config", source, "levels", flagLevels)
		return nil
	}
	w, err := config.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("could not start watcher", "error", err)
		return nil
	}
	logger.Info("watching for changes", "dirs", dirs)
	return w
}
