package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file name looked up in the search directories.
const FileName = "tuning.yaml"

// SourceEmbedded is reported by LoadSource when no file on disk was used.
const SourceEmbedded = "embedded"

// Load loads the simulation tuning.
// Search order: customPath -> ~/.ultrabros/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func Load(customPath string) (Tuning, error) {
	t, _, err := LoadSource(customPath)
	return t, err
}

// LoadSource is Load that also reports which file the tuning came from,
// or SourceEmbedded.
func LoadSource(customPath string) (Tuning, string, error) {
	res, err := Resolve(customPath)
	return res.Tuning, res.Source, err
}

// Skipped is a search-path file that exists but could not be used.
type Skipped struct {
	Path string
	Err  error
}

// Resolved is the outcome of the tuning search.
type Resolved struct {
	Tuning  Tuning
	Source  string
	Skipped []Skipped
}

// Resolve runs the Load search and records every file it passed over
// because it was unreadable or invalid. A missing file is not recorded.
func Resolve(customPath string) (Resolved, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Resolved{Tuning: DefaultTuning()}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		t, err := Parse(data)
		if err != nil {
			return Resolved{Tuning: DefaultTuning()}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return Resolved{Tuning: t, Source: customPath}, nil
	}

	// Try user config directory, then the local configs directory.
	var res Resolved
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			var t Tuning
			if t, err = Parse(data); err == nil {
				res.Tuning, res.Source = t, path
				return res, nil
			}
		}
		res.Skipped = append(res.Skipped, Skipped{Path: path, Err: err})
	}

	// Use embedded default YAML
	res.Source = SourceEmbedded
	t, err := Parse(defaultTuningYAML)
	if err != nil {
		res.Tuning = DefaultTuning() // Fallback to hardcoded if embed fails
		return res, nil
	}
	res.Tuning = t
	return res, nil
}

// Parse decodes YAML over the built-in defaults and validates the result,
// so a file only needs the keys it changes.
func Parse(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return t, nil
}

// UserDir returns ~/.ultrabros, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ultrabros")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
