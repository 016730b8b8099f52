// Package stage builds levels and boss arenas from platform layouts and
// advances everything they own each tick.
package stage

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// WorldCount is the number of worlds a layout set must define.
const WorldCount = 5

// LevelsPerWorld is the number of regular levels in each world.
const LevelsPerWorld = 3

// minPlatforms is the ground plus the three platforms that carry coins.
const minPlatforms = 4

//go:embed layouts/worlds.yaml
var embeddedLayouts []byte

// EmbeddedSource names the built-in layout file in Layouts.Sources.
const EmbeddedSource = "embedded:worlds.yaml"

// World is the static layout of one world, or of the boss arena.
type World struct {
	Number    int
	Theme     string
	Sky       core.Color
	Platforms []physics.Platform
}

// Layouts holds every world layout plus the shared boss arena.
type Layouts struct {
	Worlds  [WorldCount]World
	Arena   World
	Sources []string // Files the layouts were read from
}

// World returns the layout of world n (1-based).
func (l Layouts) World(n int) World {
	return l.Worlds[n-1]
}

type platformSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Surface string  `yaml:"surface"`
	Color   string  `yaml:"color"`
}

type worldSpec struct {
	World     int            `yaml:"world"`
	Theme     string         `yaml:"theme"`
	Sky       string         `yaml:"sky"`
	Platforms []platformSpec `yaml:"platforms"`
}

type layoutFile struct {
	Worlds []worldSpec `yaml:"worlds"`
	Arena  *worldSpec  `yaml:"arena"`
}

// LoadLayouts loads platform layouts. An empty root uses the built-in
// layouts; otherwise every .yaml/.yml file under root is read in path
// order, later files overriding earlier ones world by world.
func LoadLayouts(root string) (Layouts, error) {
	if root == "" {
		return parseLayouts(map[string][]byte{EmbeddedSource: embeddedLayouts})
	}

	files := make(map[string][]byte)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		files[path] = data
		return nil
	})
	if err != nil {
		return Layouts{}, fmt.Errorf("stage: walking directory %s: %w", root, err)
	}
	if len(files) == 0 {
		return Layouts{}, fmt.Errorf("stage: no layout files in %s", root)
	}
	return parseLayouts(files)
}

// DefaultLayouts returns the built-in layouts. It panics if they are
// invalid, which only a broken build can cause.
func DefaultLayouts() Layouts {
	lay, err := LoadLayouts("")
	if err != nil {
		panic(err)
	}
	return lay
}

func parseLayouts(files map[string][]byte) (Layouts, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var lay Layouts
	var haveWorld [WorldCount]bool
	haveArena := false

	for _, path := range paths {
		var f layoutFile
		if err := yaml.Unmarshal(files[path], &f); err != nil {
			return Layouts{}, fmt.Errorf("stage: parsing file %s: %w", path, err)
		}
		for _, ws := range f.Worlds {
			if ws.World < 1 || ws.World > WorldCount {
				return Layouts{}, fmt.Errorf("stage: %s: world %d out of range [1,%d]", path, ws.World, WorldCount)
			}
			w, err := ws.build()
			if err != nil {
				return Layouts{}, fmt.Errorf("stage: %s: world %d: %w", path, ws.World, err)
			}
			lay.Worlds[ws.World-1] = w
			haveWorld[ws.World-1] = true
		}
		if f.Arena != nil {
			a, err := f.Arena.build()
			if err != nil {
				return Layouts{}, fmt.Errorf("stage: %s: arena: %w", path, err)
			}
			lay.Arena = a
			haveArena = true
		}
		lay.Sources = append(lay.Sources, path)
	}

	var errs []error
	for i, ok := range haveWorld {
		if !ok {
			errs = append(errs, fmt.Errorf("world %d is missing", i+1))
		}
	}
	if !haveArena {
		errs = append(errs, errors.New("arena is missing"))
	}
	if len(errs) > 0 {
		return Layouts{}, fmt.Errorf("stage: invalid layouts: %w", errors.Join(errs...))
	}
	if err := lay.Validate(); err != nil {
		return Layouts{}, err
	}
	return lay, nil
}

func (ws worldSpec) build() (World, error) {
	w := World{Number: ws.World, Theme: ws.Theme, Sky: core.ColorSkyBlue}
	if ws.Sky != "" {
		c, ok := core.ParseHex(ws.Sky)
		if !ok {
			return World{}, fmt.Errorf("bad sky colour %q", ws.Sky)
		}
		w.Sky = c
	}
	for i, ps := range ws.Platforms {
		surface, ok := physics.ParseSurface(ps.Surface)
		if !ok {
			return World{}, fmt.Errorf("platform %d: unknown surface %q", i, ps.Surface)
		}
		color := core.ColorGroundBrown
		if ps.Color != "" {
			if color, ok = core.ParseHex(ps.Color); !ok {
				return World{}, fmt.Errorf("platform %d: bad colour %q", i, ps.Color)
			}
		}
		w.Platforms = append(w.Platforms, physics.Platform{
			X: ps.X, Y: ps.Y, W: ps.W, H: ps.H,
			Surface: surface,
			Color:   color,
		})
	}
	return w, nil
}

// Validate checks the structural rules every layout relies on against the
// default logical width.
func (l Layouts) Validate() error {
	return l.ValidateWidth(core.LogicalWidth)
}

// ValidateWidth checks positive platform sizes, enough platforms in each
// world for the coin placement, and a first platform spanning a screen
// width units wide.
func (l Layouts) ValidateWidth(width float64) error {
	var errs []error
	check := func(name string, w World, min int) {
		if len(w.Platforms) < min {
			errs = append(errs, fmt.Errorf("%s: %d platforms, need at least %d", name, len(w.Platforms), min))
			return
		}
		for i, p := range w.Platforms {
			if p.W <= 0 || p.H <= 0 {
				errs = append(errs, fmt.Errorf("%s: platform %d has size %vx%v", name, i, p.W, p.H))
			}
		}
		g := w.Platforms[0]
		if g.X > 0 || g.X+g.W < width {
			errs = append(errs, fmt.Errorf("%s: first platform must be full-width ground (%v wide)", name, width))
		}
	}

	for i, w := range l.Worlds {
		check(fmt.Sprintf("world %d", i+1), w, minPlatforms)
	}
	check("arena", l.Arena, 1)

	if len(errs) > 0 {
		return fmt.Errorf("stage: invalid layouts: %w", errors.Join(errs...))
	}
	return nil
}
