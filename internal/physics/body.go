// Package physics implements the kinematic body and the axis-aligned
// platform resolver shared by every moving entity.
//
// Integration is a single Euler step per tick with no substeps, and
// resolution is not swept: a body moving faster than a platform is thick
// can pass through it, and a body overlapping a platform corner is pushed
// out along whichever branch matches first rather than the shortest axis.
// Levels are authored so neither case matters at the configured speeds.
package physics

import (
	"fmt"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// Body is the minimal physics state of a moving entity.
type Body struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // Velocity per tick
	W, H   float64 // Box size, always positive
}

// NewBody creates a body at rest. It panics on a non-positive box size.
func NewBody(x, y, w, h float64) Body {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("physics: body size %vx%v must be positive", w, h))
	}
	return Body{X: x, Y: y, W: w, H: h}
}

// Integrate advances the body by one tick: gravity first, then position.
func (b *Body) Integrate(gravity float64) {
	b.VY += gravity
	b.X += b.VX
	b.Y += b.VY
}

// Rect returns the body's bounding box.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Center returns the centre of the bounding box.
func (b Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// ClampX keeps the body horizontally inside [0, screenW-W].
func (b *Body) ClampX(screenW float64) {
	b.X = core.ClampF(b.X, 0, screenW-b.W)
}

// FellOut reports whether the body dropped below the bottom of the screen.
func (b Body) FellOut(screenH float64) bool {
	return b.Y > screenH
}
