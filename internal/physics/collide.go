package physics

import "github.com/vovakirdan/ultrabros/internal/core"

// Surface is how a platform is drawn. Physics never reads it.
type Surface int

const (
	SurfaceSolid Surface = iota
	SurfaceBrick
	SurfacePipe
)

// String returns the surface name used in layout files.
func (s Surface) String() string {
	switch s {
	case SurfaceSolid:
		return "solid"
	case SurfaceBrick:
		return "brick"
	case SurfacePipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// ParseSurface maps a layout name to a Surface.
func ParseSurface(s string) (Surface, bool) {
	switch s {
	case "", "solid":
		return SurfaceSolid, true
	case "brick":
		return SurfaceBrick, true
	case "pipe":
		return SurfacePipe, true
	default:
		return SurfaceSolid, false
	}
}

// Platform is a static rectangle bodies stand on and bump into.
type Platform struct {
	X, Y, W, H float64
	Surface    Surface
	Color      core.Color
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ContactKind is the resolution branch that fired against a platform.
type ContactKind int

const (
	ContactLanding ContactKind = iota
	ContactCeiling
	ContactPushLeft  // Moving right, snapped to the platform's left side
	ContactPushRight // Moving left, snapped to the platform's right side
)

// String returns the contact name.
func (k ContactKind) String() string {
	switch k {
	case ContactLanding:
		return "landing"
	case ContactCeiling:
		return "ceiling"
	case ContactPushLeft:
		return "push-left"
	case ContactPushRight:
		return "push-right"
	default:
		return "unknown"
	}
}

// Contact records one resolution against the platform at index Platform.
type Contact struct {
	Platform int
	Kind     ContactKind
}

// Overlaps is the open-interval AABB test. Shared edges do not overlap.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// ResolveFull pushes b out of every platform it overlaps, in list order,
// using the first branch that matches:
//
//  1. falling with its top above the platform top: land on it
//  2. rising with its top below the platform top: hit the ceiling
//  3. moving right: snap to the platform's left side
//  4. moving left: snap to the platform's right side
//
// Overlap is re-tested against the body as already moved by earlier
// platforms. A body at rest inside a platform is left where it is.
// grounded is true when any landing fired.
func ResolveFull(b *Body, platforms []Platform) (grounded bool, hits []Contact) {
	for i, p := range platforms {
		if !Overlaps(b.Rect(), p.Rect()) {
			continue
		}
		switch {
		case b.VY > 0 && b.Y < p.Y:
			b.Y = p.Y - b.H
			b.VY = 0
			grounded = true
			hits = append(hits, Contact{Platform: i, Kind: ContactLanding})
		case b.VY < 0 && b.Y > p.Y:
			b.Y = p.Y + p.H
			b.VY = 0
			hits = append(hits, Contact{Platform: i, Kind: ContactCeiling})
		case b.VX > 0:
			b.X = p.X - b.W
			b.VX = 0
			hits = append(hits, Contact{Platform: i, Kind: ContactPushLeft})
		case b.VX < 0:
			b.X = p.X + p.W
			b.VX = 0
			hits = append(hits, Contact{Platform: i, Kind: ContactPushRight})
		}
	}
	return grounded, hits
}

// ResolveLanding is the enemy and boss rule: only falling bodies are
// resolved, by snapping them onto the platform top. Unlike ResolveFull there
// is no check that the body started above the platform, so a falling body
// clipping a platform from the side or below is lifted onto it.
func ResolveLanding(b *Body, platforms []Platform) (grounded bool) {
	for _, p := range platforms {
		if !Overlaps(b.Rect(), p.Rect()) {
			continue
		}
		if b.VY > 0 {
			b.Y = p.Y - b.H
			b.VY = 0
			grounded = true
		}
	}
	return grounded
}
