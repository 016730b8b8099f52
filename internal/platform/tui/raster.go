package tui

import (
	"math"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// Rasterize paints a draw list onto a cell screen, scaling the logical
// 800x600 play field to the screen size. Shapes become background colour;
// text becomes foreground runes. A cell belongs to a shape when its centre
// does, and every visible shape covers at least one cell.
func Rasterize(list *core.DrawList, s *core.Screen) {
	r := newRaster(s)
	s.FillBackground(list.Background)

	for i := range list.Items {
		it := &list.Items[i]
		switch it.Shape {
		case core.ShapeRect:
			if it.Filled {
				r.fillRect(it.X, it.Y, it.W, it.H, it.Color)
			} else {
				r.strokeRect(it.X, it.Y, it.W, it.H, it.Color)
			}
		case core.ShapeEllipse:
			r.fillEllipse(it.X+it.W/2, it.Y+it.H/2, it.W/2, it.H/2, it.Color)
		case core.ShapeCircle:
			if it.Filled {
				r.fillEllipse(it.X, it.Y, it.Radius, it.Radius, it.Color)
			} else {
				r.strokeCircle(it.X, it.Y, it.Radius, it.Stroke, it.Color)
			}
		case core.ShapePolygon:
			r.fillPolygon(it.Points, it.Color)
		case core.ShapeLine:
			if len(it.Points) == 2 {
				r.line(it.Points[0], it.Points[1], it.Color)
			}
		case core.ShapeText:
			r.text(it, it.Color)
		}
	}
}

// raster holds the logical-to-cell scale for one screen.
type raster struct {
	s      *core.Screen
	sx, sy float64 // Cells per logical unit
}

func newRaster(s *core.Screen) raster {
	return raster{
		s:  s,
		sx: float64(s.Width()) / core.LogicalWidth,
		sy: float64(s.Height()) / core.LogicalHeight,
	}
}

// span converts a logical interval to the half-open cell range whose
// centres it contains, widened to one cell when it would be empty.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Ceil(lo*scale - 0.5))
	b := int(math.Ceil(hi*scale - 0.5))
	if b <= a {
		a = int(math.Floor(lo * scale))
		b = a + 1
	}
	return a, b
}

// centre returns the logical coordinates of a cell's centre.
func (r raster) centre(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / r.sx, (float64(cy) + 0.5) / r.sy
}

func (r raster) fillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, x+w, r.sx)
	y0, y1 := span(y, y+h, r.sy)
	r.s.PaintRect(x0, y0, x1, y1, c)
}

func (r raster) strokeRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, x+w, r.sx)
	y0, y1 := span(y, y+h, r.sy)
	r.s.PaintRect(x0, y0, x1, y0+1, c)
	r.s.PaintRect(x0, y1-1, x1, y1, c)
	r.s.PaintRect(x0, y0, x0+1, y1, c)
	r.s.PaintRect(x1-1, y0, x1, y1, c)
}

func (r raster) fillEllipse(cx, cy, rx, ry float64, c core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x0, x1 := span(cx-rx, cx+rx, r.sx)
	y0, y1 := span(cy-ry, cy+ry, r.sy)
	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := r.centre(x, y)
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				r.s.Paint(x, y, c)
				painted = true
			}
		}
	}
	if !painted {
		r.s.Paint(int(cx*r.sx), int(cy*r.sy), c)
	}
}

func (r raster) strokeCircle(cx, cy, radius, stroke float64, c core.Color) {
	if radius <= 0 {
		return
	}
	// A ring at least one cell thick on each axis.
	band := math.Max(stroke, math.Max(1/r.sx, 1/r.sy)/2)
	x0, x1 := span(cx-radius, cx+radius, r.sx)
	y0, y1 := span(cy-radius, cy+radius, r.sy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := r.centre(x, y)
			d := math.Hypot(px-cx, py-cy)
			if d <= radius && d >= radius-band {
				r.s.Paint(x, y, c)
			}
		}
	}
}

// fillPolygon uses the even-odd rule at cell centres.
func (r raster) fillPolygon(pts []core.Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0, x1 := span(minX, maxX, r.sx)
	y0, y1 := span(minY, maxY, r.sy)
	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := r.centre(x, y)
			if insidePolygon(pts, px, py) {
				r.s.Paint(x, y, c)
				painted = true
			}
		}
	}
	if !painted {
		r.s.Paint(int((minX+maxX)/2*r.sx), int((minY+maxY)/2*r.sy), c)
	}
}

func insidePolygon(pts []core.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// line walks the segment in cell space (DDA).
func (r raster) line(a, b core.Point, c core.Color) {
	ax, ay := a.X*r.sx, a.Y*r.sy
	bx, by := b.X*r.sx, b.Y*r.sy
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		r.s.Paint(int(ax), int(ay), c)
		return
	}
	dx, dy := (bx-ax)/float64(steps), (by-ay)/float64(steps)
	for i := 0; i <= steps; i++ {
		r.s.Paint(int(ax+dx*float64(i)), int(ay+dy*float64(i)), c)
	}
}

// text places one rune per cell at the scaled anchor, over the colours
// already painted there.
func (r raster) text(it *core.Primitive, c core.Color) {
	x := int(it.X * r.sx)
	y := int(it.Y * r.sy)
	if it.Centered {
		x -= len([]rune(it.Text)) / 2
	}
	r.s.DrawText(x, y, it.Text, c)
}
