package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// debugGlyphW is the width of one ebitenutil debug-font glyph.
const debugGlyphW = 6

// drawList paints every primitive in order.
func drawList(dst *ebiten.Image, list *core.DrawList) {
	dst.Fill(list.Background.RGBA())

	for i := range list.Items {
		it := &list.Items[i]
		c := it.Color.RGBA()
		switch it.Shape {
		case core.ShapeRect:
			if it.Filled {
				vector.FillRect(dst, f32(it.X), f32(it.Y), f32(it.W), f32(it.H), c, false)
			} else {
				vector.StrokeRect(dst, f32(it.X), f32(it.Y), f32(it.W), f32(it.H), f32(it.Stroke), c, false)
			}
		case core.ShapeEllipse:
			fillEllipse(dst, it.X+it.W/2, it.Y+it.H/2, it.W/2, it.H/2, it)
		case core.ShapeCircle:
			if it.Filled {
				vector.FillCircle(dst, f32(it.X), f32(it.Y), f32(it.Radius), c, true)
			} else {
				vector.StrokeCircle(dst, f32(it.X), f32(it.Y), f32(it.Radius), f32(it.Stroke), c, true)
			}
		case core.ShapePolygon:
			fillPolygon(dst, it)
		case core.ShapeLine:
			if len(it.Points) == 2 {
				a, b := it.Points[0], it.Points[1]
				vector.StrokeLine(dst, f32(a.X), f32(a.Y), f32(b.X), f32(b.Y), f32(math.Max(it.Stroke, 1)), c, true)
			}
		case core.ShapeText:
			x := it.X
			if it.Centered {
				x -= float64(len(it.Text)*debugGlyphW) / 2
			}
			ebitenutil.DebugPrintAt(dst, it.Text, int(x), int(it.Y))
		}
	}
}

// fillEllipse fills one horizontal span per pixel row.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, it *core.Primitive) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c := it.Color.RGBA()
	for y := math.Floor(cy - ry); y < cy+ry; y++ {
		dy := (y + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		vector.FillRect(dst, f32(cx-half), f32(y), f32(2*half), 1, c, false)
	}
}

// fillPolygon fills with the even-odd rule, one scanline per pixel row.
func fillPolygon(dst *ebiten.Image, it *core.Primitive) {
	pts := it.Points
	if len(pts) < 3 {
		return
	}
	c := it.Color.RGBA()

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	xs := make([]float64, 0, len(pts))
	for y := math.Floor(minY); y < maxY; y++ {
		sy := y + 0.5
		xs = xs[:0]
		j := len(pts) - 1
		for i := range pts {
			a, b := pts[i], pts[j]
			if (a.Y > sy) != (b.Y > sy) {
				xs = append(xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
			j = i
		}
		sortFloats(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			vector.FillRect(dst, f32(xs[k]), f32(y), f32(xs[k+1]-xs[k]), 1, c, false)
		}
	}
}

// sortFloats is an insertion sort; scanlines cross only a handful of edges.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

func f32(v float64) float32 {
	return float32(v)
}
