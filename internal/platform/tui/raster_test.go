package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// 80x24 cells: 10 logical units per column, 25 per row.
func newTestScreen() *core.Screen {
	return core.NewScreen(80, 24)
}

func TestRasterizeBackground(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.Clear(core.ColorSkyBlue)
	Rasterize(d, s)

	for _, p := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		if got := s.GetCell(p[0], p[1]).BG; got != core.ColorSkyBlue {
			t.Errorf("BG at %v = %v, expected %v", p, got, core.ColorSkyBlue)
		}
	}
}

func TestRasterizeRect(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.Clear(core.ColorSkyBlue)
	d.FillRect(0, 500, 800, 100, core.ColorGroundBrown)
	Rasterize(d, s)

	tests := []struct {
		x, y int
		want core.Color
	}{
		{0, 20, core.ColorGroundBrown},
		{79, 23, core.ColorGroundBrown},
		{0, 19, core.ColorSkyBlue},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y).BG; got != tt.want {
			t.Errorf("BG at (%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeTinyShapesCoverACell(t *testing.T) {
	tests := []struct {
		name string
		draw func(*core.DrawList)
		x, y int
	}{
		{"rect", func(d *core.DrawList) { d.FillRect(100, 100, 1, 1, core.ColorCoinYellow) }, 10, 4},
		{"circle", func(d *core.DrawList) { d.FillCircle(405, 312, 3, core.ColorCoinYellow) }, 40, 12},
		{"polygon", func(d *core.DrawList) {
			d.FillPolygon(core.ColorCoinYellow,
				core.Point{X: 400, Y: 300}, core.Point{X: 402, Y: 300}, core.Point{X: 401, Y: 302})
		}, 40, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScreen()
			d := core.NewDrawList()
			tt.draw(d)
			Rasterize(d, s)
			if got := s.GetCell(tt.x, tt.y).BG; got != core.ColorCoinYellow {
				t.Errorf("BG at (%d, %d) = %v, expected coin yellow", tt.x, tt.y, got)
			}
		})
	}
}

func TestRasterizeCircle(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.FillCircle(400, 300, 100, core.ColorNodeGreen)
	Rasterize(d, s)

	if got := s.GetCell(40, 12).BG; got != core.ColorNodeGreen {
		t.Errorf("centre BG = %v, expected green", got)
	}
	// Bounding box corner lies outside the circle.
	if got := s.GetCell(30, 8).BG; got == core.ColorNodeGreen {
		t.Error("corner of the bounding box should not be painted")
	}
}

func TestRasterizeStrokeRect(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.StrokeRect(250, 150, 300, 100, 3, core.ColorWhite)
	Rasterize(d, s)

	if got := s.GetCell(25, 6).BG; got != core.ColorWhite {
		t.Errorf("top-left BG = %v, expected white", got)
	}
	if got := s.GetCell(40, 8).BG; got == core.ColorWhite {
		t.Error("inside of an outline should stay unpainted")
	}
}

func TestRasterizeLine(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.Line(0, 0, 800, 0, 1, core.ColorWhite)
	Rasterize(d, s)

	for _, x := range []int{0, 40, 79} {
		if got := s.GetCell(x, 0).BG; got != core.ColorWhite {
			t.Errorf("BG at (%d, 0) = %v, expected white", x, got)
		}
	}
}

func TestRasterizeText(t *testing.T) {
	s := newTestScreen()
	d := core.NewDrawList()
	d.Clear(core.ColorBlack)
	d.FillRect(0, 0, 800, 40, core.ColorMenuPurple)
	d.Text(200, 10, 24, "COINS: 000", core.ColorCoinYellow)
	d.TextCentered(400, 300, 36, "ABCD", core.ColorWhite)
	Rasterize(d, s)

	if got := s.Row(0)[20:30]; got != "COINS: 000" {
		t.Errorf("Row(0)[20:30] = %q, expected COINS: 000", got)
	}
	c := s.GetCell(20, 0)
	if c.FG != core.ColorCoinYellow || c.BG != core.ColorMenuPurple {
		t.Errorf("text cell = %+v, expected yellow over purple", c)
	}
	if got := s.Row(12)[38:42]; got != "ABCD" {
		t.Errorf("Row(12)[38:42] = %q, expected ABCD", got)
	}
}

func TestInsidePolygon(t *testing.T) {
	square := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0.5, 9.5, true},
		{15, 5, false},
		{-1, -1, false},
	}
	for _, tt := range tests {
		if got := insidePolygon(square, tt.x, tt.y); got != tt.want {
			t.Errorf("insidePolygon(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.FillBackground(core.ColorSkyBlue)
	s.DrawText(2, 1, "WORLD 1-1", core.ColorWhite)

	out := RenderScreen(s)
	if !strings.Contains(out, "WORLD 1-1") {
		t.Errorf("RenderScreen() = %q, expected the text", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen() has %d newlines, expected 2", got)
	}
}
