package core

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is an opaque 24-bit RGB colour used by draw primitives.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Named converts a colornames entry (or any RGBA) to a Color, dropping alpha.
func Named(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the colour as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette inspired by 8-bit console platformers.
var (
	ColorSkyBlue     = RGB(146, 189, 221)
	ColorGroundBrown = RGB(139, 69, 19)
	ColorPipeGreen   = RGB(0, 148, 0)
	ColorBrickRed    = RGB(183, 73, 0)
	ColorCoinYellow  = Named(colornames.Gold)
	ColorHeroRed     = RGB(228, 0, 0)
	ColorHeroBlue    = RGB(0, 0, 228)
	ColorWhite       = Named(colornames.White)
	ColorBlack       = Named(colornames.Black)
	ColorPurple      = Named(colornames.Purple)
	ColorOrange      = Named(colornames.Orange)
	ColorGray        = RGB(128, 128, 128)
	ColorSkin        = RGB(255, 220, 177)
	ColorMenuPurple  = RGB(32, 0, 64)
	ColorBossSky     = RGB(64, 0, 0)
	ColorFireRed     = RGB(255, 69, 0)
	ColorNodeGreen   = RGB(0, 255, 0)
	ColorSoftRed     = RGB(255, 100, 100)
	ColorGoomba      = RGB(139, 69, 19)
	ColorGoombaFeet  = RGB(101, 67, 33)
	ColorKoopaGreen  = RGB(0, 200, 0)
	ColorBossGreen   = RGB(0, 128, 0)
	ColorMagenta     = Named(colornames.Magenta)
	ColorCyan        = Named(colornames.Cyan)
)

// ParseHex parses "#rrggbb" (leading '#' optional). The second return is false
// for malformed input.
func ParseHex(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, false
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, false
	}
	return c, true
}
