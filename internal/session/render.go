package session

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/entity"
	"github.com/vovakirdan/ultrabros/internal/overworld"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Text sizes in logical pixels.
const (
	textLarge = 36
	textSmall = 24
)

var (
	colorLogoPanel   = core.RGB(64, 0, 128)
	colorHill        = core.RGB(34, 139, 34)
	colorPipeRim     = core.RGB(0, 100, 0)
	colorPole        = core.RGB(139, 90, 43)
	colorCoinInner   = core.RGB(255, 255, 0)
	colorFlag        = core.RGB(255, 0, 0)
	colorHPBar       = core.RGB(255, 0, 0)
	colorSlotCleared = core.RGB(0, 255, 0)
	colorSlotOpen    = core.RGB(255, 0, 0)
)

// Render fills dst with the draw list for the current mode. It reads the
// session but never changes it.
func (s *Session) Render(dst *core.DrawList) {
	switch s.mode {
	case ModeMenu:
		s.renderMenu(dst)
	case ModeOverworld:
		s.renderOverworld(dst)
	case ModeLevel:
		s.renderLevel(dst)
	case ModeBoss:
		s.renderArena(dst)
	case ModeGameOver:
		s.renderGameOver(dst)
	case ModeVictory:
		s.renderVictory(dst)
	}
}

func (s *Session) renderMenu(dst *core.DrawList) {
	dst.Clear(core.ColorMenuPurple)
	cx := s.tuning.Screen.Width / 2

	dst.TextCentered(cx, 100, textLarge, "ULTRA BROS", core.ColorWhite)

	dst.FillRect(250, 150, 300, 80, colorLogoPanel)
	dst.StrokeRect(250, 150, 300, 80, 3, core.ColorWhite)
	dst.TextCentered(cx, 190, textSmall, "Broadcast Edition", core.ColorWhite)

	for i, item := range MenuItems {
		y := 280 + float64(i)*60
		color := core.ColorWhite
		if i == s.menuIndex {
			color = core.ColorCoinYellow
			dst.FillPolygon(core.ColorCoinYellow,
				core.Point{X: 270, Y: y + 15},
				core.Point{X: 290, Y: y + 5},
				core.Point{X: 290, Y: y + 25},
			)
		}
		dst.Text(300, y, textLarge, item, color)
	}

	dst.TextCentered(cx, 560, textSmall, "Arrows to choose, Enter to select", core.ColorWhite)
}

func (s *Session) renderOverworld(dst *core.DrawList) {
	dst.Clear(core.ColorSkyBlue)
	anim := s.modeTicks % 40

	// Drifting clouds
	for i := 0; i < 3; i++ {
		x := math.Mod(float64(i*250+anim*2), s.tuning.Screen.Width+100) - 50
		y := 50 + float64(i)*30
		dst.FillEllipse(x, y, 80, 40, core.ColorWhite)
		dst.FillEllipse(x+20, y-10, 60, 40, core.ColorWhite)
		dst.FillEllipse(x+40, y, 60, 40, core.ColorWhite)
	}

	dst.FillEllipse(50, 400, 200, 300, colorHill)
	dst.FillEllipse(500, 420, 250, 280, colorHill)

	// Dotted paths between world nodes
	for i := 0; i < overworld.Worlds-1; i++ {
		a, b := overworld.Anchors[i], overworld.Anchors[i+1]
		for j := 0; j < 10; j++ {
			t := float64(j) / 10
			dst.FillCircle(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, 3, core.ColorWhite)
		}
	}

	for i, at := range overworld.Anchors {
		color := core.ColorGray
		if i <= s.world.Current {
			color = core.ColorNodeGreen
		}
		dst.FillCircle(at.X, at.Y, 30, color)
		dst.StrokeCircle(at.X, at.Y, 30, 3, core.ColorBlack)
		dst.TextCentered(at.X, at.Y, textSmall, fmt.Sprint(i+1), core.ColorBlack)

		for j := 0; j < overworld.Slots; j++ {
			lx, ly := at.X-30+float64(j)*20, at.Y+40
			slot := colorSlotOpen
			if s.world.Grid[i][j] {
				slot = colorSlotCleared
			}
			dst.FillRect(lx, ly, 15, 15, slot)
			dst.StrokeRect(lx, ly, 15, 15, 1, core.ColorBlack)
		}
	}

	// Hero marker bobbing on the current world
	at := s.world.Anchor()
	bob := math.Sin(float64(anim)*0.15) * 5
	dst.FillRect(at.X-8, at.Y-40+bob, 16, 24, core.ColorHeroRed)

	dst.TextCentered(s.tuning.Screen.Width/2, 550, textSmall,
		"1-3 levels, B boss, arrows change world, Esc menu", core.ColorWhite)
}

func (s *Session) renderLevel(dst *core.DrawList) {
	l := s.level
	dst.Clear(l.Sky)
	drawPlatforms(dst, l.Platforms)

	for _, e := range l.Enemies {
		if e.Alive {
			drawEnemy(dst, e)
		}
	}

	for _, c := range l.Coins {
		if c.Collected {
			continue
		}
		scale := c.Scale()
		w, h := c.W*scale, c.H*scale
		dst.FillEllipse(c.X-(w-c.W)/2, c.Y-(h-c.H)/2, w, h, core.ColorCoinYellow)
		dst.FillEllipse(c.X+4, c.Y+4, w-8, h-8, colorCoinInner)
	}

	// Goal flag
	dst.FillRect(l.GoalX, l.GoalY, 10, 100, colorPole)
	dst.FillPolygon(colorFlag,
		core.Point{X: l.GoalX + 10, Y: l.GoalY},
		core.Point{X: l.GoalX + 60, Y: l.GoalY + 20},
		core.Point{X: l.GoalX + 10, Y: l.GoalY + 40},
	)

	drawPlayer(dst, s.player)
	s.renderHUD(dst, fmt.Sprintf("WORLD %d-%d", l.World, l.Index), core.ColorWhite)
}

func (s *Session) renderArena(dst *core.DrawList) {
	a := s.arena
	dst.Clear(a.Sky)
	drawPlatforms(dst, a.Platforms)
	drawBoss(dst, a.Boss)
	drawPlayer(dst, s.player)
	s.renderHUD(dst, fmt.Sprintf("WORLD %d BOSS", a.World), core.ColorSoftRed)
}

func (s *Session) renderHUD(dst *core.DrawList, where string, whereColor core.Color) {
	p := s.player
	dst.FillRect(0, 0, s.tuning.Screen.Width, 40, core.ColorBlack)
	dst.Text(20, 10, textSmall, fmt.Sprintf("MARIO x%d", p.Lives), core.ColorWhite)
	dst.Text(200, 10, textSmall, fmt.Sprintf("COINS: %03d", p.Coins), core.ColorCoinYellow)
	dst.Text(400, 10, textSmall, where, whereColor)

	powerColor := core.ColorWhite
	switch p.Power {
	case entity.PowerSuper:
		powerColor = core.ColorSoftRed
	case entity.PowerFire:
		powerColor = core.ColorOrange
	}
	dst.Text(600, 10, textSmall, p.Power.String(), powerColor)

	if s.paused {
		dst.TextCentered(s.tuning.Screen.Width/2, s.tuning.Screen.Height/2, textLarge, "PAUSED", core.ColorWhite)
	}
}

func (s *Session) renderGameOver(dst *core.DrawList) {
	dst.Clear(core.ColorBlack)
	cx, cy := s.tuning.Screen.Width/2, s.tuning.Screen.Height/2
	dst.TextCentered(cx, cy-50, textLarge, "GAME OVER", colorFlag)
	dst.TextCentered(cx, cy+50, textSmall, "Press ENTER to restart", core.ColorWhite)
}

func (s *Session) renderVictory(dst *core.DrawList) {
	dst.Clear(core.ColorSkyBlue)
	cx, cy := s.tuning.Screen.Width/2, s.tuning.Screen.Height/2

	// Confetti from a throwaway generator so drawing never advances the
	// simulation RNG.
	confetti := core.NewRNG(int64(s.modeTicks/6) + 1)
	colors := []core.Color{core.ColorCoinYellow, core.ColorOrange, core.ColorMagenta, core.ColorCyan}
	for i := 0; i < 10; i++ {
		x := confetti.Range(0, s.tuning.Screen.Width)
		y := confetti.Range(0, s.tuning.Screen.Height)
		c := colors[confetti.Intn(len(colors))]
		dst.FillCircle(x, y, confetti.Range(2, 8), c)
	}

	dst.TextCentered(cx, cy-100, textLarge, "CONGRATULATIONS!", core.ColorCoinYellow)
	dst.TextCentered(cx, cy, textLarge, "YOU SAVED THE KINGDOM!", core.ColorWhite)
	dst.TextCentered(cx, cy+80, textSmall, "Thank you for playing Ultra Bros!", core.ColorWhite)
	dst.TextCentered(cx, cy+130, textSmall, "Press ENTER to return to menu", core.ColorWhite)
}

func drawPlatforms(dst *core.DrawList, platforms []physics.Platform) {
	for _, p := range platforms {
		switch p.Surface {
		case physics.SurfaceBrick:
			for i := 0.0; i < p.W; i += 32 {
				for j := 0.0; j < p.H; j += 16 {
					dst.FillRect(p.X+i, p.Y+j, 30, 14, p.Color)
					dst.StrokeRect(p.X+i, p.Y+j, 30, 14, 1, core.ColorBlack)
				}
			}
		case physics.SurfacePipe:
			dst.FillRect(p.X, p.Y, p.W, p.H, p.Color)
			dst.StrokeRect(p.X, p.Y, p.W, p.H, 3, colorPipeRim)
		default:
			dst.FillRect(p.X, p.Y, p.W, p.H, p.Color)
		}
	}
}

func drawEnemy(dst *core.DrawList, e *entity.Enemy) {
	switch e.Kind {
	case entity.KindShelled:
		dst.FillEllipse(e.X, e.Y+4, e.W, 28, core.ColorKoopaGreen)
		dst.FillEllipse(e.X+4, e.Y+8, 24, 20, core.ColorNodeGreen)
	default:
		dst.FillEllipse(e.X, e.Y+8, e.W, 24, core.ColorGoomba)
		dst.FillEllipse(e.X+4, e.Y+24, 10, 8, core.ColorGoombaFeet)
		dst.FillEllipse(e.X+18, e.Y+24, 10, 8, core.ColorGoombaFeet)
	}
}

func drawPlayer(dst *core.DrawList, p *entity.Player) {
	body := core.ColorHeroBlue
	if p.Power >= entity.PowerSuper {
		body = core.ColorHeroRed
	}
	dst.FillRect(p.X, p.Y, p.W, p.H, body)
	dst.FillRect(p.X+8, p.Y, 16, 8, core.ColorHeroRed)
	dst.FillRect(p.X+8, p.Y+8, 16, 16, core.ColorSkin)

	// Eyes look the way the player faces.
	shift := 0.0
	if p.Facing == entity.FacingLeft {
		shift = -2
	}
	dst.FillRect(p.X+10+shift, p.Y+12, 4, 4, core.ColorBlack)
	dst.FillRect(p.X+18+shift, p.Y+12, 4, 4, core.ColorBlack)
}

func drawBoss(dst *core.DrawList, b *entity.Boss) {
	dst.FillEllipse(b.X, b.Y, b.W, b.H, core.ColorBossGreen)
	for i := 0; i < 3; i++ {
		x, y := b.X+16+float64(i)*16, b.Y+20
		dst.FillPolygon(core.ColorWhite,
			core.Point{X: x, Y: y},
			core.Point{X: x - 5, Y: y + 10},
			core.Point{X: x + 5, Y: y + 10},
		)
	}
	dst.FillEllipse(b.X+16, b.Y-10, 32, 32, core.ColorSkin)
	dst.FillPolygon(core.ColorOrange,
		core.Point{X: b.X + 32, Y: b.Y - 10},
		core.Point{X: b.X + 28, Y: b.Y - 20},
		core.Point{X: b.X + 36, Y: b.Y - 20},
	)
	dst.FillCircle(b.X+24, b.Y+4, 3, core.ColorBlack)
	dst.FillCircle(b.X+40, b.Y+4, 3, core.ColorBlack)

	for _, pr := range b.Projectiles {
		dst.FillCircle(pr.X, pr.Y, 6, core.ColorOrange)
		dst.FillCircle(pr.X, pr.Y, 4, colorCoinInner)
	}

	dst.FillRect(b.X, b.Y-25, 64, 8, core.ColorBlack)
	if b.HP > 0 {
		dst.FillRect(b.X+1, b.Y-24, 20*float64(b.HP), 6, colorHPBar)
	}
}
