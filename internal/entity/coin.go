package entity

import (
	"math"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Coin is a pickup. Collection is one-way.
type Coin struct {
	X, Y      float64
	W, H      float64
	Collected bool
	Phase     int // Animation counter in [0, period)

	period int
}

// NewCoin creates an uncollected coin with its top-left corner at (x, y).
func NewCoin(x, y float64, t config.Tuning) *Coin {
	return &Coin{X: x, Y: y, W: t.Coin.Size, H: t.Coin.Size, period: t.Coin.Period}
}

// Rect returns the coin's bounding box.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Tick advances the animation phase.
func (c *Coin) Tick() {
	c.Phase = (c.Phase + 1) % c.period
}

// Scale returns the pulse factor the coin is drawn with.
func (c *Coin) Scale() float64 {
	return 1 + math.Sin(float64(c.Phase)*0.1)*0.1
}

// TryCollect collects the coin if p touches it and credits the player.
func (c *Coin) TryCollect(p *Player) bool {
	if c.Collected || !physics.Overlaps(p.Rect(), c.Rect()) {
		return false
	}
	c.Collected = true
	p.Coins++
	return true
}
