// Package entity implements the player controller, patrol enemies, the boss
// with its projectiles, and coin pickups.
//
// Each kind resolves against platforms with its own rule: the player uses the
// full four-branch resolver, enemies and the boss only land.
package entity

import (
	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Facing is the direction the player last walked in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the facing name.
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Power is the player's power tier.
type Power int

const (
	PowerSmall Power = iota
	PowerSuper
	PowerFire
)

// String returns the HUD label for the tier.
func (p Power) String() string {
	switch p {
	case PowerSmall:
		return "SMALL"
	case PowerSuper:
		return "SUPER"
	case PowerFire:
		return "FIRE"
	default:
		return "UNKNOWN"
	}
}

// Player is the controlled character.
type Player struct {
	physics.Body
	Facing   Facing
	Grounded bool // Recomputed by every Update
	Lives    int
	Coins    int
	Power    Power

	moveSpeed    float64
	jumpStrength float64
	gravity      float64
}

// NewPlayer creates a player at the spawn point with a full set of lives.
func NewPlayer(t config.Tuning) *Player {
	return &Player{
		Body:         physics.NewBody(t.Player.SpawnX, t.Player.SpawnY, t.Player.Width, t.Player.Height),
		Facing:       FacingRight,
		Lives:        t.Player.StartLives,
		Power:        PowerSmall,
		moveSpeed:    t.Player.MoveSpeed,
		jumpStrength: t.Player.JumpStrength,
		gravity:      t.Physics.Gravity,
	}
}

// Respawn returns a fresh player at the spawn point. Lives and coins are run
// counters and carry over; position, velocity and power start again.
func (p *Player) Respawn(t config.Tuning) *Player {
	np := NewPlayer(t)
	np.Lives = p.Lives
	np.Coins = p.Coins
	return np
}

// MoveLeft walks left.
func (p *Player) MoveLeft() {
	p.VX = -p.moveSpeed
	p.Facing = FacingLeft
}

// MoveRight walks right.
func (p *Player) MoveRight() {
	p.VX = p.moveSpeed
	p.Facing = FacingRight
}

// Stop zeroes horizontal velocity.
func (p *Player) Stop() {
	p.VX = 0
}

// Jump launches the player only when standing on a platform.
func (p *Player) Jump() {
	if p.Grounded {
		p.VY = p.jumpStrength
	}
}

// Update integrates and resolves the player for one tick. It returns false
// when the player fell below the screen; the caller owns the life counter.
func (p *Player) Update(platforms []physics.Platform, screenW, screenH float64) bool {
	p.Integrate(p.gravity)
	p.Grounded, _ = physics.ResolveFull(&p.Body, platforms)
	p.ClampX(screenW)
	return !p.FellOut(screenH)
}

// Damage drops the power tier by one step, stopping at small.
func (p *Player) Damage() {
	if p.Power > PowerSmall {
		p.Power--
	}
}

// PowerUp raises the power tier by one step, stopping at fire.
func (p *Player) PowerUp() {
	if p.Power < PowerFire {
		p.Power++
	}
}

// LoseLife takes one life, never going below zero.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}
