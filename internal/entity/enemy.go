package entity

import (
	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Kind is the enemy variant. Both variants behave the same; they differ
// only in how they are drawn.
type Kind int

const (
	KindGroundPatrol Kind = iota
	KindShelled
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGroundPatrol:
		return "goomba"
	case KindShelled:
		return "koopa"
	default:
		return "unknown"
	}
}

// Outcome is the result of a player touching an enemy.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeStomp
	OutcomeDamage
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeStomp:
		return "stomp"
	case OutcomeDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Enemy is a patrolling ground enemy. A defeated enemy stays in the roster
// but never moves or interacts again.
type Enemy struct {
	physics.Body
	Kind  Kind
	Alive bool

	gravity     float64
	stompBounce float64
}

// NewEnemy creates a living enemy walking at the patrol speed.
func NewEnemy(x, y float64, kind Kind, t config.Tuning) *Enemy {
	b := physics.NewBody(x, y, t.Enemy.Width, t.Enemy.Height)
	b.VX = t.Enemy.PatrolSpeed
	return &Enemy{
		Body:        b,
		Kind:        kind,
		Alive:       true,
		gravity:     t.Physics.Gravity,
		stompBounce: t.Enemy.StompBounce,
	}
}

// Update moves the enemy one tick and turns it around at the screen edges.
func (e *Enemy) Update(platforms []physics.Platform, screenW float64) {
	if !e.Alive {
		return
	}
	e.Integrate(e.gravity)
	physics.ResolveLanding(&e.Body, platforms)
	if e.X <= 0 || e.X >= screenW-e.W {
		e.VX = -e.VX
	}
}

// Interact applies the result of p touching e. A falling player whose top is
// above the enemy's top stomps it; any other contact costs a power tier.
// Contact is re-evaluated every tick, so standing in an enemy keeps
// stripping power.
func (e *Enemy) Interact(p *Player) Outcome {
	if !e.Alive || !physics.Overlaps(p.Rect(), e.Rect()) {
		return OutcomeNone
	}
	if p.VY > 0 && p.Y < e.Y {
		e.Alive = false
		p.VY = e.stompBounce
		return OutcomeStomp
	}
	p.Damage()
	return OutcomeDamage
}
