package entity

import (
	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Projectile is a boss fireball moving in a straight line.
type Projectile struct {
	X, Y   float64 // Centre
	VX, VY float64
}

// Step moves the projectile one tick.
func (pr *Projectile) Step() {
	pr.X += pr.VX
	pr.Y += pr.VY
}

// Boss chases the player, hops on a timer and fires projectiles on another.
type Boss struct {
	physics.Body
	HP          int
	JumpTimer   int
	AttackTimer int
	Projectiles []Projectile

	cfg        config.BossTuning
	projectile config.ProjectileTuning
	gravity    float64
	screenW    float64
}

// NewBoss creates a boss at its spawn point with full hit points.
func NewBoss(t config.Tuning) *Boss {
	return &Boss{
		Body:       physics.NewBody(t.Boss.SpawnX, t.Boss.SpawnY, t.Boss.Width, t.Boss.Height),
		HP:         t.Boss.HP,
		cfg:        t.Boss,
		projectile: t.Projectile,
		gravity:    t.BossGravity(),
		screenW:    t.Screen.Width,
	}
}

// Update runs one tick of boss behaviour. Order matters: timers, chase,
// jump, attack, physics, then projectiles.
func (b *Boss) Update(p *Player, platforms []physics.Platform, rng *core.RNG) {
	b.JumpTimer++
	b.AttackTimer++

	if p.X < b.X {
		b.VX = -b.cfg.ChaseSpeed
	} else {
		b.VX = b.cfg.ChaseSpeed
	}

	if b.JumpTimer > b.cfg.JumpThreshold && b.VY == 0 {
		b.VY = b.cfg.JumpStrength
		b.JumpTimer = 0
	}

	if b.AttackTimer > b.cfg.AttackThreshold {
		b.fire(p, rng)
		b.AttackTimer = 0
	}

	b.Integrate(b.gravity)
	physics.ResolveLanding(&b.Body, platforms)

	b.stepProjectiles()
}

func (b *Boss) fire(p *Player, rng *core.RNG) {
	dir := -1.0
	if p.X > b.X {
		dir = 1
	}
	cx, cy := b.Center()
	b.Projectiles = append(b.Projectiles, Projectile{
		X:  cx,
		Y:  cy,
		VX: dir * b.projectile.Speed,
		VY: rng.Range(-b.projectile.Drift, b.projectile.Drift),
	})
}

// stepProjectiles advances every projectile and compacts out those that
// left [0, screenW] horizontally.
func (b *Boss) stepProjectiles() {
	kept := b.Projectiles[:0]
	for _, pr := range b.Projectiles {
		pr.Step()
		if pr.X < 0 || pr.X > b.screenW {
			continue
		}
		kept = append(kept, pr)
	}
	b.Projectiles = kept
}

// Stomp applies a stomp if p is falling onto the boss from above. It
// reports whether a hit point was taken.
func (b *Boss) Stomp(p *Player) bool {
	if !physics.Overlaps(p.Rect(), b.Rect()) || p.VY <= 0 || p.Y >= b.Y {
		return false
	}
	b.HP--
	p.VY = b.cfg.StompBounce
	return true
}

// Defeated reports whether the boss has run out of hit points.
func (b *Boss) Defeated() bool {
	return b.HP <= 0
}

// HitsPlayer is the coarse centre-distance test between a projectile and
// the player's box centre.
func HitsPlayer(pr Projectile, p *Player, radius float64) bool {
	cx, cy := p.Center()
	return core.AbsF(pr.X-cx) < radius && core.AbsF(pr.Y-cy) < radius
}

// StrikePlayer damages p once per projectile touching it and removes those
// projectiles. It returns the number of hits.
func (b *Boss) StrikePlayer(p *Player) int {
	hits := 0
	kept := b.Projectiles[:0]
	for _, pr := range b.Projectiles {
		if HitsPlayer(pr, p, b.projectile.HitRadius) {
			p.Damage()
			hits++
			continue
		}
		kept = append(kept, pr)
	}
	b.Projectiles = kept
	return hits
}
