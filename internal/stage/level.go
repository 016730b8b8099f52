package stage

import (
	"fmt"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/entity"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// InteractionKind names something that happened between the player and a
// stage during one tick.
type InteractionKind int

const (
	InteractionStomp InteractionKind = iota
	InteractionDamage
	InteractionCoin
	InteractionGoal
	InteractionBossHit
	InteractionBossDefeated
	InteractionProjectileHit
)

// String returns the interaction name.
func (k InteractionKind) String() string {
	switch k {
	case InteractionStomp:
		return "stomp"
	case InteractionDamage:
		return "damage"
	case InteractionCoin:
		return "coin"
	case InteractionGoal:
		return "goal"
	case InteractionBossHit:
		return "boss_hit"
	case InteractionBossDefeated:
		return "boss_defeated"
	case InteractionProjectileHit:
		return "projectile_hit"
	default:
		return "unknown"
	}
}

// Interaction is one player interaction. Index is the enemy or coin index
// where that applies, otherwise -1.
type Interaction struct {
	Kind  InteractionKind
	Index int
}

// Level is one regular level of a world.
type Level struct {
	World     int // 1..5
	Index     int // 1..3
	Theme     string
	Sky       core.Color
	Platforms []physics.Platform
	Enemies   []*entity.Enemy
	Coins     []*entity.Coin
	GoalX     float64
	GoalY     float64
	Completed bool

	goalRadius float64
	screenW    float64
}

// NewLevel builds level `index` of world `world` from the layouts. It panics
// on an index outside [1,5] x [1,3]; callers only request valid levels.
func NewLevel(world, index int, lay Layouts, t config.Tuning) *Level {
	if world < 1 || world > WorldCount {
		panic(fmt.Sprintf("stage: world index %d out of range [1,%d]", world, WorldCount))
	}
	if index < 1 || index > LevelsPerWorld {
		panic(fmt.Sprintf("stage: level index %d out of range [1,%d]", index, LevelsPerWorld))
	}

	w := lay.World(world)
	l := &Level{
		World:      world,
		Index:      index,
		Theme:      w.Theme,
		Sky:        w.Sky,
		Platforms:  append([]physics.Platform(nil), w.Platforms...),
		GoalX:      t.Goal.X,
		GoalY:      t.Goal.Y,
		goalRadius: t.Goal.Radius,
		screenW:    t.Screen.Width,
	}

	// Later levels of a world get one more enemy each, alternating kinds.
	count := t.Enemy.BaseCount + index
	for i := 0; i < count; i++ {
		kind := entity.KindGroundPatrol
		if i%2 == 1 {
			kind = entity.KindShelled
		}
		x := t.Enemy.SpawnX + float64(i)*t.Enemy.SpawnSpacing
		l.Enemies = append(l.Enemies, entity.NewEnemy(x, t.Enemy.SpawnY, kind, t))
	}

	// One coin centred above each of the three platforms after the ground.
	for _, p := range l.Platforms[1:minPlatforms] {
		x := p.X + p.W/2 - t.Coin.Size/2
		l.Coins = append(l.Coins, entity.NewCoin(x, p.Y-t.Coin.Lift, t))
	}

	return l
}

// Update advances enemies and coins and evaluates player contact. The
// completed flag never clears once set.
func (l *Level) Update(p *entity.Player) []Interaction {
	var out []Interaction

	for i, e := range l.Enemies {
		e.Update(l.Platforms, l.screenW)
		switch e.Interact(p) {
		case entity.OutcomeStomp:
			out = append(out, Interaction{Kind: InteractionStomp, Index: i})
		case entity.OutcomeDamage:
			out = append(out, Interaction{Kind: InteractionDamage, Index: i})
		}
	}

	for i, c := range l.Coins {
		c.Tick()
		if c.TryCollect(p) {
			out = append(out, Interaction{Kind: InteractionCoin, Index: i})
		}
	}

	if !l.Completed && l.AtGoal(p) {
		l.Completed = true
		out = append(out, Interaction{Kind: InteractionGoal, Index: -1})
	}

	return out
}

// AtGoal reports whether the player's corner is within the goal radius of
// the goal anchor on both axes.
func (l *Level) AtGoal(p *entity.Player) bool {
	return core.AbsF(p.X-l.GoalX) < l.goalRadius && core.AbsF(p.Y-l.GoalY) < l.goalRadius
}

// AliveEnemies returns how many enemies are still alive.
func (l *Level) AliveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
