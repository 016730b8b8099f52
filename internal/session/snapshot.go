package session

import "github.com/vovakirdan/ultrabros/internal/overworld"

// Snapshot contains the complete session state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Mode      string
	MenuIndex int
	Paused    bool
	Quit      bool

	// Player state
	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Grounded           bool
	Facing             int
	Lives              int
	Coins              int
	Power              int

	// Active level or arena (World is 0 when neither is active)
	World      int
	LevelIndex int // 0 for an arena
	Completed  bool

	// Enemy states (each enemy is 5 values: X, Y, VX, VY, Alive)
	EnemyData []float64

	// Coin states (each coin is 2 ints: Collected, Phase)
	CoinData []int

	// Boss state
	BossHP          int
	BossX, BossY    float64
	BossJumpTimer   int
	BossAttackTimer int

	// Projectile states (each projectile is 4 values: X, Y, VX, VY)
	ProjectileData []float64

	// Progression
	CurrentWorld int
	Grid         [overworld.Worlds][overworld.Slots]bool

	// RNG state
	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Tick:         s.tick,
		Mode:         s.mode.String(),
		MenuIndex:    s.menuIndex,
		Paused:       s.paused,
		Quit:         s.quit,
		PlayerX:      p.X,
		PlayerY:      p.Y,
		PlayerVX:     p.VX,
		PlayerVY:     p.VY,
		Grounded:     p.Grounded,
		Facing:       int(p.Facing),
		Lives:        p.Lives,
		Coins:        p.Coins,
		Power:        int(p.Power),
		CurrentWorld: s.world.Current,
		Grid:         s.world.Grid,
		RNGState:     s.rng.State(),
	}

	if l := s.level; l != nil {
		snap.World = l.World
		snap.LevelIndex = l.Index
		snap.Completed = l.Completed
		for _, e := range l.Enemies {
			alive := 0.0
			if e.Alive {
				alive = 1
			}
			snap.EnemyData = append(snap.EnemyData, e.X, e.Y, e.VX, e.VY, alive)
		}
		for _, c := range l.Coins {
			collected := 0
			if c.Collected {
				collected = 1
			}
			snap.CoinData = append(snap.CoinData, collected, c.Phase)
		}
	}

	if a := s.arena; a != nil {
		snap.World = a.World
		snap.Completed = a.Completed
		b := a.Boss
		snap.BossHP = b.HP
		snap.BossX, snap.BossY = b.X, b.Y
		snap.BossJumpTimer = b.JumpTimer
		snap.BossAttackTimer = b.AttackTimer
		for _, pr := range b.Projectiles {
			snap.ProjectileData = append(snap.ProjectileData, pr.X, pr.Y, pr.VX, pr.VY)
		}
	}

	return snap
}
