// Package config provides YAML-based tuning for the platformer simulation:
// every gameplay constant lives here so it can be overridden per install
// without touching the simulation code.
package config

import (
	"errors"
	"fmt"
)

// Tuning contains every tunable constant of the simulation.
type Tuning struct {
	Screen     ScreenTuning     `yaml:"screen"`
	Physics    PhysicsTuning    `yaml:"physics"`
	Player     PlayerTuning     `yaml:"player"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Boss       BossTuning       `yaml:"boss"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Coin       CoinTuning       `yaml:"coin"`
	Goal       GoalTuning       `yaml:"goal"`
	Debug      DebugTuning      `yaml:"debug"`
}

// ScreenTuning defines the logical play field and simulation rate.
type ScreenTuning struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Simulation ticks per second
}

// PhysicsTuning defines the shared integration constants.
type PhysicsTuning struct {
	Gravity           float64 `yaml:"gravity"`
	BossGravityFactor float64 `yaml:"boss_gravity_factor"`
}

// PlayerTuning defines the player box, spawn point and controls.
type PlayerTuning struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative is up
	StartLives   int     `yaml:"start_lives"`
}

// EnemyTuning defines the patrol enemies and their roster placement.
type EnemyTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PatrolSpeed  float64 `yaml:"patrol_speed"` // Initial horizontal velocity
	StompBounce  float64 `yaml:"stomp_bounce"`
	BaseCount    int     `yaml:"base_count"` // Enemies per level = base_count + level
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnSpacing float64 `yaml:"spawn_spacing"`
	SpawnY       float64 `yaml:"spawn_y"`
}

// BossTuning defines the boss box, spawn point and behaviour timers.
type BossTuning struct {
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnY          float64 `yaml:"spawn_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HP              int     `yaml:"hp"`
	ChaseSpeed      float64 `yaml:"chase_speed"`
	JumpThreshold   int     `yaml:"jump_threshold"` // Ticks
	JumpStrength    float64 `yaml:"jump_strength"`
	AttackThreshold int     `yaml:"attack_threshold"` // Ticks
	StompBounce     float64 `yaml:"stomp_bounce"`
}

// ProjectileTuning defines boss projectiles.
type ProjectileTuning struct {
	Speed     float64 `yaml:"speed"`
	Drift     float64 `yaml:"drift"`      // Vertical velocity is drawn from [-drift, drift]
	HitRadius float64 `yaml:"hit_radius"` // Centre-distance threshold on both axes
}

// CoinTuning defines coin pickups.
type CoinTuning struct {
	Size   float64 `yaml:"size"`
	Lift   float64 `yaml:"lift"`   // Height above the supporting platform
	Period int     `yaml:"period"` // Animation cycle length in ticks
}

// GoalTuning defines the level exit.
type GoalTuning struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"` // Proximity on both axes
}

// DebugTuning holds developer switches.
type DebugTuning struct {
	Warp bool `yaml:"warp"` // Enables the quick-load key
}

// BossGravity returns the reduced gravity the boss integrates with.
func (t Tuning) BossGravity() float64 {
	return t.Physics.Gravity * t.Physics.BossGravityFactor
}

// Validate reports every value that would break the simulation.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", t.Screen.Width)
	positive("screen.height", t.Screen.Height)
	positive("screen.tick_rate", float64(t.Screen.TickRate))
	positive("player.width", t.Player.Width)
	positive("player.height", t.Player.Height)
	positive("player.move_speed", t.Player.MoveSpeed)
	positive("player.start_lives", float64(t.Player.StartLives))
	positive("enemy.width", t.Enemy.Width)
	positive("enemy.height", t.Enemy.Height)
	positive("boss.width", t.Boss.Width)
	positive("boss.height", t.Boss.Height)
	positive("boss.hp", float64(t.Boss.HP))
	positive("projectile.speed", t.Projectile.Speed)
	positive("projectile.hit_radius", t.Projectile.HitRadius)
	positive("coin.size", t.Coin.Size)
	positive("coin.period", float64(t.Coin.Period))
	positive("goal.radius", t.Goal.Radius)

	if t.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", t.Physics.Gravity))
	}
	if t.Physics.BossGravityFactor < 0 {
		errs = append(errs, fmt.Errorf("physics.boss_gravity_factor must not be negative, got %v", t.Physics.BossGravityFactor))
	}
	if t.Player.JumpStrength >= 0 {
		errs = append(errs, fmt.Errorf("player.jump_strength must be negative (up), got %v", t.Player.JumpStrength))
	}
	if t.Enemy.BaseCount < 0 {
		errs = append(errs, fmt.Errorf("enemy.base_count must not be negative, got %d", t.Enemy.BaseCount))
	}
	if t.Projectile.Drift < 0 {
		errs = append(errs, fmt.Errorf("projectile.drift must not be negative, got %v", t.Projectile.Drift))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
