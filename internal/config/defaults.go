package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning. It must agree with
// defaults/tuning.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Screen: ScreenTuning{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Physics: PhysicsTuning{
			Gravity:           0.8,
			BossGravityFactor: 0.7,
		},
		Player: PlayerTuning{
			SpawnX:       100,
			SpawnY:       400,
			Width:        32,
			Height:       48,
			MoveSpeed:    5,
			JumpStrength: -15,
			StartLives:   3,
		},
		Enemy: EnemyTuning{
			Width:        32,
			Height:       32,
			PatrolSpeed:  -2,
			StompBounce:  -8,
			BaseCount:    2,
			SpawnX:       200,
			SpawnSpacing: 150,
			SpawnY:       450,
		},
		Boss: BossTuning{
			SpawnX:          600,
			SpawnY:          300,
			Width:           64,
			Height:          64,
			HP:              3,
			ChaseSpeed:      2,
			JumpThreshold:   120,
			JumpStrength:    -12,
			AttackThreshold: 90,
			StompBounce:     -12,
		},
		Projectile: ProjectileTuning{
			Speed:     5,
			Drift:     2,
			HitRadius: 20,
		},
		Coin: CoinTuning{
			Size:   24,
			Lift:   40,
			Period: 60,
		},
		Goal: GoalTuning{
			X:      700,
			Y:      400,
			Radius: 50,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
