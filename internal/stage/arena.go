package stage

import (
	"fmt"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/core"
	"github.com/vovakirdan/ultrabros/internal/entity"
	"github.com/vovakirdan/ultrabros/internal/physics"
)

// Arena is the boss level of a world.
type Arena struct {
	World     int
	Sky       core.Color
	Platforms []physics.Platform
	Boss      *entity.Boss
	Completed bool
}

// NewArena builds the boss arena for world `world`. It panics on a world
// outside [1,5].
func NewArena(world int, lay Layouts, t config.Tuning) *Arena {
	if world < 1 || world > WorldCount {
		panic(fmt.Sprintf("stage: world index %d out of range [1,%d]", world, WorldCount))
	}
	return &Arena{
		World:     world,
		Sky:       lay.Arena.Sky,
		Platforms: append([]physics.Platform(nil), lay.Arena.Platforms...),
		Boss:      entity.NewBoss(t),
	}
}

// Update advances the boss, then checks the stomp and projectile contacts.
// The completed flag never clears once set.
func (a *Arena) Update(p *entity.Player, rng *core.RNG) []Interaction {
	var out []Interaction

	a.Boss.Update(p, a.Platforms, rng)

	if a.Boss.Stomp(p) {
		out = append(out, Interaction{Kind: InteractionBossHit, Index: -1})
		if a.Boss.Defeated() && !a.Completed {
			a.Completed = true
			out = append(out, Interaction{Kind: InteractionBossDefeated, Index: -1})
		}
	}

	for i := a.Boss.StrikePlayer(p); i > 0; i-- {
		out = append(out, Interaction{Kind: InteractionProjectileHit, Index: -1})
	}

	return out
}
