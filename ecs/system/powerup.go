package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/session"
)

// CollectPowerUp consumes item for player. An item is consumed at most once
// and removed immediately.
func CollectPowerUp(w *ecs.World, item, player ecs.Entity) bool {
	pu, ok := ecs.Get(w, item, component.PowerUpComponent.Kind())
	if !ok || pu.Consumed {
		return false
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || !p.Alive {
		return false
	}

	pu.Consumed = true
	kind, reporter, bigPoints := pu.Kind, pu.Session, pu.BigPoints
	ecs.DestroyEntity(w, item)

	switch kind {
	case component.PowerUpScore:
		PlaySound(w, session.SoundCoin)
		if reporter != nil {
			reporter.AddRings(1)
		}
	case component.PowerUpGrowth:
		// A player who is already big, or busy resizing, takes points instead.
		if p.Size == component.SizeBig || !GrowPlayer(w, player) {
			if reporter != nil {
				reporter.AddPoints(bigPoints)
			}
		}
	case component.PowerUpExtraLife:
		if reporter != nil {
			reporter.AddLives(1)
		}
	}
	return true
}
