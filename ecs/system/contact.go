package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// stompNormal is how steeply the player must come down on an enemy body
// (seen from the enemy) for the touch to count as a stomp.
const stompNormal = -0.5

// ContactSystem turns the step's raw contacts into entity transitions. Each
// contact is looked at from both sides. Only contact starts qualify, and an
// entity reacts to at most one qualifying contact per step.
type ContactSystem struct {
	spawner Spawner
}

func NewContactSystem(spawner Spawner) *ContactSystem {
	return &ContactSystem{spawner: spawner}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, c := range w.Events().DrainContacts() {
		if c.Phase != ecs.ContactBegin {
			continue
		}
		s.dispatch(w, c)
		s.dispatch(w, c.Swap())
	}
}

// dispatch handles c from the point of view of c.A.
func (s *ContactSystem) dispatch(w *ecs.World, c ecs.Contact) {
	if !w.IsAlive(c.A) || !w.IsAlive(c.B) {
		return
	}

	switch {
	case ecs.Has(w, c.A, component.BlockComponent.Kind()):
		// The player must have come from below.
		if c.CategoryB != component.CategoryPlayer || c.NormalY <= 0 {
			return
		}
		if claimContact(w, c.A) {
			HitBlock(w, s.spawner, c.A, c.B)
		}

	case ecs.Has(w, c.A, component.EnemyComponent.Kind()):
		if c.CategoryB != component.CategoryPlayer {
			return
		}
		enemy, _ := ecs.Get(w, c.A, component.EnemyComponent.Kind())
		if enemy.State != component.EnemyPatrolling {
			return
		}
		stomp := c.CategoryA == component.CategoryWeakPoint || c.NormalY < stompNormal
		if claimContact(w, c.A) {
			EnemyTouchPlayer(w, c.A, c.B, stomp)
		}

	case ecs.Has(w, c.A, component.PowerUpComponent.Kind()):
		if c.CategoryB != component.CategoryPlayer {
			return
		}
		if claimContact(w, c.A) {
			CollectPowerUp(w, c.A, c.B)
		}

	case ecs.Has(w, c.A, component.TriggerComponent.Kind()):
		switch c.CategoryB {
		case component.CategoryPlayer, component.CategoryEnemy:
			FireTrigger(w, c.A, c.B)
		}
	}
}
