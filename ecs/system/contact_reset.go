package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// ContactResetSystem clears every per-step contact guard. It must run last.
type ContactResetSystem struct{}

func NewContactResetSystem() *ContactResetSystem {
	return &ContactResetSystem{}
}

func (s *ContactResetSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ContactGuardComponent.Kind(), func(_ ecs.Entity, guard *component.ContactGuard) {
		guard.Handled = false
	})
}
