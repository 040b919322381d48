package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// WalkerSystem steps every active walker: probe ahead, turn around on a
// non-exempt hit, then drive the horizontal velocity.
type WalkerSystem struct {
	prober Prober
}

func NewWalkerSystem(prober Prober) *WalkerSystem {
	return &WalkerSystem{prober: prober}
}

func (s *WalkerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.WalkerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, walker *component.Walker, t *component.Transform, v *component.Velocity) {
		if !walker.Active {
			return
		}
		if s.probeBlocked(w, e, walker, t) {
			walker.Direction = walker.Direction.Flip()
			walker.Turns++
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.FlipX = walker.Direction == component.DirRight
			}
		}
		v.X = walker.Direction.Sign() * walker.Speed
	})
}

func (s *WalkerSystem) probeBlocked(w *ecs.World, e ecs.Entity, walker *component.Walker, t *component.Transform) bool {
	if s.prober == nil {
		return false
	}
	halfWidth := t.ScaleX / 2
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		width, _ := body.Footprint(t)
		halfWidth = width / 2
	}
	if halfWidth < 0 {
		halfWidth = -halfWidth
	}

	x0, y0 := t.X, t.Y+walker.ProbeDrop
	x1 := x0 + walker.Direction.Sign()*(halfWidth+walker.ProbeMargin)
	hit, ok := s.prober.Probe(e, x0, y0, x1, y0, 0)
	if !ok {
		return false
	}
	return !walker.Exempt.Has(hit.Category)
}
