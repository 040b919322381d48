package system

import (
	"fmt"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/sequence"
)

// Spawner builds the entities gameplay sequences create at runtime.
type Spawner interface {
	SpawnPowerUp(w *ecs.World, kind component.PowerUpKind, x, y float64, session component.Reporter) (ecs.Entity, error)
	SpawnParticles(w *ecs.World, x, y float64) (ecs.Entity, error)
}

func seqNow(w *ecs.World) sequence.Time {
	c := w.Clock()
	return sequence.Time{Sim: c.Sim, Real: c.Real}
}

// StartSequence runs seq on e, creating the entity's runner on first use.
// Steps stop as soon as e is destroyed.
func StartSequence(w *ecs.World, e ecs.Entity, seq *sequence.Sequence) error {
	seqs, ok := ecs.Get(w, e, component.SequencesComponent.Kind())
	if !ok {
		seqs = &component.Sequences{}
		if err := ecs.Add(w, e, component.SequencesComponent.Kind(), seqs); err != nil {
			return fmt.Errorf("sequence %s: %w", seq.Name(), err)
		}
	}
	return seqs.Runner.Start(seq, seqNow(w), func() bool { return w.IsAlive(e) })
}

// SequenceActive reports whether e runs a sequence of group g.
func SequenceActive(w *ecs.World, e ecs.Entity, g sequence.Group) bool {
	seqs, ok := ecs.Get(w, e, component.SequencesComponent.Kind())
	if !ok {
		return false
	}
	return seqs.Runner.Active(g)
}

// SetPosition moves e and asks the physics host to follow.
func SetPosition(w *ecs.World, e ecs.Entity, x, y float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.X, t.Y = x, y
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Teleport = true
		if body.FreezeY {
			body.FreezeAtY = y
		}
	}
}

// SetScale changes the visual and collider scale of e.
func SetScale(w *ecs.World, e ecs.Entity, sx, sy float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.ScaleX, t.ScaleY = sx, sy
}

// SetVelocity overwrites the velocity of e, if it has one.
func SetVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) {
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = vx, vy
	}
}

// FreezeY pins e at its current height, or releases it.
func FreezeY(w *ecs.World, e ecs.Entity, frozen bool) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	body.FreezeY = frozen
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && frozen {
		body.FreezeAtY = t.Y
	}
}

// SetLayer moves every collider of e to layer.
func SetLayer(w *ecs.World, e ecs.Entity, layer component.CollisionLayer) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Layer = layer
	}
}

// PlaySound queues a one-shot sound for the audio host.
func PlaySound(w *ecs.World, key string) {
	if w == nil || key == "" {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SoundRequestComponent.Kind(), &component.SoundRequest{Key: key})
}

// PlayMusic queues a music change for the audio host.
func PlayMusic(w *ecs.World, key string) {
	if w == nil {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MusicRequestComponent.Kind(), &component.MusicRequest{Key: key})
}

// StopMusic queues a request to silence the current track.
func StopMusic(w *ecs.World) {
	if w == nil {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MusicRequestComponent.Kind(), &component.MusicRequest{Stop: true})
}

// claimContact sets the per-step debounce flag of e and reports whether this
// is the first qualifying contact of the step.
func claimContact(w *ecs.World, e ecs.Entity) bool {
	guard, ok := ecs.Get(w, e, component.ContactGuardComponent.Kind())
	if !ok {
		guard = &component.ContactGuard{}
		if err := ecs.Add(w, e, component.ContactGuardComponent.Kind(), guard); err != nil {
			return false
		}
	}
	if guard.Handled {
		return false
	}
	guard.Handled = true
	return true
}

func setAnimationEnabled(w *ecs.World, e ecs.Entity, enabled bool) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Enabled = enabled
	}
}
