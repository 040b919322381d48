package system

import (
	"log"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/sequence"
	"github.com/milk9111/ringrush/session"
)

// PlayerGetHit applies one harmful hit. Invincible, dead or mid-resize
// players ignore it; a big player shrinks and a small one dies.
func PlayerGetHit(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Alive || p.Invincible() {
		return false
	}
	if SequenceActive(w, e, component.GroupPlayerSize) {
		return false
	}
	if p.Size == component.SizeBig {
		return ShrinkPlayer(w, e)
	}
	return startPlayerDeath(w, e)
}

// PlayerDieDirectly kills the player regardless of size or invincibility.
// A resize in progress finishes first and then hands over to the death.
func PlayerDieDirectly(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Alive {
		return false
	}
	if SequenceActive(w, e, component.GroupPlayerSize) {
		p.PendingDeath = true
		return true
	}
	return startPlayerDeath(w, e)
}

// GrowPlayer runs the grow sequence on a small, idle player.
func GrowPlayer(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Alive || p.Size != component.SizeSmall {
		return false
	}
	if SequenceActive(w, e, component.GroupPlayerSize) {
		return false
	}

	tuning := p.Tuning
	p.Size = component.SizeBig

	steps := []sequence.Step{
		sequence.Do(func() {
			setControl(w, e, false)
			PlaySound(w, session.SoundGrow)
			SetScale(w, e, tuning.BigScale, tuning.BigScale)
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				SetPosition(w, e, t.X, t.Y-tuning.SizeLift)
			}
			FreezeY(w, e, true)
		}),
	}
	steps = append(steps, flickerSteps(w, e, tuning, tuning.BigScale, tuning.SmallScale)...)
	steps = append(steps,
		sequence.Do(func() {
			FreezeY(w, e, false)
			setControl(w, e, true)
		}),
		pendingDeathStep(w, e),
	)

	return startSizeSequence(w, e, sequence.New("player.grow", component.GroupPlayerSize, steps...))
}

// ShrinkPlayer runs the shrink sequence and opens the invincibility window.
func ShrinkPlayer(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Alive || p.Size != component.SizeBig {
		return false
	}
	if SequenceActive(w, e, component.GroupPlayerSize) {
		return false
	}

	tuning := p.Tuning
	p.Size = component.SizeSmall
	p.Invincibility = tuning.InvincibilityWindow

	steps := []sequence.Step{
		sequence.Do(func() {
			setControl(w, e, false)
			PlaySound(w, session.SoundShrink)
			FreezeY(w, e, true)
		}),
	}
	steps = append(steps, flickerSteps(w, e, tuning, tuning.SmallScale, tuning.BigScale)...)
	steps = append(steps,
		sequence.Do(func() {
			FreezeY(w, e, false)
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				SetPosition(w, e, t.X, t.Y+tuning.SizeLift)
			}
			setControl(w, e, true)
		}),
		pendingDeathStep(w, e),
	)

	return startSizeSequence(w, e, sequence.New("player.shrink", component.GroupPlayerSize, steps...))
}

// flickerSteps alternates the scale between first and second on the real
// clock, so the feedback shows even when simulation time is slowed. An odd
// tick count leaves the player at first.
func flickerSteps(w *ecs.World, e ecs.Entity, tuning component.PlayerTuning, first, second float64) []sequence.Step {
	steps := make([]sequence.Step, 0, tuning.SizeTicks)
	for i := 0; i < tuning.SizeTicks; i++ {
		scale := first
		if i%2 == 1 {
			scale = second
		}
		steps = append(steps, sequence.ThenReal(func() {
			SetScale(w, e, scale, scale)
		}, tuning.SizeInterval))
	}
	return steps
}

// pendingDeathStep continues with the death sequence when a forced death
// arrived while the resize was running.
func pendingDeathStep(w *ecs.World, e ecs.Entity) sequence.Step {
	return sequence.Defer(func() []sequence.Step {
		p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok || !p.PendingDeath || !p.Alive {
			return nil
		}
		p.PendingDeath = false
		return deathSteps(w, e)
	})
}

func startSizeSequence(w *ecs.World, e ecs.Entity, seq *sequence.Sequence) bool {
	if err := StartSequence(w, e, seq); err != nil {
		log.Printf("player: start %s: %v", seq.Name(), err)
		return false
	}
	return true
}

func startPlayerDeath(w *ecs.World, e ecs.Entity) bool {
	return startSizeSequence(w, e, sequence.New("player.die", component.GroupPlayerSize, deathSteps(w, e)...))
}

// deathSteps plays the death pose, leaps up on an eased curve, pauses and
// reports the lost life.
func deathSteps(w *ecs.World, e ecs.Entity) []sequence.Step {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	p.Alive = false
	tuning := p.Tuning

	return []sequence.Step{
		sequence.Then(func() {
			setControl(w, e, false)
			StopMusic(w)
			PlaySound(w, session.SoundDiePlayer)
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Enabled = true
				anim.Dead = true
			}
			SetLayer(w, e, component.LayerDeath)
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.SortingLayer = "Death"
			}
		}, tuning.DeathHold),
		sequence.Defer(func() []sequence.Step {
			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				return nil
			}
			x, fromY := t.X, t.Y
			return []sequence.Step{
				sequence.Tween(tuning.DeathLeapDuration, func(progress float64) {
					SetPosition(w, e, x, fromY-tuning.DeathLeapHeight*smoothStep(progress))
					SetVelocity(w, e, 0, 0)
				}),
			}
		}),
		sequence.Then(func() {
			SetVelocity(w, e, 0, 0)
		}, tuning.DeathPause),
		sequence.Do(func() {
			if p.Session != nil {
				p.Session.LoseLife()
			}
		}),
	}
}

// setControl toggles player input and the animator together.
func setControl(w *ecs.World, e ecs.Entity, enabled bool) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.ControlEnabled = enabled
	}
	setAnimationEnabled(w, e, enabled)
}

func smoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// InvincibilitySystem decays the invincibility window on simulation time.
type InvincibilitySystem struct{}

func NewInvincibilitySystem() *InvincibilitySystem {
	return &InvincibilitySystem{}
}

func (s *InvincibilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Dt
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Invincibility <= 0 {
			return
		}
		p.Invincibility -= dt
		if p.Invincibility < 0 {
			p.Invincibility = 0
		}
	})
}
