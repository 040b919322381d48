package system

import (
	"log"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/sequence"
	"github.com/milk9111/ringrush/session"
)

// HitBlock applies a hit from below by player. It reports whether the block
// reacted; exhausted, broken or still-bouncing blocks ignore the hit.
func HitBlock(w *ecs.World, spawner Spawner, block, player ecs.Entity) bool {
	b, ok := ecs.Get(w, block, component.BlockComponent.Kind())
	if !ok || b.State != component.BlockActive || b.Hits <= 0 {
		return false
	}
	if SequenceActive(w, block, component.GroupBlockHit) {
		return false
	}

	big := false
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		big = p.Size == component.SizeBig
	}

	b.Hits--

	var seq *sequence.Sequence
	switch {
	case b.Variant == component.BlockBreakable && big:
		b.State = component.BlockBroken
		seq = sequence.New("block.break", component.GroupBlockHit, breakSteps(w, spawner, block)...)
	case b.Hits > 0:
		seq = sequence.New("block.bounce", component.GroupBlockHit, bounceSteps(w, spawner, block)...)
	case b.Variant == component.BlockBreakable:
		b.State = component.BlockExhausted
		seq = sequence.New("block.bounce", component.GroupBlockHit, bounceSteps(w, spawner, block)...)
	default:
		b.State = component.BlockExhausted
		if b.Variant == component.BlockSurprise {
			setAnimationEnabled(w, block, false)
		}
		seq = sequence.New("block.final", component.GroupBlockHit, finalSteps(w, spawner, block)...)
	}

	if err := StartSequence(w, block, seq); err != nil {
		log.Printf("block: start %s: %v", seq.Name(), err)
		return false
	}
	return true
}

func bounceSteps(w *ecs.World, spawner Spawner, block ecs.Entity) []sequence.Step {
	b, _ := ecs.Get(w, block, component.BlockComponent.Kind())
	tuning := b.Tuning
	restY := b.RestY

	return []sequence.Step{
		sequence.Then(func() {
			PlaySound(w, session.SoundBlockBounce)
			if t, ok := ecs.Get(w, block, component.TransformComponent.Kind()); ok {
				SetPosition(w, block, t.X, restY-tuning.BounceOffset)
			}
		}, tuning.BounceHold),
		sequence.Then(func() {
			if t, ok := ecs.Get(w, block, component.TransformComponent.Kind()); ok {
				SetPosition(w, block, t.X, restY)
			}
		}, tuning.BounceSettle),
		sequence.Defer(func() []sequence.Step {
			return spawnFromBlock(w, spawner, block)
		}),
	}
}

// spawnFromBlock releases the block's power-up one unit above it. A coin is
// collected on the spot and removed after a short linger.
func spawnFromBlock(w *ecs.World, spawner Spawner, block ecs.Entity) []sequence.Step {
	b, ok := ecs.Get(w, block, component.BlockComponent.Kind())
	if !ok || !b.HasPowerUp {
		return nil
	}
	t, ok := ecs.Get(w, block, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	if spawner == nil {
		log.Printf("block: no spawner for %s", b.PowerUp)
		return nil
	}

	item, err := spawner.SpawnPowerUp(w, b.PowerUp, t.X, b.RestY-b.Tuning.SpawnOffset, b.Session)
	if err != nil {
		log.Printf("block: spawn %s: %v", b.PowerUp, err)
		return nil
	}

	if b.PowerUp != component.PowerUpScore {
		PlaySound(w, session.SoundPowerUp)
		return nil
	}

	PlaySound(w, session.SoundCoin)
	if p, ok := ecs.Get(w, item, component.PowerUpComponent.Kind()); ok {
		p.Consumed = true
	}
	if b.Session != nil {
		b.Session.AddRings(1)
	}
	return []sequence.Step{
		sequence.Wait(b.Tuning.CoinLinger),
		sequence.Do(func() { ecs.DestroyEntity(w, item) }),
	}
}

func breakSteps(w *ecs.World, spawner Spawner, block ecs.Entity) []sequence.Step {
	b, _ := ecs.Get(w, block, component.BlockComponent.Kind())
	delay := b.Tuning.BreakDelay

	return []sequence.Step{
		sequence.Then(func() { PlaySound(w, session.SoundBlockBreak) }, delay),
		sequence.Do(func() {
			if t, ok := ecs.Get(w, block, component.TransformComponent.Kind()); ok && spawner != nil {
				if _, err := spawner.SpawnParticles(w, t.X, t.Y); err != nil {
					log.Printf("block: spawn particles: %v", err)
				}
			}
			ecs.DestroyEntity(w, block)
		}),
	}
}

// finalSteps swaps in the exhausted sprite, waits, then bounces.
func finalSteps(w *ecs.World, spawner Spawner, block ecs.Entity) []sequence.Step {
	b, _ := ecs.Get(w, block, component.BlockComponent.Kind())
	steps := []sequence.Step{
		sequence.Then(func() {
			if b.AltSprite == "" {
				return
			}
			if s, ok := ecs.Get(w, block, component.SpriteComponent.Kind()); ok {
				s.Key = b.AltSprite
			}
		}, b.Tuning.SwapDelay),
	}
	return append(steps, bounceSteps(w, spawner, block)...)
}
