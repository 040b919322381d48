package system

import (
	"log"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/sequence"
	"github.com/milk9111/ringrush/session"
)

// EnemySystem wakes dormant enemies once the camera has seen them.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.VisibleComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, _ *component.Visible) {
		WakeEnemy(w, e)
	})
}

// WakeEnemy starts the patrol of a dormant enemy.
func WakeEnemy(w *ecs.World, e ecs.Entity) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.State != component.EnemyDormant {
		return false
	}
	enemy.State = component.EnemyPatrolling
	if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
		walker.Active = true
	}
	return true
}

// KillEnemy starts the death sequence. Enemies already dying or removed
// ignore the call.
func KillEnemy(w *ecs.World, e ecs.Entity) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return false
	}
	if enemy.State != component.EnemyDormant && enemy.State != component.EnemyPatrolling {
		return false
	}
	if SequenceActive(w, e, component.GroupEnemyDeath) {
		return false
	}

	enemy.State = component.EnemyDying
	enemy.Alive = false

	seq := sequence.New("enemy.die", component.GroupEnemyDeath,
		sequence.Then(func() {
			if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
				walker.Active = false
			}
			SetVelocity(w, e, 0, 0)
			PlaySound(w, session.SoundDieEnemy)
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Dead = true
			}
			FreezeY(w, e, true)
			SetLayer(w, e, component.LayerDeath)
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.SortingLayer = "Death"
			}
		}, enemy.DeathFreeze),
		sequence.Then(func() {
			FreezeY(w, e, false)
		}, enemy.RemoveAfter),
		sequence.Do(func() {
			enemy.State = component.EnemyRemoved
			ecs.DestroyEntity(w, e)
		}),
	)
	if err := StartSequence(w, e, seq); err != nil {
		log.Printf("enemy: start death: %v", err)
		return false
	}
	return true
}

// EnemyTouchPlayer resolves one enemy/player contact. stomp is set when the
// player came down on the enemy's weak point. Only patrolling enemies react.
func EnemyTouchPlayer(w *ecs.World, e, player ecs.Entity, stomp bool) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.State != component.EnemyPatrolling {
		return false
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || !p.Alive {
		return false
	}

	switch {
	case p.Invincible():
		return KillEnemy(w, e)
	case stomp:
		return StompEnemy(w, e, player)
	default:
		return PlayerGetHit(w, player)
	}
}

// StompEnemy kills e from above, awards points and bounces the player.
func StompEnemy(w *ecs.World, e, player ecs.Entity) bool {
	if !KillEnemy(w, e) {
		return false
	}
	enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	if enemy.Session != nil {
		enemy.Session.AddPoints(enemy.StompPoints)
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
			v.Y = -p.Tuning.JumpHeight
		}
	}
	return true
}

// RemoveEnemy destroys an enemy outright.
func RemoveEnemy(w *ecs.World, e ecs.Entity) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return false
	}
	enemy.State = component.EnemyRemoved
	enemy.Alive = false
	return ecs.DestroyEntity(w, e)
}
