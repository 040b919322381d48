package system

import (
	"math"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/session"
)

const (
	probeMargin   = 0.1
	movingEpsilon = 0.1
)

// PlayerControllerSystem turns input into velocity and animation flags:
// horizontal acceleration, a jump from the ground, crouching and a run
// speed clamp. Nothing happens while control is disabled.
type PlayerControllerSystem struct {
	prober  Prober
	gravity float64
}

func NewPlayerControllerSystem(prober Prober, gravity float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{prober: prober, gravity: gravity}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Dt

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity) {
		if !player.Alive || !player.ControlEnabled {
			return
		}
		tuning := player.Tuning
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		if anim == nil {
			anim = &component.Animation{}
		}

		speed := input.MoveX * tuning.MoveSpeed
		anim.Speed = math.Abs(speed)

		switch {
		case input.MoveX > 0:
			anim.FlipX = false
			vel.X += tuning.MoveSpeed * dt
		case input.MoveX < 0:
			anim.FlipX = true
			vel.X -= tuning.MoveSpeed * dt
		}

		grounded := p.grounded(w, e)
		player.Grounded = grounded
		anim.Grounded = grounded
		if grounded && vel.Y >= 0 {
			anim.Jumping = false
		}

		if input.Jump && grounded {
			vel.Y = -math.Sqrt(2 * p.gravity * tuning.JumpHeight)
			anim.Jumping = true
			anim.Grounded = false
			PlaySound(w, session.SoundJump)
		}

		anim.Crouching = input.Crouch && grounded

		if tuning.MaxSpeed > 0 && math.Abs(vel.X) > tuning.MaxSpeed {
			vel.X = math.Copysign(tuning.MaxSpeed, vel.X)
		}
		anim.Moving = math.Abs(vel.X) > movingEpsilon
	})
}

// grounded casts down from the player's centre just past its feet.
func (p *PlayerControllerSystem) grounded(w *ecs.World, e ecs.Entity) bool {
	if p.prober == nil {
		return false
	}
	x, y, _, halfH, ok := probeOrigin(w, e)
	if !ok {
		return false
	}
	_, hit := p.prober.Probe(e, x, y, x, y+halfH+probeMargin, component.MaskOf(component.CategoryGround))
	return hit
}

// probeOrigin returns the centre and half extents of e's collider.
func probeOrigin(w *ecs.World, e ecs.Entity) (x, y, halfW, halfH float64, ok bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	width, height := math.Abs(t.ScaleX), math.Abs(t.ScaleY)
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		width, height = body.Footprint(t)
	}
	return t.X, t.Y, width / 2, height / 2, true
}

// StompSystem casts down from the player each step; landing on an enemy's
// weak point kills the enemy and bounces the player.
type StompSystem struct {
	prober Prober
}

func NewStompSystem(prober Prober) *StompSystem {
	return &StompSystem{prober: prober}
}

func (s *StompSystem) Update(w *ecs.World) {
	if w == nil || s.prober == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if !player.Alive || !player.ControlEnabled {
			return
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && v.Y < 0 {
			return
		}
		x, y, _, halfH, ok := probeOrigin(w, e)
		if !ok {
			return
		}
		mask := component.MaskOf(component.CategoryEnemy, component.CategoryWeakPoint)
		hit, ok := s.prober.Probe(e, x, y, x, y+halfH+probeMargin, mask)
		if !ok || hit.Category != component.CategoryWeakPoint {
			return
		}
		enemy, ok := ecs.Get(w, hit.Entity, component.EnemyComponent.Kind())
		if !ok || enemy.State != component.EnemyPatrolling {
			return
		}
		if claimContact(w, hit.Entity) {
			StompEnemy(w, hit.Entity, e)
		}
	})
}
