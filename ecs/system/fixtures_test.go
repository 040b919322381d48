package system

import (
	"testing"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

type fakeReporter struct {
	points int
	rings  int
	lives  int
	lost   int
	wins   int
}

func newFakeReporter() *fakeReporter {
	return &fakeReporter{lives: 3}
}

func (r *fakeReporter) AddPoints(n int) { r.points += n }
func (r *fakeReporter) AddRings(n int)  { r.rings += n }
func (r *fakeReporter) AddLives(n int)  { r.lives += n }
func (r *fakeReporter) WinGame()        { r.wins++ }

func (r *fakeReporter) LoseLife() {
	r.lives--
	r.lost++
}

type fakeSpawner struct {
	powerUps  []ecs.Entity
	particles int
}

func (s *fakeSpawner) SpawnPowerUp(w *ecs.World, kind component.PowerUpKind, x, y float64, session component.Reporter) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{Kind: kind, Session: session}); err != nil {
		return 0, err
	}
	s.powerUps = append(s.powerUps, e)
	return e, nil
}

func (s *fakeSpawner) SpawnParticles(w *ecs.World, x, y float64) (ecs.Entity, error) {
	s.particles++
	return ecs.CreateEntity(w), nil
}

type probeCall struct {
	x0, y0, x1, y1 float64
	mask           component.CategoryMask
}

type fakeProber struct {
	hit   *ProbeHit
	calls []probeCall
}

func (p *fakeProber) Probe(self ecs.Entity, x0, y0, x1, y1 float64, mask component.CategoryMask) (ProbeHit, bool) {
	p.calls = append(p.calls, probeCall{x0: x0, y0: y0, x1: x1, y1: y1, mask: mask})
	if p.hit == nil {
		return ProbeHit{}, false
	}
	return *p.hit, true
}

func testPlayerTuning() component.PlayerTuning {
	return component.PlayerTuning{
		MoveSpeed:           8,
		MaxSpeed:            16,
		JumpHeight:          5,
		SmallScale:          1,
		BigScale:            1.5,
		SizeTicks:           5,
		SizeInterval:        0.3,
		SizeLift:            0.25,
		InvincibilityWindow: 3,
		DeathHold:           0.1,
		DeathLeapHeight:     3,
		DeathLeapDuration:   0.6,
		DeathPause:          3,
		StompPoints:         100,
	}
}

func testBlockTuning() component.BlockTuning {
	return component.BlockTuning{
		BounceOffset: 0.5,
		BounceHold:   0.1,
		BounceSettle: 0.1,
		SpawnOffset:  1,
		CoinLinger:   0.5,
		BreakDelay:   0.1,
		SwapDelay:    0.1,
	}
}

// newTestWorld returns a world that only resumes sequences and decays
// invincibility, plus whatever extra systems the test needs first.
func newTestWorld(extra ...ecs.System) *ecs.World {
	w := ecs.NewWorld()
	for _, s := range extra {
		w.AddSystem(s)
	}
	w.AddSystem(NewInvincibilitySystem())
	w.AddSystem(NewSequenceSystem())
	w.AddSystem(NewContactResetSystem())
	return w
}

func step(w *ecs.World, dt float64, n int) {
	for i := 0; i < n; i++ {
		w.Update(dt)
	}
}

func addPlayer(w *ecs.World, size component.SizeState, reporter component.Reporter) ecs.Entity {
	tuning := testPlayerTuning()
	scale := tuning.SmallScale
	if size == component.SizeBig {
		scale = tuning.BigScale
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Category: component.CategoryPlayer})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0, ScaleX: scale, ScaleY: scale})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 1, Height: 1, Mass: 1})
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Enabled: true})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Size:           size,
		Alive:          true,
		ControlEnabled: true,
		Tuning:         tuning,
		Session:        reporter,
	})
	return e
}

func addBlock(w *ecs.World, variant component.BlockVariant, hits int, reporter component.Reporter) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Category: component.CategoryGround})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 2, Y: -3, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "block"})
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Enabled: true})
	_ = ecs.Add(w, e, component.BlockComponent.Kind(), &component.Block{
		Variant:   variant,
		Hits:      hits,
		RestY:     -3,
		AltSprite: "block_used",
		Tuning:    testBlockTuning(),
		Session:   reporter,
	})
	return e
}

func addEnemy(w *ecs.World, state component.EnemyState, reporter component.Reporter) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Category: component.CategoryEnemy})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 4, Y: 0, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 1, Height: 1, Mass: 1})
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Enabled: true})
	_ = ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{
		Direction:   component.DirLeft,
		Speed:       1,
		Exempt:      component.MaskOf(component.CategoryPlayer, component.CategoryCamera, component.CategoryPowerUp),
		Active:      state == component.EnemyPatrolling,
		ProbeDrop:   0.1,
		ProbeMargin: 0.1,
	})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		State:       state,
		Alive:       true,
		DeathFreeze: 1,
		RemoveAfter: 1,
		StompPoints: 100,
		Session:     reporter,
	})
	return e
}

func countSounds(w *ecs.World, key string) int {
	n := 0
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(_ ecs.Entity, req *component.SoundRequest) {
		if req.Key == key {
			n++
		}
	})
	return n
}

func bodyOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.PhysicsBody {
	t.Helper()
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("expected %s to have a physics body", e)
	}
	return body
}
