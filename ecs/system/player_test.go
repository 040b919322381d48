package system

import (
	"testing"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/session"
)

func TestPlayerGetHitSmallDies(t *testing.T) {
	w := newTestWorld()
	reporter := newFakeReporter()
	player := addPlayer(w, component.SizeSmall, reporter)

	if !PlayerGetHit(w, player) {
		t.Fatalf("expected hit to be applied")
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if p.Alive {
		t.Fatalf("expected player to be dead")
	}
	if p.ControlEnabled {
		t.Fatalf("expected control to be disabled")
	}
	if got := countSounds(w, session.SoundDiePlayer); got != 1 {
		t.Fatalf("expected die sound, got %d", got)
	}
	anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind())
	if !ok || !anim.Dead {
		t.Fatalf("expected dead animation flag")
	}
	if PlayerGetHit(w, player) {
		t.Fatalf("expected dead player to ignore hits")
	}

	step(w, 0.1, 10)
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.Y > -2.9 {
		t.Fatalf("expected player to have leapt up, y=%v", tr.Y)
	}
	if reporter.lost != 0 {
		t.Fatalf("expected life to be lost only after the pause")
	}

	step(w, 0.1, 35)
	if reporter.lost != 1 || reporter.lives != 2 {
		t.Fatalf("expected one life lost, got lost=%d lives=%d", reporter.lost, reporter.lives)
	}
}

func TestPlayerShrinkThenGrowRestoresScale(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, component.SizeBig, nil)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	startY := tr.Y

	if !PlayerGetHit(w, player) {
		t.Fatalf("expected big player to shrink")
	}
	if p.Size != component.SizeSmall {
		t.Fatalf("expected size to switch immediately, got %s", p.Size)
	}
	if !p.Invincible() {
		t.Fatalf("expected invincibility after shrinking")
	}
	if !SequenceActive(w, player, component.GroupPlayerSize) {
		t.Fatalf("expected shrink sequence to run")
	}

	step(w, 0.1, 20)

	if SequenceActive(w, player, component.GroupPlayerSize) {
		t.Fatalf("expected shrink sequence to finish")
	}
	if tr.ScaleX != p.Tuning.SmallScale || tr.ScaleY != p.Tuning.SmallScale {
		t.Fatalf("expected small scale, got %vx%v", tr.ScaleX, tr.ScaleY)
	}
	if tr.Y != startY+p.Tuning.SizeLift {
		t.Fatalf("expected player lowered by %v, got y=%v", p.Tuning.SizeLift, tr.Y)
	}
	if !p.ControlEnabled {
		t.Fatalf("expected control back after shrinking")
	}

	if !GrowPlayer(w, player) {
		t.Fatalf("expected grow to start")
	}
	if p.Size != component.SizeBig {
		t.Fatalf("expected big, got %s", p.Size)
	}
	step(w, 0.1, 20)

	if tr.ScaleX != p.Tuning.BigScale || tr.ScaleY != p.Tuning.BigScale {
		t.Fatalf("expected big scale restored, got %vx%v", tr.ScaleX, tr.ScaleY)
	}
	if tr.Y != startY {
		t.Fatalf("expected original height %v, got %v", startY, tr.Y)
	}
}

func TestPlayerInvincibilityIgnoresHitsAndDecays(t *testing.T) {
	w := newTestWorld()
	reporter := newFakeReporter()
	player := addPlayer(w, component.SizeBig, reporter)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())

	PlayerGetHit(w, player)
	step(w, 0.1, 20)

	if !p.Invincible() {
		t.Fatalf("expected invincibility to outlast the shrink")
	}
	if PlayerGetHit(w, player) {
		t.Fatalf("expected hit while invincible to be ignored")
	}
	if !p.Alive || p.Size != component.SizeSmall {
		t.Fatalf("expected small living player, got alive=%v size=%s", p.Alive, p.Size)
	}

	step(w, 0.1, 15)

	if p.Invincible() {
		t.Fatalf("expected invincibility to run out, left %v", p.Invincibility)
	}
	if !PlayerGetHit(w, player) {
		t.Fatalf("expected hit after invincibility to be applied")
	}
	if p.Alive {
		t.Fatalf("expected small player to die")
	}
}

func TestPlayerSizeGroupExclusion(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, component.SizeSmall, nil)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())

	if !GrowPlayer(w, player) {
		t.Fatalf("expected grow to start")
	}
	if GrowPlayer(w, player) {
		t.Fatalf("expected second grow to be refused")
	}
	if ShrinkPlayer(w, player) {
		t.Fatalf("expected shrink during grow to be refused")
	}
	if PlayerGetHit(w, player) {
		t.Fatalf("expected hit during grow to be ignored")
	}
	if p.Size != component.SizeBig || !p.Alive {
		t.Fatalf("expected big living player, got size=%s alive=%v", p.Size, p.Alive)
	}
}

func TestPlayerDieDirectlyWaitsForResize(t *testing.T) {
	w := newTestWorld()
	reporter := newFakeReporter()
	player := addPlayer(w, component.SizeBig, reporter)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())

	ShrinkPlayer(w, player)
	if !PlayerDieDirectly(w, player) {
		t.Fatalf("expected forced death to be accepted")
	}
	if !p.PendingDeath || !p.Alive {
		t.Fatalf("expected death to be deferred, pending=%v alive=%v", p.PendingDeath, p.Alive)
	}

	step(w, 0.1, 20)

	if p.Alive || p.PendingDeath {
		t.Fatalf("expected death to follow the shrink, alive=%v pending=%v", p.Alive, p.PendingDeath)
	}

	step(w, 0.1, 45)

	if reporter.lost != 1 {
		t.Fatalf("expected exactly one life lost, got %d", reporter.lost)
	}
}

func TestPlayerDieDirectlyIgnoresInvincibility(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, component.SizeSmall, nil)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Invincibility = 10

	if !PlayerDieDirectly(w, player) {
		t.Fatalf("expected forced death")
	}
	if p.Alive {
		t.Fatalf("expected player to be dead")
	}
	if PlayerDieDirectly(w, player) {
		t.Fatalf("expected second forced death to be ignored")
	}
}

func TestSmoothStep(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 0.5, want: 0.5},
		{in: 1, want: 1},
		{in: 2, want: 1},
	}
	for _, tt := range tests {
		if got := smoothStep(tt.in); got != tt.want {
			t.Fatalf("smoothStep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlayerResizePinsHeight(t *testing.T) {
	tests := []struct {
		name   string
		size   component.SizeState
		resize func(w *ecs.World, e ecs.Entity) bool
		pinAt  float64
	}{
		{name: "grow", size: component.SizeSmall, resize: GrowPlayer, pinAt: -testPlayerTuning().SizeLift},
		{name: "shrink", size: component.SizeBig, resize: ShrinkPlayer, pinAt: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			player := addPlayer(w, tt.size, nil)
			body := bodyOf(t, w, player)

			if !tt.resize(w, player) {
				t.Fatalf("expected resize to start")
			}
			if !body.FreezeY || body.FreezeAtY != tt.pinAt {
				t.Fatalf("expected body pinned at %v, got freeze=%v at %v", tt.pinAt, body.FreezeY, body.FreezeAtY)
			}

			step(w, 0.1, 5)
			if !body.FreezeY {
				t.Fatalf("expected body pinned while the flicker runs")
			}

			step(w, 0.1, 15)
			if body.FreezeY {
				t.Fatalf("expected body released after resizing")
			}
			if body.Layer != component.LayerDefault {
				t.Fatalf("expected resize to keep the default layer, got %s", body.Layer)
			}
		})
	}
}

func TestPlayerDeathMovesToDeathLayer(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, component.SizeSmall, nil)
	body := bodyOf(t, w, player)

	if body.Layer != component.LayerDefault {
		t.Fatalf("expected default layer before dying, got %s", body.Layer)
	}
	if !PlayerGetHit(w, player) {
		t.Fatalf("expected small player to die")
	}
	if body.Layer != component.LayerDeath {
		t.Fatalf("expected death layer, got %s", body.Layer)
	}
	if body.FreezeY {
		t.Fatalf("death leap must not pin the body")
	}

	step(w, 0.1, 10)
	if body.Layer != component.LayerDeath {
		t.Fatalf("expected player to stay on the death layer, got %s", body.Layer)
	}
}
