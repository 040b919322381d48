package system

import (
	"math"
	"testing"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/session"
)

func TestPlayerController(t *testing.T) {
	tests := []struct {
		name         string
		input        component.Input
		grounded     bool
		control      bool
		startVel     component.Velocity
		wantVelX     float64
		wantVelY     float64
		wantJumpSnd  int
		wantCrouched bool
	}{
		{name: "accelerate right", input: component.Input{MoveX: 1}, grounded: true, control: true, wantVelX: 0.8},
		{name: "accelerate left", input: component.Input{MoveX: -1}, grounded: true, control: true, wantVelX: -0.8},
		{name: "jump from ground", input: component.Input{Jump: true}, grounded: true, control: true, wantVelY: -math.Sqrt(2 * DefaultGravity * 5), wantJumpSnd: 1},
		{name: "no jump in the air", input: component.Input{Jump: true}, grounded: false, control: true},
		{name: "crouch", input: component.Input{Crouch: true}, grounded: true, control: true, wantCrouched: true},
		{name: "control disabled", input: component.Input{MoveX: 1, Jump: true}, grounded: true, control: false},
		{name: "speed clamp", grounded: false, control: true, startVel: component.Velocity{X: -30, Y: 4}, wantVelX: -16, wantVelY: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := &fakeProber{}
			if tt.grounded {
				prober.hit = &ProbeHit{Category: component.CategoryGround}
			}
			w := newTestWorld(NewPlayerControllerSystem(prober, DefaultGravity))
			player := addPlayer(w, component.SizeSmall, nil)
			input := tt.input
			_ = ecs.Add(w, player, component.InputComponent.Kind(), &input)
			p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
			p.ControlEnabled = tt.control
			v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
			*v = tt.startVel

			step(w, 0.1, 1)

			if math.Abs(v.X-tt.wantVelX) > 1e-9 || math.Abs(v.Y-tt.wantVelY) > 1e-9 {
				t.Fatalf("expected velocity (%v,%v), got (%v,%v)", tt.wantVelX, tt.wantVelY, v.X, v.Y)
			}
			if got := countSounds(w, session.SoundJump); got != tt.wantJumpSnd {
				t.Fatalf("expected %d jump sounds, got %d", tt.wantJumpSnd, got)
			}
			anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())
			if anim.Crouching != tt.wantCrouched {
				t.Fatalf("expected crouching=%v", tt.wantCrouched)
			}
			if tt.control && len(prober.calls) > 0 && prober.calls[0].mask != component.MaskOf(component.CategoryGround) {
				t.Fatalf("expected ground probe to look at ground only")
			}
		})
	}
}

func TestStompSystem(t *testing.T) {
	tests := []struct {
		name      string
		hit       *ProbeHit
		velY      float64
		wantState component.EnemyState
	}{
		{name: "landing on weak point", hit: &ProbeHit{Category: component.CategoryWeakPoint}, velY: 2, wantState: component.EnemyDying},
		{name: "body below is not a stomp", hit: &ProbeHit{Category: component.CategoryEnemy}, velY: 2, wantState: component.EnemyPatrolling},
		{name: "rising through", hit: &ProbeHit{Category: component.CategoryWeakPoint}, velY: -2, wantState: component.EnemyPatrolling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := newFakeReporter()
			prober := &fakeProber{}
			w := newTestWorld(NewStompSystem(prober))
			player := addPlayer(w, component.SizeSmall, reporter)
			enemy := addEnemy(w, component.EnemyPatrolling, reporter)
			hit := *tt.hit
			hit.Entity = enemy
			prober.hit = &hit
			v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
			v.Y = tt.velY

			step(w, 0.1, 1)

			e, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
			if e.State != tt.wantState {
				t.Fatalf("expected %s, got %s", tt.wantState, e.State)
			}
		})
	}
}

func TestTTLSystem(t *testing.T) {
	w := newTestWorld(NewTTLSystem())
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: 0.25})

	step(w, 0.1, 2)
	if !w.IsAlive(e) {
		t.Fatalf("expected entity alive before its TTL")
	}
	step(w, 0.1, 1)
	if w.IsAlive(e) {
		t.Fatalf("expected entity destroyed after its TTL")
	}
}

type recordingSink struct {
	sounds  []string
	music   []string
	stopped int
}

func (s *recordingSink) PlaySound(key string) { s.sounds = append(s.sounds, key) }
func (s *recordingSink) PlayMusic(key string) { s.music = append(s.music, key) }
func (s *recordingSink) StopMusic()           { s.stopped++ }

func TestAudioSystemDrainsRequests(t *testing.T) {
	sink := &recordingSink{}
	w := ecs.NewWorld()
	w.AddSystem(NewAudioSystem(sink))

	PlayMusic(w, session.MusicTheme)
	PlaySound(w, session.SoundJump)
	StopMusic(w)
	PlaySound(w, "")

	step(w, 0.1, 1)

	if len(sink.sounds) != 1 || sink.sounds[0] != session.SoundJump {
		t.Fatalf("unexpected sounds %v", sink.sounds)
	}
	if len(sink.music) != 1 || sink.music[0] != session.MusicTheme || sink.stopped != 1 {
		t.Fatalf("unexpected music %v stopped=%d", sink.music, sink.stopped)
	}
	if countSounds(w, session.SoundJump) != 0 {
		t.Fatalf("expected requests to be consumed")
	}

	step(w, 0.1, 1)
	if len(sink.sounds) != 1 {
		t.Fatalf("expected requests to play once")
	}
}

type tickCounter struct {
	total float64
}

func (c *tickCounter) Tick(dt float64) { c.total += dt }

func TestSessionTimerFollowsTimeScale(t *testing.T) {
	clock := &tickCounter{}
	w := ecs.NewWorld()
	w.AddSystem(NewSessionTimerSystem(clock))
	w.SetTimeScale(0.5)

	step(w, 1, 2)

	if clock.total != 1 {
		t.Fatalf("expected one scaled second, got %v", clock.total)
	}
}
