package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/ringrush/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityHandle(t *testing.T) {
	tests := []struct {
		name  string
		e     Entity
		str   string
		valid bool
	}{
		{name: "zero", e: 0, str: "0v0"},
		{name: "first slot", e: makeEntity(1, 0), str: "1v0", valid: true},
		{name: "recycled slot", e: makeEntity(7, 2), str: "7v2", valid: true},
		{name: "generation without slot", e: makeEntity(0, 5), str: "0v5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.str {
				t.Fatalf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.e.Valid(); got != tt.valid {
				t.Fatalf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestCreateRecyclesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	if a.String() != "1v0" || b.String() != "2v0" {
		t.Fatalf("expected 1v0 and 2v0, got %s and %s", a, b)
	}

	if !DestroyEntity(w, a) {
		t.Fatalf("destroy of a live entity should succeed")
	}
	if DestroyEntity(w, a) {
		t.Fatalf("second destroy of the same handle should fail")
	}

	c := CreateEntity(w)
	if c.String() != "1v1" {
		t.Fatalf("expected slot 1 reused at generation 1, got %s", c)
	}
	if got := len(Entities(w)); got != 2 {
		t.Fatalf("expected 2 live entities, got %d", got)
	}
}

func TestComponentErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	live := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{name: "dead entity", add: func() error { return Add(w, dead, h.Kind(), intPtr(1)) }, want: component.ErrEntityNotAlive},
		{name: "zero entity", add: func() error { return Add(w, 0, h.Kind(), intPtr(1)) }, want: component.ErrEntityNotAlive},
		{name: "zero kind", add: func() error { return Add(w, live, component.ComponentKind[int]{}, intPtr(1)) }, want: component.ErrInvalidComponentKind},
		{name: "nil value", add: func() error { return Add(w, live, h.Kind(), nil) }, want: component.ErrNilComponent},
		{name: "ok", add: func() error { return Add(w, live, h.Kind(), intPtr(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAddReplacesAndRemoveDetaches(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	other := component.NewComponent[int]()
	e := CreateEntity(w)

	if Has(w, e, other.Kind()) {
		t.Fatalf("kind with no store should report absent")
	}
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Add(w, e, h.Kind(), intPtr(2)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if v, ok := Get(w, e, h.Kind()); !ok || *v != 2 {
		t.Fatalf("expected replaced value 2, got %v ok=%v", v, ok)
	}
	if !Remove(w, e, h.Kind()) || Remove(w, e, h.Kind()) {
		t.Fatalf("expected exactly one successful remove")
	}
	if !IsAlive(w, e) {
		t.Fatalf("removing a component must not destroy the entity")
	}
}

func TestFirstSkipsDestroyed(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entity in an empty world")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, h.Kind(), intPtr(1))
	_ = Add(w, b, h.Kind(), intPtr(2))
	DestroyEntity(w, a)

	got, ok := First(w, h.Kind())
	if !ok || got != b {
		t.Fatalf("expected %s, got %s ok=%v", b, got, ok)
	}
}

func TestForEach2Intersection(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[int]()
	vel := component.NewComponent[string]()

	both := CreateEntity(w)
	onlyPos := CreateEntity(w)
	onlyVel := CreateEntity(w)
	_ = Add(w, both, pos.Kind(), intPtr(1))
	_ = Add(w, both, vel.Kind(), new(string))
	_ = Add(w, onlyPos, pos.Kind(), intPtr(2))
	_ = Add(w, onlyVel, vel.Kind(), new(string))

	var got []Entity
	ForEach2(w, pos.Kind(), vel.Kind(), func(e Entity, _ *int, _ *string) {
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != both {
		t.Fatalf("expected only %s, got %v", both, got)
	}
}

// Contact dispatch destroys the other party of a contact from inside the
// loop; later iterations must not see it.
func TestForEachSkipsEntitiesDestroyedMidLoop(t *testing.T) {
	tests := []struct {
		name string
		each func(w *World, a, b, c component.ComponentKind[int], fn func(Entity))
	}{
		{
			name: "ForEach2",
			each: func(w *World, a, b, _ component.ComponentKind[int], fn func(Entity)) {
				ForEach2(w, a, b, func(e Entity, _ *int, _ *int) { fn(e) })
			},
		},
		{
			name: "ForEach3",
			each: func(w *World, a, b, c component.ComponentKind[int], fn func(Entity)) {
				ForEach3(w, a, b, c, func(e Entity, _ *int, _ *int, _ *int) { fn(e) })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			ka := component.NewComponentKind[int]()
			kb := component.NewComponentKind[int]()
			kc := component.NewComponentKind[int]()

			var all []Entity
			for i := 0; i < 4; i++ {
				e := CreateEntity(w)
				_ = Add(w, e, ka, intPtr(i))
				_ = Add(w, e, kb, intPtr(i))
				_ = Add(w, e, kc, intPtr(i))
				all = append(all, e)
			}

			visited := 0
			tt.each(w, ka, kb, kc, func(self Entity) {
				visited++
				for _, e := range all {
					if e != self {
						DestroyEntity(w, e)
					}
				}
			})

			if visited != 1 {
				t.Fatalf("expected one visit after the rest were destroyed, got %d", visited)
			}
			if got := len(Entities(w)); got != 1 {
				t.Fatalf("expected 1 survivor, got %d", got)
			}
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if old == fresh {
		t.Fatalf("recycled slot must not produce an equal handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err == nil {
		t.Fatalf("expected error adding to a stale handle")
	}
}

func TestForEachSurvivesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})

	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected all entities destroyed, got %d", len(Entities(w)))
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
}

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(recordSystem{name: "a", log: &order})
	w.AddSystem(nil)
	w.AddSystem(recordSystem{name: "b", log: &order})

	w.Update(0.1)
	w.Update(0.1)

	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestClockTimeScale(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		wantSim float64
	}{
		{name: "normal", scale: 1, wantSim: 0.5},
		{name: "half", scale: 0.5, wantSim: 0.25},
		{name: "paused", scale: 0, wantSim: 0},
		{name: "negative clamps to paused", scale: -1, wantSim: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.SetTimeScale(tt.scale)
			for i := 0; i < 5; i++ {
				w.Update(0.1)
			}
			c := w.Clock()
			if c.Step != 5 {
				t.Fatalf("expected step 5, got %d", c.Step)
			}
			if diff := c.Sim - tt.wantSim; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected sim %v, got %v", tt.wantSim, c.Sim)
			}
			if diff := c.Real - 0.5; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected real 0.5, got %v", c.Real)
			}
		})
	}
}

type pushSystem struct{ c Contact }

func (s pushSystem) Update(w *World) { w.Events().PushContact(s.c) }

type drainSystem struct{ got *[]Contact }

func (s drainSystem) Update(w *World) {
	*s.got = append(*s.got, w.Events().DrainContacts()...)
}

func TestContactEventsLiveForOneStep(t *testing.T) {
	w := NewWorld()
	a, b := CreateEntity(w), CreateEntity(w)
	c := Contact{A: a, B: b, CategoryA: component.CategoryPlayer, CategoryB: component.CategoryEnemy, NormalY: 1}

	var got []Contact
	w.AddSystem(pushSystem{c: c})
	w.AddSystem(drainSystem{got: &got})
	w.Update(0.1)

	if len(got) != 1 || got[0] != c {
		t.Fatalf("expected one drained contact, got %v", got)
	}

	w.Events().Push(Event{Type: "other"})
	w.Update(0.1)
	if rest := w.Events().Drain(); rest != nil {
		t.Fatalf("expected queue flushed at end of step, got %v", rest)
	}
}

func TestContactSwap(t *testing.T) {
	c := Contact{A: 1, B: 2, CategoryA: component.CategoryGround, CategoryB: component.CategoryPlayer, NormalY: 0.8, Phase: ContactStay}
	s := c.Swap()
	if s.A != 2 || s.B != 1 || s.CategoryA != component.CategoryPlayer || s.NormalY != -0.8 || s.Phase != ContactStay {
		t.Fatalf("unexpected swap %+v", s)
	}
	if s.Swap() != c {
		t.Fatalf("swapping twice must give the original")
	}
}

func TestSchedulerRunsPhaseInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	phase := NewScheduler("react",
		recordSystem{name: "contact", log: &order},
		nil,
		recordSystem{name: "sequence", log: &order},
	)
	w.AddSystem(recordSystem{name: "physics", log: &order})
	w.AddSystem(phase)

	w.Update(0.1)

	if phase.Name() != "react" || len(phase.Systems()) != 2 {
		t.Fatalf("unexpected scheduler %s with %d systems", phase.Name(), len(phase.Systems()))
	}
	want := []string{"physics", "contact", "sequence"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
