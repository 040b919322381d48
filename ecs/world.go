package ecs

import "github.com/milk9111/ringrush/ecs/component"

// System updates a world once per simulation step.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, the step clock and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	clock    Clock
}

// NewWorld creates an empty ECS world running at normal speed.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		clock:  Clock{Scale: 1},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update advances the clock by dt real seconds and runs all systems once.
// Events pushed during the step are dropped at the end of it.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.clock.advance(dt)
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the current step clock.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// SetTimeScale changes how fast simulation time runs relative to real time.
// Real-time sequences are unaffected.
func (w *World) SetTimeScale(scale float64) {
	if w == nil {
		return
	}
	if scale < 0 {
		scale = 0
	}
	w.clock.Scale = scale
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
