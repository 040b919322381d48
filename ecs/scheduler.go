package ecs

// Scheduler groups systems into one ordered phase. It is itself a System so
// phases can be nested inside a World's update order.
type Scheduler struct {
	name    string
	systems []System
}

func NewScheduler(name string, systems ...System) *Scheduler {
	s := &Scheduler{name: name}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Name() string {
	return s.name
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
