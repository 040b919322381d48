package system

import "github.com/milk9111/ringrush/ecs"

// SessionClock is the part of the session advanced by the world.
type SessionClock interface {
	Tick(dt float64)
}

// SessionTimerSystem advances the session timer on simulation time.
type SessionTimerSystem struct {
	session SessionClock
}

func NewSessionTimerSystem(s SessionClock) *SessionTimerSystem {
	return &SessionTimerSystem{session: s}
}

func (s *SessionTimerSystem) Update(w *ecs.World) {
	if w == nil || s.session == nil {
		return
	}
	s.session.Tick(w.Clock().Dt)
}
