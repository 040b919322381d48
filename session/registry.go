package session

// Registry keeps the single live session of the process. The first session
// acquired wins; later candidates are discarded until Restart.
type Registry struct {
	current *Session
}

// Acquire installs candidate when no session is live and returns the live
// session. The boolean reports whether candidate was installed.
func (r *Registry) Acquire(candidate *Session) (*Session, bool) {
	if r.current != nil && !r.current.destroyed {
		if candidate != nil && candidate != r.current {
			candidate.destroyed = true
		}
		return r.current, false
	}
	r.current = candidate
	return candidate, candidate != nil
}

// Current returns the live session or nil.
func (r *Registry) Current() *Session {
	if r.current == nil || r.current.destroyed {
		return nil
	}
	return r.current
}

// Restart destroys the live session and loads the Info scene through its
// scene loader. The next Acquire installs a fresh session.
func (r *Registry) Restart() {
	s := r.current
	r.current = nil
	if s == nil {
		return
	}
	s.destroyed = true
	s.timerOn = false
	s.infoPending = false
	s.loadScene(SceneInfo)
}
