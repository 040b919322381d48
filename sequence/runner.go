package sequence

// Runner owns the sequences active on one entity.
type Runner struct {
	active []*Sequence
}

// Start begins seq at now and runs it up to its first suspension. It fails
// with ErrGroupBusy when another sequence of the same group is still
// running; callers are expected to check entity state first so this never
// happens in a well-formed game.
func (r *Runner) Start(seq *Sequence, now Time, alive func() bool) error {
	if seq == nil {
		return ErrNilSequence
	}
	if seq.group != Ungrouped && r.Active(seq.group) {
		return ErrGroupBusy
	}
	seq.advance(now, alive)
	if !seq.done {
		r.active = append(r.active, seq)
	}
	return nil
}

// Tick resumes every sequence whose suspension has elapsed. Sequences
// started by an action during the tick are resumed on the next one.
func (r *Runner) Tick(now Time, alive func() bool) {
	current := r.active
	for _, seq := range current {
		seq.advance(now, alive)
	}
	kept := r.active[:0]
	for _, seq := range r.active {
		if !seq.done {
			kept = append(kept, seq)
		}
	}
	for i := len(kept); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = kept
}

// Active reports whether a sequence of group g is running.
func (r *Runner) Active(g Group) bool {
	for _, seq := range r.active {
		if !seq.done && seq.group == g {
			return true
		}
	}
	return false
}

// Running returns the name of the running sequence in group g, if any.
func (r *Runner) Running(g Group) (string, bool) {
	for _, seq := range r.active {
		if !seq.done && seq.group == g {
			return seq.name, true
		}
	}
	return "", false
}

// Len returns the number of unfinished sequences.
func (r *Runner) Len() int {
	n := 0
	for _, seq := range r.active {
		if !seq.done {
			n++
		}
	}
	return n
}
