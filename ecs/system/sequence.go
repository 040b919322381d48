package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// SequenceSystem resumes every entity's timed sequences once per step. It
// runs after contact dispatch so a hit is judged on the state the step
// started with.
type SequenceSystem struct{}

func NewSequenceSystem() *SequenceSystem {
	return &SequenceSystem{}
}

func (s *SequenceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := seqNow(w)
	ecs.ForEach(w, component.SequencesComponent.Kind(), func(e ecs.Entity, seqs *component.Sequences) {
		seqs.Runner.Tick(now, func() bool { return w.IsAlive(e) })
	})
}
