// Package sequence runs short timed behaviours (bounce, break, grow, shrink,
// die, countdowns) as explicit step lists ticked once per simulation step.
//
// A step runs its action synchronously and then suspends for a duration
// measured on either the scaled simulation clock or the unscaled real clock.
// Starting a sequence runs it immediately up to its first suspension.
package sequence

import "errors"

var (
	ErrGroupBusy   = errors.New("sequence: group busy")
	ErrNilSequence = errors.New("sequence: sequence is nil")
)

// Clock selects which time base a suspension is measured against.
type Clock uint8

const (
	// SimClock follows scaled simulation time and stops when the game is
	// paused or slowed.
	SimClock Clock = iota
	// RealClock follows wall-clock time regardless of time scale.
	RealClock
)

func (c Clock) String() string {
	if c == RealClock {
		return "real"
	}
	return "sim"
}

// Group names a mutual-exclusion group. At most one sequence per group runs
// on a Runner at a time. The empty group is never exclusive.
type Group string

const Ungrouped Group = ""

// Time is the pair of clocks a Runner is ticked with.
type Time struct {
	Sim  float64
	Real float64
}

func (t Time) on(c Clock) float64 {
	if c == RealClock {
		return t.Real
	}
	return t.Sim
}

// Step is one (action, suspend) pair. Expand, when set, is evaluated after
// Action and its steps are spliced in right after this one, which is how a
// sequence decides its tail lazily. Tween, when set, is called every tick
// with progress in [0,1] across Wait instead of a plain suspension.
type Step struct {
	Action func()
	Expand func() []Step
	Tween  func(progress float64)
	Wait   float64
	Clock  Clock
}

// Do runs fn and continues without suspending.
func Do(fn func()) Step {
	return Step{Action: fn}
}

// Wait suspends for d seconds of simulation time.
func Wait(d float64) Step {
	return Step{Wait: d}
}

// WaitReal suspends for d seconds of real time.
func WaitReal(d float64) Step {
	return Step{Wait: d, Clock: RealClock}
}

// Then runs fn and then suspends for d seconds of simulation time.
func Then(fn func(), d float64) Step {
	return Step{Action: fn, Wait: d}
}

// ThenReal runs fn and then suspends for d seconds of real time.
func ThenReal(fn func(), d float64) Step {
	return Step{Action: fn, Wait: d, Clock: RealClock}
}

// Tween calls fn every tick for d seconds of simulation time, finishing
// with fn(1).
func Tween(d float64, fn func(progress float64)) Step {
	return Step{Tween: fn, Wait: d}
}

// Defer evaluates fn when reached and continues with the steps it returns.
func Defer(fn func() []Step) Step {
	return Step{Expand: fn}
}

// Sequence is a resumable ordered list of steps.
type Sequence struct {
	name  string
	group Group
	steps []Step

	next      int
	waiting   bool
	resumeAt  float64
	clock     Clock
	tween     func(float64)
	tweenFrom float64
	tweenLen  float64
	done      bool
}

// New builds a sequence in the given mutual-exclusion group.
func New(name string, group Group, steps ...Step) *Sequence {
	return &Sequence{name: name, group: group, steps: append([]Step(nil), steps...)}
}

func (s *Sequence) Name() string {
	return s.name
}

func (s *Sequence) Group() Group {
	return s.group
}

// Done reports whether every step has run.
func (s *Sequence) Done() bool {
	return s.done
}

// advance resumes s at now, running steps until the next suspension, the end
// of the list, or alive reporting false.
func (s *Sequence) advance(now Time, alive func() bool) {
	for !s.done {
		if s.waiting {
			t := now.on(s.clock)
			if s.tween != nil {
				p := 1.0
				if s.tweenLen > 0 {
					p = (t - s.tweenFrom) / s.tweenLen
				}
				if p >= 1 {
					s.tween(1)
					s.tween = nil
					s.waiting = false
					continue
				}
				if p < 0 {
					p = 0
				}
				s.tween(p)
				return
			}
			if t < s.resumeAt {
				return
			}
			s.waiting = false
		}

		if s.next >= len(s.steps) {
			s.done = true
			return
		}
		if alive != nil && !alive() {
			s.done = true
			return
		}

		step := s.steps[s.next]
		s.next++
		if step.Action != nil {
			step.Action()
		}
		if step.Expand != nil {
			if more := step.Expand(); len(more) > 0 {
				tail := append(append([]Step(nil), more...), s.steps[s.next:]...)
				s.steps = append(s.steps[:s.next], tail...)
			}
		}

		switch {
		case step.Tween != nil:
			s.clock = step.Clock
			s.tween = step.Tween
			s.tweenFrom = now.on(step.Clock)
			s.tweenLen = step.Wait
			s.waiting = true
			step.Tween(0)
			if step.Wait <= 0 {
				continue
			}
			return
		case step.Wait > 0:
			s.clock = step.Clock
			s.resumeAt = now.on(step.Clock) + step.Wait
			s.waiting = true
			return
		}
	}
}
