package system

import (
	"log"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/sequence"
	"github.com/milk9111/ringrush/session"
)

// FireTrigger reacts to other entering the trigger volume.
func FireTrigger(w *ecs.World, trigger, other ecs.Entity) bool {
	tr, ok := ecs.Get(w, trigger, component.TriggerComponent.Kind())
	if !ok {
		return false
	}

	isPlayer := ecs.Has(w, other, component.PlayerComponent.Kind())
	switch tr.Kind {
	case component.TriggerDeadZone:
		if isPlayer {
			return PlayerDieDirectly(w, other)
		}
		if ecs.Has(w, other, component.EnemyComponent.Kind()) {
			return RemoveEnemy(w, other)
		}
	case component.TriggerEndFlag:
		if !isPlayer || tr.Fired {
			return false
		}
		tr.Fired = true
		reporter := tr.Session
		seq := sequence.New("flag.end", component.GroupTrigger,
			sequence.Then(func() {
				StopMusic(w)
				PlaySound(w, session.SoundGameWin)
			}, tr.Delay),
			sequence.Do(func() {
				if reporter != nil {
					reporter.WinGame()
				}
			}),
		)
		if err := StartSequence(w, trigger, seq); err != nil {
			log.Printf("trigger: start end flag: %v", err)
			return false
		}
		return true
	}
	return false
}
