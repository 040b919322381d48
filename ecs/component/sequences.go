package component

import "github.com/milk9111/ringrush/sequence"

// Sequences owns the timed sequences running on an entity.
type Sequences struct {
	Runner sequence.Runner
}

var SequencesComponent = NewComponent[Sequences]()

// Mutual-exclusion groups used by the entity state machines.
const (
	GroupPlayerSize sequence.Group = "player.size"
	GroupBlockHit   sequence.Group = "block.hit"
	GroupEnemyDeath sequence.Group = "enemy.death"
	GroupTrigger    sequence.Group = "trigger"
)
