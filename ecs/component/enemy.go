package component

type EnemyState uint8

const (
	EnemyDormant EnemyState = iota
	EnemyPatrolling
	EnemyDying
	EnemyRemoved
)

func (s EnemyState) String() string {
	switch s {
	case EnemyDormant:
		return "dormant"
	case EnemyPatrolling:
		return "patrolling"
	case EnemyDying:
		return "dying"
	case EnemyRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type Enemy struct {
	State EnemyState
	Alive bool

	// DeathFreeze is how long the body is pinned while the death pose shows;
	// RemoveAfter is how long after release the entity is destroyed.
	DeathFreeze float64
	RemoveAfter float64
	StompPoints int
	Session     Reporter
}

var EnemyComponent = NewComponent[Enemy]()

// EnemyScript points at an optional tengo lifecycle script.
type EnemyScript struct {
	Path string
}

var EnemyScriptComponent = NewComponent[EnemyScript]()
