package component

type SizeState uint8

const (
	SizeSmall SizeState = iota
	SizeBig
)

func (s SizeState) String() string {
	if s == SizeBig {
		return "big"
	}
	return "small"
}

// PlayerTuning holds movement constants and the fixed timings of the
// grow, shrink and death sequences.
type PlayerTuning struct {
	MoveSpeed  float64
	MaxSpeed   float64
	JumpHeight float64

	SmallScale   float64
	BigScale     float64
	SizeTicks    int
	SizeInterval float64
	SizeLift     float64

	InvincibilityWindow float64

	DeathHold         float64
	DeathLeapHeight   float64
	DeathLeapDuration float64
	DeathPause        float64

	StompPoints int
}

type Player struct {
	Size          SizeState
	Alive         bool
	Invincibility float64

	// PendingDeath records a forced death requested while a grow or shrink
	// sequence still held the size group.
	PendingDeath   bool
	ControlEnabled bool
	Grounded       bool
	Tuning         PlayerTuning
	Session        Reporter
}

// Invincible reports whether hits are currently ignored.
func (p *Player) Invincible() bool {
	return p.Invincibility > 0
}

var PlayerComponent = NewComponent[Player]()
