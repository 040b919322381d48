package component

// PowerUpKind is the closed set of pickups.
type PowerUpKind uint8

const (
	PowerUpScore PowerUpKind = iota
	PowerUpGrowth
	PowerUpExtraLife
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpScore:
		return "coin"
	case PowerUpGrowth:
		return "mushroom"
	case PowerUpExtraLife:
		return "life_mushroom"
	default:
		return "unknown"
	}
}

// ParsePowerUpKind accepts the names used in prefabs and levels.
func ParsePowerUpKind(s string) (PowerUpKind, bool) {
	switch s {
	case "coin", "score":
		return PowerUpScore, true
	case "mushroom", "growth":
		return PowerUpGrowth, true
	case "life_mushroom", "extra_life", "1up":
		return PowerUpExtraLife, true
	}
	return PowerUpScore, false
}

type PowerUp struct {
	Kind     PowerUpKind
	Consumed bool
	// BigPoints is awarded instead of growing when a growth item is picked
	// up by a player who is already big.
	BigPoints int
	Session   Reporter
}

var PowerUpComponent = NewComponent[PowerUp]()
