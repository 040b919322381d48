package component

// BlockVariant is the closed set of block behaviours.
type BlockVariant uint8

const (
	BlockBouncing BlockVariant = iota
	BlockBreakable
	BlockSurprise
)

func (v BlockVariant) String() string {
	switch v {
	case BlockBouncing:
		return "bouncing"
	case BlockBreakable:
		return "breakable"
	case BlockSurprise:
		return "surprise"
	default:
		return "unknown"
	}
}

func ParseBlockVariant(s string) (BlockVariant, bool) {
	switch s {
	case "bouncing", "brick_bounce":
		return BlockBouncing, true
	case "breakable", "brick":
		return BlockBreakable, true
	case "surprise", "question":
		return BlockSurprise, true
	}
	return BlockBouncing, false
}

type BlockState uint8

const (
	BlockActive BlockState = iota
	BlockExhausted
	BlockBroken
)

func (s BlockState) String() string {
	switch s {
	case BlockActive:
		return "active"
	case BlockExhausted:
		return "exhausted"
	case BlockBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// BlockTuning holds the fixed offsets and delays of block sequences.
type BlockTuning struct {
	BounceOffset float64
	BounceHold   float64
	BounceSettle float64
	SpawnOffset  float64
	CoinLinger   float64
	BreakDelay   float64
	SwapDelay    float64
}

type Block struct {
	Variant    BlockVariant
	State      BlockState
	Hits       int
	HasPowerUp bool
	PowerUp    PowerUpKind
	RestY      float64

	// AltSprite replaces the sprite once the block is exhausted.
	AltSprite string
	Tuning    BlockTuning
	Session   Reporter
}

var BlockComponent = NewComponent[Block]()
