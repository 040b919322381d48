package component

// Direction is a horizontal walk direction.
type Direction int8

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Direction) Flip() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Walker is a frame-stepped horizontal patrol that turns around when a
// forward probe hits anything outside Exempt.
type Walker struct {
	Direction Direction
	Speed     float64
	Exempt    CategoryMask
	Active    bool

	// ProbeDrop lowers the probe origin below the centre; ProbeMargin is
	// added to half the entity width to get the probe length.
	ProbeDrop   float64
	ProbeMargin float64

	// Turns counts direction flips.
	Turns int
}

var WalkerComponent = NewComponent[Walker]()
