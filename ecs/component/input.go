package component

// Input stores per-step control input for the player.
type Input struct {
	MoveX  float64
	Jump   bool
	Crouch bool
}

var InputComponent = NewComponent[Input]()
