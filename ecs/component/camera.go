package component

// CameraFollow tracks the player horizontally, never moving left.
type CameraFollow struct {
	OffsetX     float64
	ViewWidth   float64
	ViewHeight  float64
	Initialized bool
}

var CameraFollowComponent = NewComponent[CameraFollow]()

// Visible marks an entity that has been inside the camera view at least once.
type Visible struct{}

var VisibleComponent = NewComponent[Visible]()
