package component

// Transform is the centre position of an entity in world units (one unit per
// tile, Y grows downward) plus its visual/collider scale.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is the linear velocity in units per second.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
