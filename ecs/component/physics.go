package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics host simulates a body.
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height describe the unscaled box; the host multiplies them by
// the Transform scale, so changing the scale changes the footprint.
type PhysicsBody struct {
	Body   *cp.Body
	Shapes []*cp.Shape

	Kind     BodyKind
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Sensor   bool

	// Edges turns the body into two vertical walls Width apart instead of a
	// box (camera bounds).
	Edges bool

	// WeakPointHeight adds a thin solid strip of this height on top of the
	// box, reported as CategoryWeakPoint.
	WeakPointHeight float64

	// FreezeY pins the body at FreezeAtY while set.
	FreezeY   bool
	FreezeAtY float64

	Layer CollisionLayer

	// Teleport asks the host to move the body to the Transform position
	// before the next step.
	Teleport bool
}

// Footprint returns the scaled collider size.
func (b *PhysicsBody) Footprint(t *Transform) (w, h float64) {
	sx, sy := 1.0, 1.0
	if t != nil {
		if t.ScaleX != 0 {
			sx = t.ScaleX
		}
		if t.ScaleY != 0 {
			sy = t.ScaleY
		}
	}
	return b.Width * sx, b.Height * sy
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
