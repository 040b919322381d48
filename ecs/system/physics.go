package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

const collisionTypeEntity cp.CollisionType = 1

// DefaultGravity is the downward acceleration in units per second squared.
const DefaultGravity = 29.43

// ProbeHit is the first collider met by a probe segment.
type ProbeHit struct {
	Entity   ecs.Entity
	Category component.Category
	Distance float64
}

// Prober casts short segments against the colliders of the world.
type Prober interface {
	// Probe casts from (x0,y0) to (x1,y1), ignoring self. Only colliders
	// whose category is in mask are considered; a zero mask means any.
	Probe(self ecs.Entity, x0, y0, x1, y1 float64, mask component.CategoryMask) (ProbeHit, bool)
}

// shapeRef is stored as UserData on every shape the host creates.
type shapeRef struct {
	entity   ecs.Entity
	category component.Category
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	kind   component.BodyKind
	width  float64
	height float64
	layer  component.CollisionLayer
}

// PhysicsSystem hosts a Chipmunk2D space. Before each step it mirrors
// transforms and velocities into bodies; after the step it copies positions
// back and queues every begin/stay/end contact as an ecs.Contact.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	pending  []ecs.Contact
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncBodies(w)

	if dt := w.Clock().Dt; dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.queueContact(arb, ecs.ContactBegin)
		}
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.queueContact(arb, ecs.ContactStay)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.queueContact(arb, ecs.ContactEnd)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) queueContact(arb *cp.Arbiter, phase ecs.ContactPhase) {
	shapeA, shapeB := arb.Shapes()
	refA, okA := shapeA.UserData.(shapeRef)
	refB, okB := shapeB.UserData.(shapeRef)
	if !okA || !okB || refA.entity == refB.entity {
		return
	}
	ps.pending = append(ps.pending, ecs.Contact{
		A:         refA.entity,
		B:         refB.entity,
		CategoryA: refA.category,
		CategoryB: refB.category,
		NormalY:   arb.Normal().Y,
		Phase:     phase,
	})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	events := w.Events()
	for _, c := range ps.pending {
		events.PushContact(c)
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		width, height := bodyComp.Footprint(transform)
		info := ps.entities[e]
		if info != nil && info.kind == bodyComp.Kind && info.width == width && info.height == height {
			if info.layer != bodyComp.Layer {
				ps.applyLayer(e, info, bodyComp.Layer)
			}
			return
		}

		// Size or kind changed: rebuild, keeping the velocity of a dynamic body.
		var vel cp.Vector
		if info != nil {
			if info.kind == component.BodyDynamic && info.body != nil {
				vel = info.body.Velocity()
			}
			ps.removeInfo(info)
		}

		category := component.CategoryNone
		if tag, ok := ecs.Get(w, e, component.TagComponent.Kind()); ok {
			category = tag.Category
		}

		info = ps.createBodyInfo(e, category, transform, bodyComp, width, height)
		if info == nil {
			log.Printf("physics: entity %s has no usable collider (%.2fx%.2f)", e, width, height)
			return
		}
		if info.kind == component.BodyDynamic {
			info.body.SetVelocityVector(vel)
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shapes = info.shapes
	})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, category component.Category, transform *component.Transform, bodyComp *component.PhysicsBody, width, height float64) *bodyInfo {
	if width <= 0 || height <= 0 {
		return nil
	}

	info := &bodyInfo{kind: bodyComp.Kind, width: width, height: height, layer: bodyComp.Layer}
	center := cp.Vector{X: transform.X, Y: transform.Y}

	switch bodyComp.Kind {
	case component.BodyStatic:
		info.body = ps.space.StaticBody
		bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
		info.shapes = append(info.shapes, cp.NewBox2(ps.space.StaticBody, bb, 0))
	case component.BodyKinematic:
		info.body = ps.space.AddBody(cp.NewKinematicBody())
		info.body.SetPosition(center)
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		info.body = ps.space.AddBody(cp.NewBody(mass, math.Inf(1)))
		info.body.SetPosition(center)
	}

	if bodyComp.Kind != component.BodyStatic {
		if bodyComp.Edges {
			top, bottom := -height/2, height/2
			left, right := -width/2, width/2
			info.shapes = append(info.shapes,
				cp.NewSegment(info.body, cp.Vector{X: left, Y: top}, cp.Vector{X: left, Y: bottom}, 0.05),
				cp.NewSegment(info.body, cp.Vector{X: right, Y: top}, cp.Vector{X: right, Y: bottom}, 0.05),
			)
		} else {
			info.shapes = append(info.shapes, cp.NewBox(info.body, width, height, 0))
		}
	}

	for _, shape := range info.shapes {
		shape.UserData = shapeRef{entity: e, category: category}
	}

	if bodyComp.WeakPointHeight > 0 && bodyComp.Kind != component.BodyStatic {
		h := bodyComp.WeakPointHeight
		bb := cp.BB{L: -width * 0.45, B: -height/2 - h, R: width * 0.45, T: -height / 2}
		weak := cp.NewBox2(info.body, bb, 0)
		weak.UserData = shapeRef{entity: e, category: component.CategoryWeakPoint}
		info.shapes = append(info.shapes, weak)
	}

	for _, shape := range info.shapes {
		shape.SetFriction(bodyComp.Friction)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetCollisionType(collisionTypeEntity)
		shape.Filter = layerFilter(e, shape, bodyComp.Layer)
		ps.space.AddShape(shape)
	}

	return info
}

// layerFilter puts the shape's category in its filter bits. The death layer
// clears both categories and mask so the shape touches nothing and no probe
// sees it.
func layerFilter(e ecs.Entity, shape *cp.Shape, layer component.CollisionLayer) cp.ShapeFilter {
	if layer == component.LayerDeath {
		return cp.NewShapeFilter(uint(e), 0, 0)
	}
	category := component.CategoryNone
	if ref, ok := shape.UserData.(shapeRef); ok {
		category = ref.category
	}
	mask := cp.ALL_CATEGORIES
	if category == component.CategoryCamera {
		// Camera bounds only hold the player in view.
		mask = uint(component.MaskOf(component.CategoryPlayer))
	}
	return cp.NewShapeFilter(uint(e), uint(component.MaskOf(category)), mask)
}

func (ps *PhysicsSystem) applyLayer(e ecs.Entity, info *bodyInfo, layer component.CollisionLayer) {
	for _, shape := range info.shapes {
		shape.SetFilter(layerFilter(e, shape, layer))
	}
	info.layer = layer
}

// syncBodies pushes component state into bodies ahead of the step.
func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.kind == component.BodyStatic {
			return
		}
		body := info.body

		if info.kind == component.BodyKinematic || bodyComp.Teleport {
			body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			bodyComp.Teleport = false
		}

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && info.kind == component.BodyDynamic {
			body.SetVelocity(vel.X, vel.Y)
		}

		if bodyComp.FreezeY {
			pos := body.Position()
			body.SetPosition(cp.Vector{X: pos.X, Y: bodyComp.FreezeAtY})
			v := body.Velocity()
			body.SetVelocity(v.X, 0)
		}
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.kind != component.BodyDynamic {
			return
		}
		body := info.body
		if bodyComp.FreezeY {
			pos := body.Position()
			body.SetPosition(cp.Vector{X: pos.X, Y: bodyComp.FreezeAtY})
			v := body.Velocity()
			body.SetVelocity(v.X, 0)
		}
		pos := body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v := body.Velocity()
			vel.X, vel.Y = v.X, v.Y
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	for _, shape := range info.shapes {
		if shape != nil {
			ps.space.RemoveShape(shape)
		}
	}
	if info.body != nil && info.kind != component.BodyStatic {
		ps.space.RemoveBody(info.body)
	}
}

// Probe implements Prober using a Chipmunk segment query. Sensors and
// colliders on the death layer are never reported.
func (ps *PhysicsSystem) Probe(self ecs.Entity, x0, y0, x1, y1 float64, mask component.CategoryMask) (ProbeHit, bool) {
	if ps == nil || ps.space == nil {
		return ProbeHit{}, false
	}
	categories := cp.ALL_CATEGORIES
	if mask != 0 {
		categories = uint(mask)
	}
	start, end := cp.Vector{X: x0, Y: y0}, cp.Vector{X: x1, Y: y1}
	info := ps.space.SegmentQueryFirst(start, end, 0, cp.NewShapeFilter(uint(self), cp.ALL_CATEGORIES, categories))
	if info.Shape == nil {
		return ProbeHit{}, false
	}
	ref, ok := info.Shape.UserData.(shapeRef)
	if !ok {
		return ProbeHit{}, false
	}
	return ProbeHit{
		Entity:   ref.entity,
		Category: ref.category,
		Distance: info.Alpha * end.Sub(start).Length(),
	}, true
}
