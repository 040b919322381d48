package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// CameraSystem keeps the camera on the player horizontally, never scrolling
// back left, and marks enemies inside the view as visible.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraFollowComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	follow, ok := ecs.Get(w, cs.camEntity, component.CameraFollowComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			if !follow.Initialized {
				follow.OffsetX = pt.X - camTransform.X
				follow.Initialized = true
			}
			if newX := pt.X - follow.OffsetX; newX > camTransform.X {
				SetPosition(w, cs.camEntity, newX, camTransform.Y)
			}
		}
	}

	left := camTransform.X - follow.ViewWidth/2
	right := camTransform.X + follow.ViewWidth/2
	top := camTransform.Y - follow.ViewHeight/2
	bottom := camTransform.Y + follow.ViewHeight/2

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, t *component.Transform) {
		if ecs.Has(w, e, component.VisibleComponent.Kind()) {
			return
		}
		halfW, halfH := t.ScaleX/2, t.ScaleY/2
		if t.X+halfW < left || t.X-halfW > right || t.Y+halfH < top || t.Y-halfH > bottom {
			return
		}
		_ = ecs.Add(w, e, component.VisibleComponent.Kind(), &component.Visible{})
	})
}

// View returns the camera rectangle as centre and size.
func (cs *CameraSystem) View(w *ecs.World) (x, y, width, height float64, ok bool) {
	follow, ok := ecs.Get(w, cs.camEntity, component.CameraFollowComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	return t.X, t.Y, follow.ViewWidth, follow.ViewHeight, true
}
