package entity

import (
	"github.com/milk9111/ringrush/ecs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml", nil, nil)
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "camera.yaml", x, y, nil, nil)
}
