package entity

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// NewEnemyAt places a dormant goomba. It starts walking once the camera
// has seen it.
func NewEnemyAt(w *ecs.World, x, y float64, session component.Reporter) (ecs.Entity, error) {
	return buildAt(w, "goomba.yaml", x, y, nil, session)
}
