package entity

import (
	"fmt"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

func NewPlayer(w *ecs.World, session component.Reporter) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", nil, session)
}

func NewPlayerAt(w *ecs.World, x, y float64, session component.Reporter) (ecs.Entity, error) {
	return buildAt(w, "player.yaml", x, y, nil, session)
}

// buildAt builds a prefab and moves it to (x, y).
func buildAt(w *ecs.World, prefab string, x, y float64, overrides map[string]any, session component.Reporter) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab, overrides, session)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: override transform: %w", prefab, err)
	}
	return e, nil
}
