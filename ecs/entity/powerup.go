package entity

import (
	"fmt"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

var powerUpPrefabs = map[component.PowerUpKind]string{
	component.PowerUpScore:     "coin.yaml",
	component.PowerUpGrowth:    "mushroom.yaml",
	component.PowerUpExtraLife: "life_mushroom.yaml",
}

func NewPowerUpAt(w *ecs.World, kind component.PowerUpKind, x, y float64, session component.Reporter) (ecs.Entity, error) {
	prefab, ok := powerUpPrefabs[kind]
	if !ok {
		return 0, fmt.Errorf("power-up: no prefab for %s", kind)
	}
	return buildAt(w, prefab, x, y, nil, session)
}

func NewParticlesAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "particles.yaml", x, y, nil, nil)
}

// Spawner creates power-ups and break effects for block sequences.
type Spawner struct{}

func (Spawner) SpawnPowerUp(w *ecs.World, kind component.PowerUpKind, x, y float64, session component.Reporter) (ecs.Entity, error) {
	return NewPowerUpAt(w, kind, x, y, session)
}

func (Spawner) SpawnParticles(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return NewParticlesAt(w, x, y)
}
