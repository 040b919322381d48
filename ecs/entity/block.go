package entity

import (
	"fmt"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

var blockPrefabs = map[component.BlockVariant]string{
	component.BlockBouncing:  "brick_bounce.yaml",
	component.BlockBreakable: "brick.yaml",
	component.BlockSurprise:  "question.yaml",
}

// NewBlockAt places a block of the given variant. overrides follow the
// prefab component layout, e.g. {"block": {"power_up": "mushroom"}}.
func NewBlockAt(w *ecs.World, variant component.BlockVariant, x, y float64, overrides map[string]any, session component.Reporter) (ecs.Entity, error) {
	prefab, ok := blockPrefabs[variant]
	if !ok {
		return 0, fmt.Errorf("block: no prefab for variant %s", variant)
	}
	return buildAt(w, prefab, x, y, overrides, session)
}
