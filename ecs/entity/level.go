package entity

import (
	"fmt"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/levels"
)

var levelPrefabs = map[string]string{
	"camera":        "camera.yaml",
	"player":        "player.yaml",
	"ground":        "ground.yaml",
	"brick":         "brick.yaml",
	"brick_bounce":  "brick_bounce.yaml",
	"question":      "question.yaml",
	"goomba":        "goomba.yaml",
	"coin":          "coin.yaml",
	"mushroom":      "mushroom.yaml",
	"life_mushroom": "life_mushroom.yaml",
	"dead_zone":     "dead_zone.yaml",
	"end_flag":      "end_flag.yaml",
}

// LoadedLevel names the entities the host needs to find again.
type LoadedLevel struct {
	Player ecs.Entity
	Camera ecs.Entity
	Count  int
}

// LoadLevelToWorld builds every entity of lvl. Entities with a W or H are
// stretched to that many units.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, session component.Reporter) (LoadedLevel, error) {
	var out LoadedLevel
	if w == nil || lvl == nil {
		return out, fmt.Errorf("load level: world and level are required")
	}

	for i, spec := range lvl.Entities {
		prefab, ok := levelPrefabs[spec.Type]
		if !ok {
			return out, fmt.Errorf("load level %q: entity %d: unknown type %q", lvl.Name, i, spec.Type)
		}

		overrides := make(map[string]any, len(spec.Props)+1)
		for k, v := range spec.Props {
			overrides[k] = v
		}
		if spec.W > 0 || spec.H > 0 {
			size := map[string]any{}
			if spec.W > 0 {
				size["scale_x"] = spec.W
			}
			if spec.H > 0 {
				size["scale_y"] = spec.H
			}
			overrides["transform"] = size
		}

		e, err := buildAt(w, prefab, spec.X, spec.Y, overrides, session)
		if err != nil {
			return out, fmt.Errorf("load level %q: entity %d (%s): %w", lvl.Name, i, spec.Type, err)
		}
		out.Count++

		switch spec.Type {
		case "player":
			out.Player = e
		case "camera":
			out.Camera = e
		}
	}

	return out, nil
}
