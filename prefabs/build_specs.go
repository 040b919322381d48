package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// MergeComponents returns base with overrides applied. Nested maps are
// merged key by key; any other value replaces the base value.
func MergeComponents(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if bm, ok := asMap(out[k]); ok {
			if om, ok := asMap(v); ok {
				out[k] = MergeComponents(bm, om)
				continue
			}
		}
		out[k] = v
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}

type TagComponentSpec struct {
	Category string `yaml:"category"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Key          string    `yaml:"key"`
	SortingLayer string    `yaml:"sorting_layer"`
	Color        YAMLColor `yaml:"color"`
	Hidden       bool      `yaml:"hidden"`
}

type AnimationComponentSpec struct {
	Disabled bool `yaml:"disabled"`
}

type PhysicsBodyComponentSpec struct {
	Kind            string  `yaml:"kind"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Mass            float64 `yaml:"mass"`
	Friction        float64 `yaml:"friction"`
	Sensor          bool    `yaml:"sensor"`
	Edges           bool    `yaml:"edges"`
	WeakPointHeight float64 `yaml:"weak_point_height"`
}

type WalkerComponentSpec struct {
	Direction   string   `yaml:"direction"`
	Speed       float64  `yaml:"speed"`
	Exempt      []string `yaml:"exempt"`
	Active      bool     `yaml:"active"`
	ProbeDrop   float64  `yaml:"probe_drop"`
	ProbeMargin float64  `yaml:"probe_margin"`
}

type PlayerComponentSpec struct {
	MoveSpeed           float64 `yaml:"move_speed"`
	MaxSpeed            float64 `yaml:"max_speed"`
	JumpHeight          float64 `yaml:"jump_height"`
	SmallScale          float64 `yaml:"small_scale"`
	BigScale            float64 `yaml:"big_scale"`
	SizeTicks           int     `yaml:"size_ticks"`
	SizeInterval        float64 `yaml:"size_interval"`
	SizeLift            float64 `yaml:"size_lift"`
	InvincibilityWindow float64 `yaml:"invincibility_window"`
	DeathHold           float64 `yaml:"death_hold"`
	DeathLeapHeight     float64 `yaml:"death_leap_height"`
	DeathLeapDuration   float64 `yaml:"death_leap_duration"`
	DeathPause          float64 `yaml:"death_pause"`
	StompPoints         int     `yaml:"stomp_points"`
	StartBig            bool    `yaml:"start_big"`
}

type EnemyComponentSpec struct {
	DeathFreeze float64 `yaml:"death_freeze"`
	RemoveAfter float64 `yaml:"remove_after"`
	StompPoints int     `yaml:"stomp_points"`
	Script      string  `yaml:"script"`
}

type BlockComponentSpec struct {
	Variant      string  `yaml:"variant"`
	Hits         int     `yaml:"hits"`
	PowerUp      string  `yaml:"power_up"`
	AltSprite    string  `yaml:"alt_sprite"`
	BounceOffset float64 `yaml:"bounce_offset"`
	BounceHold   float64 `yaml:"bounce_hold"`
	BounceSettle float64 `yaml:"bounce_settle"`
	SpawnOffset  float64 `yaml:"spawn_offset"`
	CoinLinger   float64 `yaml:"coin_linger"`
	BreakDelay   float64 `yaml:"break_delay"`
	SwapDelay    float64 `yaml:"swap_delay"`
}

type PowerUpComponentSpec struct {
	Kind      string `yaml:"kind"`
	BigPoints int    `yaml:"big_points"`
}

type TriggerComponentSpec struct {
	Kind  string  `yaml:"kind"`
	Delay float64 `yaml:"delay"`
}

type CameraComponentSpec struct {
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

type ParticlesComponentSpec struct {
	Count int `yaml:"count"`
}
