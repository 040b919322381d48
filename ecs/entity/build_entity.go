package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/prefabs"
)

type buildContext struct {
	PrefabPath string
	Session    component.Reporter
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"tag":          addTag,
	"transform":    addTransform,
	"sprite":       addSprite,
	"animation":    addAnimation,
	"input":        addInput,
	"physics_body": addPhysicsBody,
	"walker":       addWalker,
	"player":       addPlayer,
	"enemy":        addEnemy,
	"block":        addBlock,
	"power_up":     addPowerUp,
	"trigger":      addTrigger,
	"camera":       addCamera,
	"ttl":          addTTL,
	"particles":    addParticles,
}

// Transform goes first: player and block builders read it.
var componentBuildOrder = []string{
	"tag",
	"transform",
	"sprite",
	"animation",
	"input",
	"physics_body",
	"walker",
	"player",
	"enemy",
	"block",
	"power_up",
	"trigger",
	"camera",
	"ttl",
	"particles",
}

// BuildEntity creates an entity from a prefab. overrides are merged over the
// prefab components, so a level can change a single field of one component.
func BuildEntity(w *ecs.World, prefabPath string, overrides map[string]any, session component.Reporter) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	components := spec.Components
	if len(overrides) > 0 {
		components = prefabs.MergeComponents(components, overrides)
	}

	for name := range components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q (known: %v)", prefabPath, name, knownComponents())
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Session: session}

	for _, name := range componentBuildOrder {
		raw, ok := components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform places e, keeping its scale, and keeps a block's rest
// height in step.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	if b, ok := ecs.Get(w, e, component.BlockComponent.Kind()); ok {
		b.RestY = y
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addTag(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TagComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tag spec: %w", err)
	}
	category, ok := component.ParseCategory(spec.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", spec.Category)
	}
	return ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Category: category})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Key:          spec.Key,
		SortingLayer: spec.SortingLayer,
		Color:        spec.Color.RGBA8(),
		Hidden:       spec.Hidden,
	})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Enabled: !spec.Disabled})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func parseBodyKind(s string) (component.BodyKind, error) {
	switch s {
	case "", "dynamic":
		return component.BodyDynamic, nil
	case "static":
		return component.BodyStatic, nil
	case "kinematic":
		return component.BodyKinematic, nil
	}
	return 0, fmt.Errorf("unknown body kind %q", s)
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	kind, err := parseBodyKind(spec.Kind)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics_body needs a positive size, got %gx%g", spec.Width, spec.Height)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:            kind,
		Width:           spec.Width,
		Height:          spec.Height,
		Mass:            spec.Mass,
		Friction:        spec.Friction,
		Sensor:          spec.Sensor,
		Edges:           spec.Edges,
		WeakPointHeight: spec.WeakPointHeight,
	}); err != nil {
		return err
	}
	if kind != component.BodyDynamic {
		return nil
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

func parseDirection(s string) (component.Direction, error) {
	switch s {
	case "left":
		return component.DirLeft, nil
	case "", "right":
		return component.DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func addWalker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WalkerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode walker spec: %w", err)
	}
	dir, err := parseDirection(spec.Direction)
	if err != nil {
		return err
	}
	var exempt component.CategoryMask
	for _, tag := range spec.Exempt {
		c, ok := component.ParseCategory(tag)
		if !ok {
			return fmt.Errorf("walker: unknown exempt category %q", tag)
		}
		exempt |= component.MaskOf(c)
	}
	return ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{
		Direction:   dir,
		Speed:       spec.Speed,
		Exempt:      exempt,
		Active:      spec.Active,
		ProbeDrop:   spec.ProbeDrop,
		ProbeMargin: spec.ProbeMargin,
	})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	tuning := component.PlayerTuning{
		MoveSpeed:           spec.MoveSpeed,
		MaxSpeed:            spec.MaxSpeed,
		JumpHeight:          spec.JumpHeight,
		SmallScale:          spec.SmallScale,
		BigScale:            spec.BigScale,
		SizeTicks:           spec.SizeTicks,
		SizeInterval:        spec.SizeInterval,
		SizeLift:            spec.SizeLift,
		InvincibilityWindow: spec.InvincibilityWindow,
		DeathHold:           spec.DeathHold,
		DeathLeapHeight:     spec.DeathLeapHeight,
		DeathLeapDuration:   spec.DeathLeapDuration,
		DeathPause:          spec.DeathPause,
		StompPoints:         spec.StompPoints,
	}
	if tuning.SmallScale <= 0 {
		tuning.SmallScale = 1
	}
	if tuning.BigScale <= 0 {
		tuning.BigScale = tuning.SmallScale
	}

	size := component.SizeSmall
	scale := tuning.SmallScale
	if spec.StartBig {
		size = component.SizeBig
		scale = tuning.BigScale
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.ScaleX, t.ScaleY = scale, scale
	}

	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Size:           size,
		Alive:          true,
		ControlEnabled: true,
		Tuning:         tuning,
		Session:        ctx.Session,
	})
}

func addEnemy(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		State:       component.EnemyDormant,
		Alive:       true,
		DeathFreeze: spec.DeathFreeze,
		RemoveAfter: spec.RemoveAfter,
		StompPoints: spec.StompPoints,
		Session:     ctx.Session,
	}); err != nil {
		return err
	}
	if spec.Script == "" {
		return nil
	}
	return ecs.Add(w, e, component.EnemyScriptComponent.Kind(), &component.EnemyScript{Path: spec.Script})
}

func addBlock(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BlockComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode block spec: %w", err)
	}
	variant, ok := component.ParseBlockVariant(spec.Variant)
	if !ok {
		return fmt.Errorf("unknown block variant %q", spec.Variant)
	}
	if spec.Hits < 1 {
		return fmt.Errorf("block needs at least one hit, got %d", spec.Hits)
	}

	b := &component.Block{
		Variant:   variant,
		State:     component.BlockActive,
		Hits:      spec.Hits,
		AltSprite: spec.AltSprite,
		Tuning: component.BlockTuning{
			BounceOffset: spec.BounceOffset,
			BounceHold:   spec.BounceHold,
			BounceSettle: spec.BounceSettle,
			SpawnOffset:  spec.SpawnOffset,
			CoinLinger:   spec.CoinLinger,
			BreakDelay:   spec.BreakDelay,
			SwapDelay:    spec.SwapDelay,
		},
		Session: ctx.Session,
	}
	if spec.PowerUp != "" {
		kind, ok := component.ParsePowerUpKind(spec.PowerUp)
		if !ok {
			return fmt.Errorf("unknown power-up %q", spec.PowerUp)
		}
		b.HasPowerUp = true
		b.PowerUp = kind
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		b.RestY = t.Y
	}
	return ecs.Add(w, e, component.BlockComponent.Kind(), b)
}

func addPowerUp(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PowerUpComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode power_up spec: %w", err)
	}
	kind, ok := component.ParsePowerUpKind(spec.Kind)
	if !ok {
		return fmt.Errorf("unknown power-up %q", spec.Kind)
	}
	return ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{
		Kind:      kind,
		BigPoints: spec.BigPoints,
		Session:   ctx.Session,
	})
}

func addTrigger(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TriggerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trigger spec: %w", err)
	}
	var kind component.TriggerKind
	switch spec.Kind {
	case "dead_zone":
		kind = component.TriggerDeadZone
	case "end_flag":
		kind = component.TriggerEndFlag
	default:
		return fmt.Errorf("unknown trigger %q", spec.Kind)
	}
	return ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Kind:    kind,
		Delay:   spec.Delay,
		Session: ctx.Session,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	return ecs.Add(w, e, component.CameraFollowComponent.Kind(), &component.CameraFollow{
		ViewWidth:  spec.ViewWidth,
		ViewHeight: spec.ViewHeight,
	})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Seconds})
}

func addParticles(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ParticlesComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode particles spec: %w", err)
	}
	return ecs.Add(w, e, component.ParticlesComponent.Kind(), &component.Particles{Count: spec.Count})
}

// knownComponents lists the component names prefabs may use.
func knownComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
