package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// Script hooks, looked up in the script's `hooks` map.
const (
	HookVisible = "visible"
	HookTurn    = "turn"
	HookDeath   = "death"
)

const enemyHookDispatchScript = `
__h := hooks[__hook]
if is_callable(__h) {
	__h(__engine, __state)
}
`

// ScriptLoader returns the source of a script by path.
type ScriptLoader func(path string) ([]byte, error)

type enemyScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
	lastState  component.EnemyState
	lastTurns  int
}

// EnemyScriptSystem runs optional tengo hooks when an enemy wakes up,
// turns around or dies. It observes state changes made by the other
// systems, so it should run after them.
type EnemyScriptSystem struct {
	load     ScriptLoader
	runtimes map[ecs.Entity]*enemyScriptRuntime
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewEnemyScriptSystem(load ScriptLoader) *EnemyScriptSystem {
	return &EnemyScriptSystem{
		load:     load,
		runtimes: map[ecs.Entity]*enemyScriptRuntime{},
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]bool{},
	}
}

// Invalidate drops cached scripts so they are reloaded on next use.
func (s *EnemyScriptSystem) Invalidate() {
	s.compiled = map[string]*tengo.Compiled{}
	s.failed = map[string]bool{}
	for e, rt := range s.runtimes {
		rt.compiled = nil
		s.runtimes[e] = rt
	}
}

func (s *EnemyScriptSystem) Update(w *ecs.World) {
	if w == nil || s.load == nil {
		return
	}

	for e := range s.runtimes {
		if !w.IsAlive(e) {
			delete(s.runtimes, e)
		}
	}

	ecs.ForEach2(w, component.EnemyScriptComponent.Kind(), component.EnemyComponent.Kind(), func(e ecs.Entity, script *component.EnemyScript, enemy *component.Enemy) {
		rt := s.runtimes[e]
		if rt == nil || rt.scriptPath != script.Path {
			rt = &enemyScriptRuntime{
				scriptPath: script.Path,
				stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
				lastState:  component.EnemyDormant,
			}
			s.runtimes[e] = rt
		}

		turns := 0
		if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
			turns = walker.Turns
		}

		var hooks []string
		if enemy.State != rt.lastState {
			switch enemy.State {
			case component.EnemyPatrolling:
				hooks = append(hooks, HookVisible)
			case component.EnemyDying:
				hooks = append(hooks, HookDeath)
			}
			rt.lastState = enemy.State
		}
		if turns != rt.lastTurns {
			hooks = append(hooks, HookTurn)
			rt.lastTurns = turns
		}

		for _, hook := range hooks {
			if err := s.fire(w, e, rt, hook); err != nil {
				fmt.Printf("enemy script: entity=%s hook=%s error: %v\n", e, hook, err)
				return
			}
		}
	})
}

func (s *EnemyScriptSystem) fire(w *ecs.World, e ecs.Entity, rt *enemyScriptRuntime, hook string) error {
	if rt.compiled == nil {
		compiled, err := s.compile(rt.scriptPath)
		if err != nil {
			return err
		}
		rt.compiled = compiled
	}

	if err := rt.compiled.Set("__hook", hook); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", buildEnemyScriptEngine(w, e)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// compile builds the script once per path; each entity runs its own clone.
func (s *EnemyScriptSystem) compile(path string) (*tengo.Compiled, error) {
	if s.failed[path] {
		return nil, fmt.Errorf("script %s failed to compile earlier", path)
	}
	if c, ok := s.compiled[path]; ok {
		return c.Clone(), nil
	}

	src, err := s.load(path)
	if err != nil {
		s.failed[path] = true
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + enemyHookDispatchScript))
	_ = script.Add("__hook", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		s.failed[path] = true
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	s.compiled[path] = compiled
	return compiled.Clone(), nil
}

func buildEnemyScriptEngine(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["play"] = &tengo.UserFunction{Name: "play", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		key := strings.TrimSpace(objectAsString(args[0]))
		if key == "" {
			return tengo.FalseValue, nil
		}
		PlaySound(w, key)
		return tengo.TrueValue, nil
	}}

	values["add_points"] = &tengo.UserFunction{Name: "add_points", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		n, ok := tengo.ToInt(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok || enemy.Session == nil {
			return tengo.FalseValue, nil
		}
		enemy.Session.AddPoints(n)
		return tengo.TrueValue, nil
	}}

	values["set_speed"] = &tengo.UserFunction{Name: "set_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		walker.Speed = v
		return tengo.TrueValue, nil
	}}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: 0}, &tengo.Float{Value: 0}}}, nil
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: t.X}, &tengo.Float{Value: t.Y}}}, nil
	}}

	values["direction"] = &tengo.UserFunction{Name: "direction", Value: func(args ...tengo.Object) (tengo.Object, error) {
		walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind())
		if !ok {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: walker.Direction.String()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
