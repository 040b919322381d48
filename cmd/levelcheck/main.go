// Command levelcheck loads a level headlessly, runs the simulation for a
// number of fixed steps with no input and reports what happened.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/ringrush/config"
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
	"github.com/milk9111/ringrush/ecs/entity"
	"github.com/milk9111/ringrush/ecs/system"
	"github.com/milk9111/ringrush/levels"
	"github.com/milk9111/ringrush/prefabs"
	"github.com/milk9111/ringrush/session"
)

const stepDt = 1.0 / 60.0

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.BindFlags(flag.CommandLine)
	steps := flag.Int("steps", 600, "fixed steps to simulate")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	report, err := run(cfg, *steps)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, report)
}

type report struct {
	Level    string
	Entities int
	Steps    int
	Lives    int
	Points   int
	Rings    int
	Time     float64
	Outcome  session.Outcome
	Alive    bool
}

func (r report) String() string {
	return fmt.Sprintf("%s: %d entities, %d steps, lives=%d points=%d rings=%d time=%s outcome=%s player_alive=%t",
		r.Level, r.Entities, r.Steps, r.Lives, r.Points, r.Rings, session.FormatTime(r.Time), r.Outcome, r.Alive)
}

func run(cfg config.Config, steps int) (report, error) {
	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return report{}, err
	}
	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return report{}, err
	}
	s := session.New(sessionCfg, nil, nil, nil)

	w := ecs.NewWorld()
	w.SetTimeScale(cfg.TimeScale)
	physics := system.NewPhysicsSystem(system.DefaultGravity)

	w.AddSystem(ecs.NewScheduler("control",
		system.NewPlayerControllerSystem(physics, system.DefaultGravity),
		system.NewStompSystem(physics),
		system.NewWalkerSystem(physics),
	))
	w.AddSystem(physics)
	w.AddSystem(ecs.NewScheduler("react",
		system.NewContactSystem(entity.Spawner{}),
		system.NewCameraSystem(),
		system.NewEnemySystem(),
		system.NewEnemyScriptSystem(prefabs.LoadScript),
		system.NewInvincibilitySystem(),
		system.NewSequenceSystem(),
		system.NewSessionTimerSystem(s),
	))
	w.AddSystem(ecs.NewScheduler("cleanup",
		system.NewTTLSystem(),
		system.NewContactResetSystem(),
	))

	loaded, err := entity.LoadLevelToWorld(w, lvl, s)
	if err != nil {
		return report{}, err
	}
	player := loaded.Player
	if err := s.SceneLoaded(session.SceneGame, session.PlayerFunc(func() {
		system.PlayerDieDirectly(w, player)
	})); err != nil {
		return report{}, err
	}

	ran := 0
	for ; ran < steps && s.Outcome() == session.InProgress; ran++ {
		w.Update(stepDt)
	}

	alive := false
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		alive = p.Alive
	}

	return report{
		Level:    lvl.Name,
		Entities: len(ecs.Entities(w)),
		Steps:    ran,
		Lives:    s.Lives(),
		Points:   s.Points(),
		Rings:    s.Rings(),
		Time:     s.TimeRemaining(),
		Outcome:  s.Outcome(),
		Alive:    alive,
	}, nil
}
