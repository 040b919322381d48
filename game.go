package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ringrush/config"
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/entity"
	"github.com/milk9111/ringrush/ecs/system"
	"github.com/milk9111/ringrush/levels"
	"github.com/milk9111/ringrush/prefabs"
	"github.com/milk9111/ringrush/session"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// stepDt is one ebiten tick; the world scales it by the time scale.
	stepDt = 1.0 / 60
)

// Game hosts the session and the scene world. Scene changes requested by the
// session are applied after the current Update has finished.
type Game struct {
	cfg        config.Config
	sessionCfg session.Config

	registry session.Registry
	session  *session.Session

	hud      *HUD
	audio    *AudioHost
	renderer *Renderer
	info     *InfoUI
	pause    *ebitenui.UI
	paused   bool
	quit     bool

	scene        string
	pendingScene string

	world   *ecs.World
	camera  *system.CameraSystem
	scripts *system.EnemyScriptSystem

	watcher *prefabs.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		sessionCfg: sessionCfg,
		hud:        NewHUD(),
		audio:      NewAudioHost(cfg.Debug),
		renderer:   NewRenderer(cfg.Debug),
	}
	g.info = NewInfoUI(g.hud)
	g.pause = NewPauseUI(g)
	g.acquireSession()

	if sessionCfg.Policy == session.PolicyDirect {
		g.pendingScene = session.SceneGame
	} else {
		g.pendingScene = session.SceneInfo
	}

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"), "levels")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// acquireSession installs a fresh session unless one is already live.
func (g *Game) acquireSession() {
	candidate := session.New(g.sessionCfg, g.hud, g, g.audio)
	g.session, _ = g.registry.Acquire(candidate)
}

// LoadScene implements session.SceneLoader.
func (g *Game) LoadScene(name string) {
	g.pendingScene = name
}

// RestartGame throws the session away and starts over from the Info scene.
func (g *Game) RestartGame() {
	g.registry.Restart()
	g.acquireSession()
	g.paused = false
}

func (g *Game) QuitGame() {
	g.quit = true
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if g.scene == session.SceneGame && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	switch {
	case g.paused:
		g.pause.Update()
	case g.scene == session.SceneGame && g.world != nil:
		g.world.Update(stepDt)
	default:
		// No world outside Game; the Info countdown still runs on scaled time.
		g.session.Tick(stepDt * g.cfg.TimeScale)
		if g.session.Outcome() != session.InProgress && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.RestartGame()
		}
		g.info.Refresh()
		g.info.UI.Update()
	}

	return g.applyPendingScene()
}

func (g *Game) applyPendingScene() error {
	if g.pendingScene == "" {
		return nil
	}
	name := g.pendingScene
	g.pendingScene = ""

	g.world = nil
	g.camera = nil
	g.scripts = nil

	var player session.Player
	if name == session.SceneGame {
		p, err := g.buildWorld()
		if err != nil {
			return fmt.Errorf("load scene %s: %w", name, err)
		}
		player = p
	}

	if err := g.session.SceneLoaded(name, player); err != nil {
		return fmt.Errorf("load scene %s: %w", name, err)
	}
	g.scene = name
	g.paused = false
	return nil
}

// buildWorld loads the level into a new world and returns the handle the
// session uses to kill the player when the timer runs out.
func (g *Game) buildWorld() (session.Player, error) {
	lvl, err := levels.Load(g.cfg.Level)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.SetTimeScale(g.cfg.TimeScale)

	physics := system.NewPhysicsSystem(system.DefaultGravity)
	camera := system.NewCameraSystem()
	scripts := system.NewEnemyScriptSystem(prefabs.LoadScript)

	w.AddSystem(ecs.NewScheduler("control",
		NewInputSystem(),
		system.NewPlayerControllerSystem(physics, system.DefaultGravity),
		system.NewStompSystem(physics),
		system.NewWalkerSystem(physics),
	))
	w.AddSystem(physics)
	w.AddSystem(ecs.NewScheduler("react",
		system.NewContactSystem(entity.Spawner{}),
		camera,
		system.NewEnemySystem(),
		scripts,
		system.NewInvincibilitySystem(),
		system.NewSequenceSystem(),
		system.NewSessionTimerSystem(g.session),
	))
	w.AddSystem(ecs.NewScheduler("cleanup",
		system.NewAudioSystem(g.audio),
		system.NewTTLSystem(),
		system.NewContactResetSystem(),
	))

	loaded, err := entity.LoadLevelToWorld(w, lvl, g.session)
	if err != nil {
		return nil, err
	}
	if !w.IsAlive(loaded.Player) {
		return nil, session.ErrPlayerNotFound
	}

	g.world = w
	g.camera = camera
	g.scripts = scripts

	playerEntity := loaded.Player
	return session.PlayerFunc(func() {
		system.PlayerDieDirectly(w, playerEntity)
	}), nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			g.applyChange(change)
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeScript:
		if g.scripts != nil {
			g.scripts.Invalidate()
		}
		log.Printf("watch: reloaded script %s", filepath.Base(change.Path))
	case prefabs.ChangeSpec:
		if filepath.Base(change.Path) == "sounds.yaml" {
			g.audio.Reload()
		}
		log.Printf("watch: %s applies to entities built from now on", filepath.Base(change.Path))
	case prefabs.ChangeLevel:
		log.Printf("watch: %s applies on the next Game scene", filepath.Base(change.Path))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != session.SceneGame || g.world == nil {
		g.info.UI.Draw(screen)
		g.hud.Draw(screen)
		return
	}

	camX, camY, _, _, ok := g.camera.View(g.world)
	if !ok {
		camX, camY = float64(baseWidth)/2/pixelsPerUnit, float64(baseHeight)/2/pixelsPerUnit
	}
	g.renderer.Draw(g.world, screen, camX, camY)
	g.hud.Draw(screen)

	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
