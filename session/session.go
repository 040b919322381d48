// Package session tracks score, rings, lives and the level timer for one
// play session and decides which scene follows a lost life or a finished
// game.
package session

import (
	"errors"
	"log"
)

var (
	ErrPlayerNotFound = errors.New("session: player not found")
	ErrNilSession     = errors.New("session: session is nil")
)

// Outcome is the result of the play session so far.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Surface names a text element of the display host.
type Surface string

const (
	SurfacePoints Surface = "points"
	SurfaceRings  Surface = "rings"
	SurfaceTime   Surface = "time"
	SurfaceTitle  Surface = "title"
	SurfaceLives  Surface = "lives"
)

// Display receives formatted strings for the HUD and Info screen.
type Display interface {
	SetText(surface Surface, text string)
}

// SceneLoader switches scenes by logical name.
type SceneLoader interface {
	LoadScene(name string)
}

// Audio plays named sounds and the background track.
type Audio interface {
	PlaySound(key string)
	PlayMusic(key string)
	StopMusic()
}

// Player is the part of the player entity the session drives.
type Player interface {
	DieDirectly()
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func()

func (f PlayerFunc) DieDirectly() {
	f()
}

// Config holds the starting counters and scene timings.
type Config struct {
	Lives     int
	TimeLimit float64
	InfoDelay float64
	Policy    Policy
	Title     string
	Debug     bool
}

// DefaultConfig matches the stock game.
func DefaultConfig() Config {
	return Config{
		Lives:     3,
		TimeLimit: 300,
		InfoDelay: 3,
		Policy:    PolicyInfo,
		Title:     "Sonic",
	}
}

// Session is the play-session state every gameplay entity reports to. It is
// driven from a single goroutine and holds no locks.
type Session struct {
	cfg Config

	lives   int
	points  int
	rings   int
	time    float64
	outcome Outcome

	timerOn      bool
	infoPending  bool
	infoLeft     float64
	scene        string
	player       Player
	destroyed    bool
	lastSurfaces map[Surface]string

	display Display
	scenes  SceneLoader
	audio   Audio
}

// New creates a session. Any collaborator may be nil; the matching effect is
// then skipped.
func New(cfg Config, display Display, scenes SceneLoader, audio Audio) *Session {
	if cfg.Lives <= 0 {
		cfg.Lives = DefaultConfig().Lives
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = DefaultConfig().TimeLimit
	}
	if cfg.Title == "" {
		cfg.Title = DefaultConfig().Title
	}
	return &Session{
		cfg:          cfg,
		lives:        cfg.Lives,
		display:      display,
		scenes:       scenes,
		audio:        audio,
		lastSurfaces: make(map[Surface]string),
	}
}

func (s *Session) Lives() int             { return s.lives }
func (s *Session) Points() int            { return s.points }
func (s *Session) Rings() int             { return s.rings }
func (s *Session) TimeRemaining() float64 { return s.time }
func (s *Session) Outcome() Outcome       { return s.outcome }
func (s *Session) Scene() string          { return s.scene }
func (s *Session) TimerRunning() bool     { return s.timerOn }
func (s *Session) Config() Config         { return s.cfg }

// Destroyed reports whether the session was torn down by a restart.
func (s *Session) Destroyed() bool { return s.destroyed }

// Text returns the last string pushed to a display surface.
func (s *Session) Text(surface Surface) string {
	return s.lastSurfaces[surface]
}

func (s *Session) AddPoints(amount int) {
	if s.destroyed {
		return
	}
	s.points += amount
	s.setText(SurfacePoints, FormatScore(s.points))
}

func (s *Session) AddRings(amount int) {
	if s.destroyed {
		return
	}
	s.rings += amount
	s.setText(SurfaceRings, FormatRings(s.rings))
}

func (s *Session) AddLives(amount int) {
	if s.destroyed {
		return
	}
	s.playSound(SoundExtraLife)
	s.lives += amount
}

// LoseLife takes one life and moves on to the next scene. Running out of
// lives ends the game as Lost.
func (s *Session) LoseLife() {
	if s.destroyed {
		return
	}
	s.lives--
	s.timerOn = false
	if s.lives <= 0 {
		s.outcome = Lost
	}
	s.loadScene(s.cfg.Policy.afterLifeLost(s.outcome))
}

// WinGame ends the game as Won.
func (s *Session) WinGame() {
	if s.destroyed {
		return
	}
	s.outcome = Won
	s.timerOn = false
	s.loadScene(s.cfg.Policy.afterWin())
}

// SceneLoaded must be called by the scene host once a scene is ready. For
// the Game scene player must resolve; a missing player is fatal.
func (s *Session) SceneLoaded(name string, player Player) error {
	if s == nil {
		return ErrNilSession
	}
	s.scene = name
	s.infoPending = false
	s.setText(SurfacePoints, FormatScore(s.points))
	s.setText(SurfaceRings, FormatRings(s.rings))

	switch name {
	case SceneGame:
		if player == nil {
			return ErrPlayerNotFound
		}
		s.player = player
		s.time = s.cfg.TimeLimit
		s.timerOn = true
		s.setText(SurfaceTime, FormatTime(s.time))
		s.playMusic(MusicTheme)
	case SceneInfo:
		s.timerOn = false
		s.player = nil
		s.setText(SurfaceTime, "")
		switch s.outcome {
		case Won:
			s.showWin()
		case Lost:
			s.showGameOver()
		default:
			s.setText(SurfaceTitle, s.cfg.Title)
			s.setText(SurfaceLives, FormatLives(s.lives))
			s.infoPending = true
			s.infoLeft = s.cfg.InfoDelay
		}
	case SceneWin:
		s.timerOn = false
		s.player = nil
		s.setText(SurfaceTime, "")
		s.showWin()
	case SceneGameOver:
		s.timerOn = false
		s.player = nil
		s.setText(SurfaceTime, "")
		s.showGameOver()
	default:
		s.timerOn = false
		s.player = nil
	}
	return nil
}

func (s *Session) showWin() {
	s.setText(SurfaceTitle, "You Win!")
	s.setText(SurfaceLives, "")
}

func (s *Session) showGameOver() {
	s.setText(SurfaceTitle, "Game Over")
	s.setText(SurfaceLives, "")
	s.playSound(SoundGameOver)
}

// Tick advances the level timer and the Info countdown by dt seconds of
// simulation time. The timer kills the player exactly once on expiry.
func (s *Session) Tick(dt float64) {
	if s == nil || s.destroyed || dt <= 0 {
		return
	}

	if s.timerOn {
		s.time -= dt
		if s.time < 0 {
			s.time = 0
		}
		s.setText(SurfaceTime, FormatTime(s.time))
		if s.time <= 0 {
			s.timerOn = false
			if s.player != nil {
				s.player.DieDirectly()
			} else {
				log.Printf("session: timer expired with no player")
			}
		}
	}

	if s.infoPending {
		s.infoLeft -= dt
		if s.infoLeft <= 0 {
			s.infoPending = false
			s.loadScene(SceneGame)
		}
	}
}

func (s *Session) setText(surface Surface, text string) {
	s.lastSurfaces[surface] = text
	if s.display == nil {
		s.debugf("no display for %s", surface)
		return
	}
	s.display.SetText(surface, text)
}

func (s *Session) loadScene(name string) {
	if s.scenes == nil {
		s.debugf("no scene loader for %s", name)
		return
	}
	s.scenes.LoadScene(name)
}

func (s *Session) playSound(key string) {
	if s.audio == nil {
		return
	}
	s.audio.PlaySound(key)
}

func (s *Session) playMusic(key string) {
	if s.audio == nil {
		return
	}
	s.audio.PlayMusic(key)
}

func (s *Session) debugf(format string, args ...any) {
	if s.cfg.Debug {
		log.Printf("session: "+format, args...)
	}
}
