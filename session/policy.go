package session

import "fmt"

// Scene names requested from the scene host.
const (
	SceneInfo     = "Info"
	SceneGame     = "Game"
	SceneWin      = "Win"
	SceneGameOver = "GameOver"
)

// Policy decides which scene follows a lost life or a finished game.
type Policy uint8

const (
	// PolicyInfo routes every transition through the Info scene, which then
	// shows the lives left, "You Win!" or "Game Over".
	PolicyInfo Policy = iota
	// PolicyDirect reloads Game after a lost life and jumps straight to Win
	// or GameOver when the game ends.
	PolicyDirect
)

func (p Policy) String() string {
	if p == PolicyDirect {
		return "direct"
	}
	return "info"
}

// ParsePolicy accepts "info" or "direct".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "info":
		return PolicyInfo, nil
	case "direct":
		return PolicyDirect, nil
	}
	return PolicyInfo, fmt.Errorf("session: unknown scene policy %q", s)
}

// afterLifeLost returns the scene to load once lives have been updated.
func (p Policy) afterLifeLost(outcome Outcome) string {
	if p == PolicyDirect {
		if outcome == Lost {
			return SceneGameOver
		}
		return SceneGame
	}
	return SceneInfo
}

func (p Policy) afterWin() string {
	if p == PolicyDirect {
		return SceneWin
	}
	return SceneInfo
}
