package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNoPlayer = errors.New("level has no player")

// Level is a hand-authored stage. Units are tiles, Y grows downward and
// every position is the centre of the entity.
type Level struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity places one prefab. W and H, when set, stretch it to a rectangle
// (ground runs, dead zones). Props override prefab components by name.
type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	W     float64                `json:"w,omitempty"`
	H     float64                `json:"h,omitempty"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Validate checks the invariants the game relies on.
func (l *Level) Validate() error {
	players := 0
	for i, e := range l.Entities {
		if e.Type == "" {
			return fmt.Errorf("entity %d: missing type", i)
		}
		if e.W < 0 || e.H < 0 {
			return fmt.Errorf("entity %d (%s): negative size", i, e.Type)
		}
		if e.Type == "player" {
			players++
		}
	}
	switch {
	case players == 0:
		return ErrNoPlayer
	case players > 1:
		return fmt.Errorf("level has %d players", players)
	}
	return nil
}

// Load reads name from the levels directory on disk when present, otherwise
// from the embedded copy.
func Load(name string) (*Level, error) {
	if data, err := os.ReadFile(filepath.Join("levels", name)); err == nil {
		return parse(data)
	}
	return LoadLevelFromFS(name)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("validate level %q: %w", lvl.Name, err)
	}
	return &lvl, nil
}
