package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("level1.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Name == "" || lvl.Width <= 0 {
		t.Fatalf("expected named level with a width, got %+v", lvl)
	}
	counts := map[string]int{}
	for _, e := range lvl.Entities {
		counts[e.Type]++
	}
	if counts["player"] != 1 {
		t.Fatalf("expected one player, got %d", counts["player"])
	}
	if counts["end_flag"] == 0 || counts["dead_zone"] == 0 {
		t.Fatalf("expected an end flag and a dead zone, got %v", counts)
	}
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		wantErr bool
		is      error
	}{
		{name: "ok", level: Level{Entities: []Entity{{Type: "player"}, {Type: "ground", W: 3, H: 1}}}},
		{name: "no player", level: Level{Entities: []Entity{{Type: "ground"}}}, wantErr: true, is: ErrNoPlayer},
		{name: "two players", level: Level{Entities: []Entity{{Type: "player"}, {Type: "player"}}}, wantErr: true},
		{name: "missing type", level: Level{Entities: []Entity{{Type: "player"}, {}}}, wantErr: true},
		{name: "negative size", level: Level{Entities: []Entity{{Type: "player"}, {Type: "ground", W: -1}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestParseRejectsBadJSON(t *testing.T) {
	if _, err := parse([]byte("{")); err == nil {
		t.Fatalf("expected error for truncated json")
	}
}
