package session

import "testing"

func TestFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "score zero", got: FormatScore(0), want: "000000"},
		{name: "score padded", got: FormatScore(1234), want: "001234"},
		{name: "score capped", got: FormatScore(1234567), want: "999999"},
		{name: "rings padded", got: FormatRings(7), want: "07"},
		{name: "rings capped", got: FormatRings(150), want: "99"},
		{name: "time under a second", got: FormatTime(0.4), want: "000"},
		{name: "time negative", got: FormatTime(-3), want: "000"},
		{name: "time truncated", got: FormatTime(299.9), want: "299"},
		{name: "time padded", got: FormatTime(42), want: "042"},
		{name: "lives", got: FormatLives(3), want: "x 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("direct"); err != nil || p != PolicyDirect {
		t.Fatalf("expected direct, got %v %v", p, err)
	}
	if p, err := ParsePolicy(""); err != nil || p != PolicyInfo {
		t.Fatalf("expected info default, got %v %v", p, err)
	}
	if _, err := ParsePolicy("sideways"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
