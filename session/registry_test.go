package session

import "testing"

func TestRegistryFirstWins(t *testing.T) {
	var r Registry
	first := New(DefaultConfig(), nil, nil, nil)
	second := New(DefaultConfig(), nil, nil, nil)

	got, installed := r.Acquire(first)
	if !installed || got != first {
		t.Fatalf("expected first session installed")
	}

	got, installed = r.Acquire(second)
	if installed || got != first {
		t.Fatalf("expected first session to persist")
	}
	if !second.Destroyed() {
		t.Fatalf("expected duplicate session destroyed")
	}

	second.AddPoints(10)
	if second.Points() != 0 {
		t.Fatalf("expected destroyed session to ignore reports")
	}
}

func TestRegistryRestart(t *testing.T) {
	var r Registry
	sc := &recordingScenes{}
	first := New(DefaultConfig(), nil, sc, nil)
	r.Acquire(first)
	first.AddPoints(500)

	r.Restart()

	if r.Current() != nil {
		t.Fatalf("expected no live session after restart")
	}
	if sc.last() != SceneInfo {
		t.Fatalf("expected Info after restart, got %v", sc.loaded)
	}

	fresh := New(DefaultConfig(), nil, nil, nil)
	got, installed := r.Acquire(fresh)
	if !installed || got.Points() != 0 {
		t.Fatalf("expected a fresh session after restart")
	}
}
