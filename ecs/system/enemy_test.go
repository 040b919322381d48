package system

import (
	"testing"

	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

func TestEnemyDeathFreezesThenReleases(t *testing.T) {
	w := newTestWorld()
	enemy := addEnemy(w, component.EnemyPatrolling, nil)
	body := bodyOf(t, w, enemy)
	tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())

	if body.FreezeY || body.Layer != component.LayerDefault {
		t.Fatalf("expected a free body on the default layer, got freeze=%v layer=%s", body.FreezeY, body.Layer)
	}
	if !KillEnemy(w, enemy) {
		t.Fatalf("expected kill to start")
	}
	if !body.FreezeY || body.FreezeAtY != tr.Y {
		t.Fatalf("expected body pinned at y=%v, got freeze=%v at %v", tr.Y, body.FreezeY, body.FreezeAtY)
	}
	if body.Layer != component.LayerDeath {
		t.Fatalf("expected death layer, got %s", body.Layer)
	}

	step(w, 0.1, 5)
	if !body.FreezeY {
		t.Fatalf("expected body to stay pinned during the death freeze")
	}

	step(w, 0.1, 6)
	if body.FreezeY {
		t.Fatalf("expected body released after the death freeze")
	}
	if !ecs.IsAlive(w, enemy) {
		t.Fatalf("expected enemy to linger until removal")
	}
	if body.Layer != component.LayerDeath {
		t.Fatalf("expected enemy to stay on the death layer while falling, got %s", body.Layer)
	}

	step(w, 0.1, 12)
	if ecs.IsAlive(w, enemy) {
		t.Fatalf("expected enemy destroyed after removal delay")
	}
}

func TestRemoveEnemySkipsDeathSequence(t *testing.T) {
	w := newTestWorld()
	enemy := addEnemy(w, component.EnemyPatrolling, nil)

	if !RemoveEnemy(w, enemy) {
		t.Fatalf("expected remove to succeed")
	}
	if ecs.IsAlive(w, enemy) {
		t.Fatalf("expected enemy destroyed immediately")
	}
	if KillEnemy(w, enemy) {
		t.Fatalf("expected removed enemy to ignore kill")
	}
}
