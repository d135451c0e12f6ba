package system

import (
	"testing"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/entity"
	"github.com/milk9111/bomberman/prefabs"
)

type fixture struct {
	w   *ecs.World
	pw  *ecs.PhysicsWorld
	ctx *Context
}

func testTuning() prefabs.Tuning {
	tuning := prefabs.DefaultTuning()
	tuning.Enemy.MoveSpeed = 0
	return tuning
}

// newFixture builds a world with the player standing on playerPos.
func newFixture(t *testing.T, playerPos component.GridPos) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	tuning := testTuning()
	ctx := NewContext(tuning, pw)
	player, err := entity.NewPlayerAt(w, pw, playerPos, tuning.Player, tuning.Session.PlayerDeath)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	ctx.Player = player
	return &fixture{w: w, pw: pw, ctx: ctx}
}

func (f *fixture) hardWall(t *testing.T, x, y int) ecs.Entity {
	t.Helper()
	e, err := entity.NewIndestructibleWall(f.w, f.pw, component.GridPos{X: x, Y: y})
	if err != nil {
		t.Fatalf("NewIndestructibleWall: %v", err)
	}
	return e
}

func (f *fixture) softWall(t *testing.T, x, y int) ecs.Entity {
	t.Helper()
	e, err := entity.NewDestructibleWall(f.w, f.pw, component.GridPos{X: x, Y: y}, f.ctx.Tuning.Session.WallTeardown)
	if err != nil {
		t.Fatalf("NewDestructibleWall: %v", err)
	}
	return e
}

func (f *fixture) enemy(t *testing.T, x, y int) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemyAt(f.w, f.pw, component.GridPos{X: x, Y: y}, f.ctx.Tuning.Enemy, f.ctx.Tuning.Session.EnemyDemise)
	if err != nil {
		t.Fatalf("NewEnemyAt: %v", err)
	}
	return e
}

func (f *fixture) state(t *testing.T, e ecs.Entity) component.DestructState {
	t.Helper()
	d, ok := ecs.Get(f.w, e, component.DestructibleComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no destructible", e)
	}
	return d.State
}

func (f *fixture) player(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(f.w, f.ctx.Player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("no player")
	}
	return p
}

func (f *fixture) segments() map[component.GridPos]component.ExplosionSegment {
	out := make(map[component.GridPos]component.ExplosionSegment)
	ecs.ForEach(f.w, component.ExplosionSegmentComponent.Kind(), func(_ ecs.Entity, s *component.ExplosionSegment) {
		out[s.Pos] = *s
	})
	return out
}
