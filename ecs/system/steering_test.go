package system

import (
	"math"
	"testing"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/entity"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOrbitVelocity(t *testing.T) {
	vx, vy := OrbitVelocity(0, 2)
	if !near(vx, 0) || !near(vy, 2) {
		t.Fatalf("expected (0, 2), got (%f, %f)", vx, vy)
	}
	vx, vy = OrbitVelocity(math.Pi/2, 2)
	if !near(vx, 2) || !near(vy, 0) {
		t.Fatalf("expected (2, 0), got (%f, %f)", vx, vy)
	}
}

func TestScriptSteering(t *testing.T) {
	tests := []struct {
		name   string
		script string
		enemy  component.Enemy
		x, y   float64
		px, py float64
		wantOK bool
		vx, vy float64
	}{
		{
			name:   "orbit",
			script: "orbit.tengo",
			enemy:  component.Enemy{Elapsed: math.Pi / 2, Speed: 2},
			wantOK: true,
			vx:     2,
			vy:     0,
		},
		{
			name:   "chase horizontal",
			script: "chase.tengo",
			enemy:  component.Enemy{Speed: 2},
			px:     3,
			py:     1,
			wantOK: true,
			vx:     2,
		},
		{
			name:   "chase vertical",
			script: "chase.tengo",
			enemy:  component.Enemy{Speed: 1.5},
			x:      4,
			y:      6,
			px:     4,
			py:     1,
			wantOK: true,
			vy:     -1.5,
		},
		{
			name:   "missing script",
			script: "missing.tengo",
			enemy:  component.Enemy{Speed: 2},
			wantOK: false,
		},
	}

	s := NewScriptSteering()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enemy := tc.enemy
			vx, vy, ok := s.Velocity(tc.script, &enemy, tc.x, tc.y, tc.px, tc.py)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if !ok {
				return
			}
			if !near(vx, tc.vx) || !near(vy, tc.vy) {
				t.Fatalf("expected (%f, %f), got (%f, %f)", tc.vx, tc.vy, vx, vy)
			}
		})
	}
}

func TestPlayerMovesWithDirection(t *testing.T) {
	f := newFixture(t, component.GridPos{X: 1, Y: 1})
	f.player(t).DirX = 1
	physics := NewPhysicsSystem(f.ctx)
	sched := ecs.NewScheduler(NewSteeringSystem(f.ctx, NewScriptSteering()), physics)

	sched.Update(f.w, 0.5)

	tr, _ := ecs.Get(f.w, f.ctx.Player, component.TransformComponent.Kind())
	stepped := 0.5 - physics.Accumulator()
	speed := f.ctx.Tuning.Player.MoveSpeed
	// The body may take one step to pick up speed.
	lo := 1 + speed*(stepped-f.ctx.Tuning.Session.PhysicsStep) - 1e-3
	hi := 1 + speed*stepped + 1e-3
	if tr.X < lo || tr.X > hi || math.Abs(tr.Y-1) > 1e-6 {
		t.Fatalf("expected player x in [%f, %f] at y=1, got (%f, %f)", lo, hi, tr.X, tr.Y)
	}
}

func TestEnemyContactKillsPlayer(t *testing.T) {
	tests := []struct {
		name      string
		destroyed bool
		wantDead  bool
	}{
		{name: "live enemy", wantDead: true},
		{name: "destroyed enemy", destroyed: true, wantDead: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, component.GridPos{X: 1, Y: 1})
			enemy := f.enemy(t, 3, 1)
			if tc.destroyed {
				d, _ := ecs.Get(f.w, enemy, component.DestructibleComponent.Kind())
				d.Strike()
				f.pw.SetActive(enemy, false)
			}
			RegisterContactPolicy(f.w, f.ctx)
			f.player(t).DirX = 1
			sched := ecs.NewScheduler(NewSteeringSystem(f.ctx, NewScriptSteering()), NewPhysicsSystem(f.ctx))

			for i := 0; i < 10; i++ {
				sched.Update(f.w, 0.1)
			}
			if f.player(t).Dead != tc.wantDead {
				t.Fatalf("expected dead=%v", tc.wantDead)
			}
		})
	}
}

func TestTimers(t *testing.T) {
	f := newFixture(t, component.GridPos{X: 1, Y: 1})
	wall := f.softWall(t, 3, 3)
	d, _ := ecs.Get(f.w, wall, component.DestructibleComponent.Kind())
	d.Strike()
	seg, err := entity.NewExplosionSegment(f.w, component.GridPos{X: 5, Y: 5}, 0, 0, false, f.ctx.Tuning.Session.ExplosionSeconds)
	if err != nil {
		t.Fatal(err)
	}
	timers := NewTimerSystem(f.ctx)

	timers.Update(f.w, 0.25)
	if d.State != component.Destroying || !f.pw.Active(wall) {
		t.Fatalf("teardown finished too early")
	}
	timers.Update(f.w, 0.25)
	if d.State != component.Removed {
		t.Fatalf("expected removed after teardown, got %s", d.State)
	}
	if f.pw.Active(wall) {
		t.Fatalf("expected wall collider off after teardown")
	}
	if ecs.IsAlive(f.w, seg) {
		t.Fatalf("expected explosion segment expired")
	}
}
