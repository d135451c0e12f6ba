package ecs

import (
	"math"
	"testing"

	"github.com/milk9111/bomberman/ecs/component"
)

func circle(role component.BodyRole) component.PhysicsBody {
	return component.PhysicsBody{Role: role, Radius: 0.47, Active: true}
}

func TestPhysicsWorldMovesDynamicBodies(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	e := CreateEntity(w)
	if err := pw.CreateBody(e, 1, 1, circle(component.RolePlayer)); err != nil {
		t.Fatalf("CreateBody: %v", err)
	}

	pw.SetVelocity(e, 1, 0)
	for i := 0; i < 60; i++ {
		pw.Step(1.0 / 60.0)
	}
	x, y, ok := pw.Position(e)
	if !ok {
		t.Fatalf("expected a position")
	}
	// The body picks up speed during the first step.
	if math.Abs(x-2) > 0.05 || math.Abs(y-1) > 1e-6 {
		t.Fatalf("expected body near (2, 1), got (%f, %f)", x, y)
	}
}

func TestPhysicsWorldStaticBodies(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	e := CreateEntity(w)
	def := component.PhysicsBody{Role: component.RoleSolid, Static: true, Width: 1, Height: 1, Active: true}
	if err := pw.CreateBody(e, 4, 5, def); err != nil {
		t.Fatalf("CreateBody: %v", err)
	}
	if err := pw.CreateBody(e, 4, 5, def); err == nil {
		t.Fatalf("expected duplicate body error")
	}

	x, y, ok := pw.Position(e)
	if !ok || x != 4 || y != 5 {
		t.Fatalf("expected static body at (4, 5), got (%f, %f) ok=%v", x, y, ok)
	}

	pw.SetActive(e, false)
	if pw.Active(e) {
		t.Fatalf("expected body inactive")
	}
	pw.SetActive(e, true)
	if !pw.Active(e) {
		t.Fatalf("expected body active again")
	}

	pw.RemoveBody(e)
	if _, _, ok := pw.Position(e); ok {
		t.Fatalf("expected no position after RemoveBody")
	}
}

func TestPhysicsWorldRejectsEmptyShapes(t *testing.T) {
	pw := NewPhysicsWorld()
	if err := pw.CreateBody(Entity(1), 0, 0, component.PhysicsBody{Role: component.RoleSolid, Static: true}); err == nil {
		t.Fatalf("expected error for shape without size")
	}
}

func TestPhysicsWorldSensorToggle(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	e := CreateEntity(w)
	def := component.PhysicsBody{Role: component.RoleBomb, Static: true, Width: 0.8, Height: 0.8, Sensor: true, Active: true}
	if err := pw.CreateBody(e, 0, 0, def); err != nil {
		t.Fatalf("CreateBody: %v", err)
	}
	if !pw.Sensor(e) {
		t.Fatalf("expected sensor")
	}
	pw.SetSensor(e, false)
	if pw.Sensor(e) {
		t.Fatalf("expected solid after SetSensor(false)")
	}
}

func TestPhysicsWorldSolidShapesBlock(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		sensor  bool
		steps   int
		blocked bool
	}{
		{name: "wall", width: 1, steps: 120, blocked: true},
		{name: "wall pushed every step for long", width: 1, steps: 600, blocked: true},
		{name: "solid bomb", width: 0.8, steps: 120, blocked: true},
		{name: "sensor bomb", width: 0.8, sensor: true, steps: 120, blocked: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			pw := NewPhysicsWorld()
			mover := CreateEntity(w)
			block := CreateEntity(w)
			if err := pw.CreateBody(mover, 0, 0, circle(component.RolePlayer)); err != nil {
				t.Fatal(err)
			}
			def := component.PhysicsBody{Role: component.RoleSolid, Static: true, Width: tc.width, Height: tc.width, Sensor: tc.sensor, Active: true}
			if err := pw.CreateBody(block, 2, 0, def); err != nil {
				t.Fatal(err)
			}

			for i := 0; i < tc.steps; i++ {
				pw.SetVelocity(mover, 3.5, 0)
				pw.Step(1.0 / 60.0)
			}

			x, _, _ := pw.Position(mover)
			if tc.blocked {
				// The circle must stay on its side of the shape and on its own tile.
				limit := 2 - tc.width/2
				if x >= limit || math.Round(x) != 1 {
					t.Fatalf("expected body held left of %f on tile 1, got x=%f", limit, x)
				}
				return
			}
			if x < 3 {
				t.Fatalf("expected body to pass through the sensor, got x=%f", x)
			}
		})
	}
}

func TestPhysicsWorldContacts(t *testing.T) {
	tests := []struct {
		name        string
		enemyActive bool
		wantContact bool
	}{
		{name: "active enemy", enemyActive: true, wantContact: true},
		{name: "inactive enemy", enemyActive: false, wantContact: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			pw := NewPhysicsWorld()
			player := CreateEntity(w)
			enemy := CreateEntity(w)
			if err := pw.CreateBody(player, 0, 0, circle(component.RolePlayer)); err != nil {
				t.Fatal(err)
			}
			if err := pw.CreateBody(enemy, 2, 0, circle(component.RoleEnemy)); err != nil {
				t.Fatal(err)
			}
			pw.SetActive(enemy, tc.enemyActive)

			var got [][2]Entity
			// Registered enemy-first to check the arguments follow the
			// registration order, not the order the engine reports.
			pw.OnContact(component.RoleEnemy, component.RolePlayer, func(a, b Entity) {
				got = append(got, [2]Entity{a, b})
			})

			pw.SetVelocity(player, 2, 0)
			for i := 0; i < 60; i++ {
				pw.Step(1.0 / 60.0)
			}

			if !tc.wantContact {
				if len(got) != 0 {
					t.Fatalf("expected no contact, got %v", got)
				}
				return
			}
			if len(got) == 0 {
				t.Fatalf("expected a contact")
			}
			if got[0][0] != enemy || got[0][1] != player {
				t.Fatalf("expected (enemy, player), got %v", got[0])
			}
		})
	}
}
