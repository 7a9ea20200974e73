package rowan

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanagergames/rowan/ecs"
)

const epsilon = 1e-9

func TestMovementIntegratesVelocity(t *testing.T) {
	m := ecs.NewManager()
	ecs.AddSystem(m, NewMovementSystem())

	e := m.CreateEntity()
	ecs.Add(m, e, Transform{})
	ecs.Add(m, e, Velocity{Linear: mgl64.Vec2{10, -5}})

	m.Update(0.1)

	pos := ecs.Get[Transform](m, e).Position
	if math.Abs(pos.X()-1.0) > epsilon || math.Abs(pos.Y()-(-0.5)) > epsilon {
		t.Errorf("position = (%v, %v), want (1.0, -0.5)", pos.X(), pos.Y())
	}
}

func TestMovementAccumulatesAcrossTicks(t *testing.T) {
	m := ecs.NewManager()
	ecs.AddSystem(m, NewMovementSystem())

	e := m.CreateEntity()
	ecs.Add(m, e, Transform{Position: mgl64.Vec2{100, 100}})
	ecs.Add(m, e, Velocity{Linear: mgl64.Vec2{60, 0}})

	for i := 0; i < 60; i++ {
		m.Update(1.0 / 60.0)
	}

	pos := ecs.Get[Transform](m, e).Position
	if math.Abs(pos.X()-160) > 1e-6 {
		t.Errorf("X = %v, want 160", pos.X())
	}
}

func TestMovementIgnoresEntitiesWithoutVelocity(t *testing.T) {
	m := ecs.NewManager()
	ecs.AddSystem(m, NewMovementSystem())

	stationary := m.CreateEntity()
	ecs.Add(m, stationary, Transform{Position: mgl64.Vec2{5, 5}})

	m.Update(1.0)

	pos := ecs.Get[Transform](m, stationary).Position
	if pos != (mgl64.Vec2{5, 5}) {
		t.Errorf("position = %v, want (5, 5)", pos)
	}
}
