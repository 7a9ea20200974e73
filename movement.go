package rowan

import "github.com/tanagergames/rowan/ecs"

// MovementSystem integrates Velocity into Transform:
// position += velocity * dt for every entity holding both.
//
// Register it before CollisionSystem so collision tests this tick's
// positions.
type MovementSystem struct{}

// NewMovementSystem creates the movement system.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update advances every moving entity by dt seconds.
func (s *MovementSystem) Update(m *ecs.Manager, dt float64) {
	for _, e := range ecs.EntitiesWith2[Transform, Velocity](m) {
		t := ecs.Get[Transform](m, e)
		v := ecs.Get[Velocity](m, e)
		if t == nil || v == nil {
			continue
		}
		t.Position = t.Position.Add(v.Linear.Mul(dt))
	}
}
