// Package ecs is rowan's entity-component-system core.
//
// A [Manager] owns an entity registry, one typed component store per
// component type, and an ordered list of [System] values. Entities are
// generational handles: destroying an entity bumps its version so stale
// copies of the handle fail [Manager.IsValid] instead of silently aliasing
// a recycled id.
//
// Components are plain data structs. Attach, read, and query them through
// the package-level generic functions:
//
//	e := m.CreateEntity()
//	ecs.Add(m, e, Position{X: 10})
//	if pos := ecs.Get[Position](m, e); pos != nil {
//		pos.X += 1
//	}
//	for _, e := range ecs.EntitiesWith2[Position, Velocity](m) {
//		// ...
//	}
//
// Systems implement per-tick behavior and run in registration order on
// every [Manager.Update] call. Registration order is part of the contract:
// a system that writes components another system reads later the same tick
// sees those writes (there is no snapshotting).
//
// The package is single-threaded by design; a Manager must only be touched
// by the goroutine driving the game loop.
package ecs
