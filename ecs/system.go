package ecs

// System is a unit of per-tick behavior. Systems are registered on a
// Manager and run once per Update in registration order. A system
// typically filters entities with the EntitiesWith helpers and mutates
// their components.
type System interface {
	Update(m *Manager, dt float64)
}

// AddSystem registers s to run on every Manager.Update, after all
// previously registered systems. It returns s so call sites can keep the
// concrete reference:
//
//	collision := ecs.AddSystem(m, NewCollisionSystem())
//
// Registration order is a contract: later systems observe earlier systems'
// writes within the same tick, so e.g. movement is registered before
// collision.
func AddSystem[S System](m *Manager, s S) S {
	m.systems = append(m.systems, s)
	return s
}

// SystemOf returns the first registered system of concrete type S, or the
// zero value and false when no such system was added.
func SystemOf[S System](m *Manager) (S, bool) {
	for _, s := range m.systems {
		if typed, ok := s.(S); ok {
			return typed, true
		}
	}
	var zero S
	return zero, false
}

// Systems returns the registered systems in registration order.
// The returned slice MUST NOT be mutated.
func (m *Manager) Systems() []System {
	return m.systems
}
