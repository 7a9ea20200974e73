package ecs

import "reflect"

// Manager owns the entity registry, one component store per component
// type, and the ordered system list for one scene or game state.
//
// All failure modes are soft: operations on invalid entities are no-ops
// and lookups return nil. Callers must nil-check.
type Manager struct {
	reg     registry
	stores  map[reflect.Type]anyStore
	systems []System
}

// NewManager creates an empty entity manager.
func NewManager() *Manager {
	return &Manager{stores: make(map[reflect.Type]anyStore)}
}

// CreateEntity allocates a fresh entity with no components.
func (m *Manager) CreateEntity() Entity {
	return m.reg.create()
}

// DestroyEntity removes the entity's components from every store and
// invalidates the handle. Destroying an already-invalid entity is a no-op.
func (m *Manager) DestroyEntity(e Entity) {
	if !m.reg.destroy(e) {
		return
	}
	for _, s := range m.stores {
		s.removeEntity(e)
	}
}

// IsValid reports whether e is currently allocated with a matching version.
func (m *Manager) IsValid(e Entity) bool {
	return m.reg.valid(e)
}

// EntityCount returns the number of live entities.
func (m *Manager) EntityCount() int {
	return m.reg.count
}

// Update runs every registered system once, in registration order.
// dt is the elapsed time in seconds. A system that mutates components a
// later system reads sees the mutation the same tick.
func (m *Manager) Update(dt float64) {
	for _, s := range m.systems {
		s.Update(m, dt)
	}
}

// typeOf returns the reflect key for component type T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// StoreOf returns the manager's store for component type T, creating it on
// first use. Systems may cache the result; store pointers stay valid for
// the manager's lifetime.
func StoreOf[T any](m *Manager) *Store[T] {
	t := typeOf[T]()
	if s, ok := m.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	m.stores[t] = s
	return s
}

// Add attaches component v to e, overwriting any existing component of the
// same type, and returns a pointer to the stored value. Returns nil when e
// is invalid.
func Add[T any](m *Manager, e Entity, v T) *T {
	if !m.reg.valid(e) {
		return nil
	}
	return StoreOf[T](m).Set(e, v)
}

// Get returns e's component of type T, or nil when absent or e is invalid.
func Get[T any](m *Manager, e Entity) *T {
	return StoreOf[T](m).Get(e)
}

// Has reports whether e has a component of type T.
func Has[T any](m *Manager, e Entity) bool {
	return StoreOf[T](m).Has(e)
}

// Remove detaches e's component of type T. No-op when absent.
func Remove[T any](m *Manager, e Entity) {
	StoreOf[T](m).Remove(e)
}

// EntitiesWith1 returns the entities holding a component of type A, in the
// store's dense order. The order is stable for the duration of the call.
func EntitiesWith1[A any](m *Manager) []Entity {
	src := StoreOf[A](m).Entities()
	out := make([]Entity, len(src))
	copy(out, src)
	return out
}

// EntitiesWith2 returns the entities holding components of both A and B.
// Iteration starts from the smaller store so the cost is proportional to
// the rarer component.
func EntitiesWith2[A, B any](m *Manager) []Entity {
	a, b := StoreOf[A](m), StoreOf[B](m)
	if b.Len() < a.Len() {
		return joinInto(b.Entities(), a)
	}
	return joinInto(a.Entities(), b)
}

// EntitiesWith3 returns the entities holding components of A, B, and C.
func EntitiesWith3[A, B, C any](m *Manager) []Entity {
	out := EntitiesWith2[A, B](m)
	c := StoreOf[C](m)
	n := 0
	for _, e := range out {
		if c.Has(e) {
			out[n] = e
			n++
		}
	}
	return out[:n]
}

// joinInto filters candidates down to those present in other.
func joinInto(candidates []Entity, other anyStore) []Entity {
	out := make([]Entity, 0, len(candidates))
	for _, e := range candidates {
		if other.hasEntity(e) {
			out = append(out, e)
		}
	}
	return out
}
