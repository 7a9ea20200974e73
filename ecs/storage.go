package ecs

// anyStore is the type-erased view of a Store the Manager uses to clean up
// after a destroyed entity and to join queries without knowing component
// types.
type anyStore interface {
	removeEntity(e Entity)
	hasEntity(e Entity) bool
}

// Store is a sparse-set mapping from Entity to one component of type T.
// At most one component of a given type exists per entity; inserting a
// second one overwrites the first.
//
// Dense values are boxed, so the pointer returned by Set and Get stays
// valid until that entity's component is removed or the entity destroyed,
// even when removals of other entities compact the dense arrays.
type Store[T any] struct {
	entities []Entity
	values   []*T
	sparse   []int // entity id -> dense index, -1 when absent
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// index returns the dense index for e, or -1 when e has no component here.
// The stored entity must match on version too, so stale handles miss.
func (s *Store[T]) index(e Entity) int {
	if e.ID >= uint32(len(s.sparse)) {
		return -1
	}
	idx := s.sparse[e.ID]
	if idx < 0 || s.entities[idx] != e {
		return -1
	}
	return idx
}

// Set inserts or overwrites the component for e and returns a pointer to
// the stored value. The pointer stays valid until the component is removed
// or the entity destroyed.
func (s *Store[T]) Set(e Entity, v T) *T {
	if idx := s.index(e); idx >= 0 {
		*s.values[idx] = v
		return s.values[idx]
	}
	for uint32(len(s.sparse)) <= e.ID {
		s.sparse = append(s.sparse, -1)
	}
	boxed := new(T)
	*boxed = v
	s.sparse[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, boxed)
	return boxed
}

// Get returns the component for e, or nil when absent. An entity with no
// such component yields nil, never a zero value treated as present.
func (s *Store[T]) Get(e Entity) *T {
	if idx := s.index(e); idx >= 0 {
		return s.values[idx]
	}
	return nil
}

// Has reports whether e has a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	return s.index(e) >= 0
}

// Remove deletes the component for e. No-op when absent.
// Swap-remove keeps the dense arrays packed.
func (s *Store[T]) Remove(e Entity) {
	idx := s.index(e)
	if idx < 0 {
		return
	}
	last := len(s.entities) - 1
	lastEntity := s.entities[last]

	s.entities[idx] = lastEntity
	s.values[idx] = s.values[last]
	s.sparse[lastEntity.ID] = idx

	s.entities = s.entities[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.ID] = -1
}

// Entities returns the dense entity list. The returned slice MUST NOT be
// mutated; its order is stable between mutations of the store.
func (s *Store[T]) Entities() []Entity {
	return s.entities
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// anyStore implementation.

func (s *Store[T]) removeEntity(e Entity)   { s.Remove(e) }
func (s *Store[T]) hasEntity(e Entity) bool { return s.Has(e) }
