package ecs

// Entity is a generational handle identifying a bundle of components.
// It owns no data itself; it is a key into the manager's component stores.
// The zero Entity is never valid.
type Entity struct {
	ID      uint32
	Version uint32
}

// registry allocates and recycles entity ids. Each id slot carries a
// version counter; destroying an entity bumps the slot's version so any
// handle still holding the old version fails validity checks.
type registry struct {
	versions []uint32
	alive    []bool
	freeIDs  []uint32
	count    int
}

// create allocates a fresh entity, reusing a freed id slot if one exists.
func (r *registry) create() Entity {
	r.count++
	if n := len(r.freeIDs); n > 0 {
		id := r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.alive[id] = true
		return Entity{ID: id, Version: r.versions[id]}
	}
	id := uint32(len(r.versions))
	r.versions = append(r.versions, 1)
	r.alive = append(r.alive, true)
	return Entity{ID: id, Version: 1}
}

// destroy releases the entity's id slot. Returns false if the handle was
// already stale, in which case nothing changes (destroy is idempotent).
func (r *registry) destroy(e Entity) bool {
	if !r.valid(e) {
		return false
	}
	r.alive[e.ID] = false
	r.versions[e.ID]++
	r.freeIDs = append(r.freeIDs, e.ID)
	r.count--
	return true
}

// valid reports whether e refers to a currently allocated entity.
func (r *registry) valid(e Entity) bool {
	return e.ID < uint32(len(r.versions)) &&
		r.alive[e.ID] &&
		r.versions[e.ID] == e.Version
}
