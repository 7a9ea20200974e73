package rowan

import "github.com/tanagergames/rowan/ecs"

// CollisionInfo describes one pairwise AABB overlap for a single tick.
// OverlapX and OverlapY are the penetration depths on each axis, both > 0.
// The value is transient; it is not stored anywhere after the callback
// returns.
type CollisionInfo struct {
	A, B               ecs.Entity
	OverlapX, OverlapY float64
}

// CollisionFunc receives one call per overlapping pair per tick.
type CollisionFunc func(info CollisionInfo)

// CollisionSystem tests every pair of entities holding Transform+Collider
// for axis-aligned overlap. The pair scan is O(n²); at the entity counts
// this engine targets that beats maintaining a spatial index.
//
// Pairs are enumerated in the collider store's dense order with A before B,
// so the callback order is deterministic within a run.
type CollisionSystem struct {
	callback CollisionFunc
	audio    *AudioSystem
}

// NewCollisionSystem creates a collision system. audio may be nil; when
// set, overlapping entities whose AudioSource has PlayOnCollision fire
// their sound through it.
func NewCollisionSystem(audio *AudioSystem) *CollisionSystem {
	return &CollisionSystem{audio: audio}
}

// OnCollision registers the callback invoked once per overlapping pair per
// tick. The system supports a single callback; passing nil clears it.
func (s *CollisionSystem) OnCollision(fn CollisionFunc) {
	s.callback = fn
}

// Update scans all collider pairs and reports overlaps.
func (s *CollisionSystem) Update(m *ecs.Manager, dt float64) {
	entities := ecs.EntitiesWith2[Transform, Collider](m)
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			a, b := entities[i], entities[j]
			overlapX, overlapY := aabbOverlap(m, a, b)
			if overlapX <= 0 || overlapY <= 0 {
				continue
			}
			if s.callback != nil {
				s.callback(CollisionInfo{A: a, B: b, OverlapX: overlapX, OverlapY: overlapY})
			}
			s.playCollisionSounds(m, a, b)
		}
	}
}

// aabbOverlap returns the per-axis penetration depths for a and b.
// Non-positive values mean no overlap on that axis.
func aabbOverlap(m *ecs.Manager, a, b ecs.Entity) (float64, float64) {
	ta := ecs.Get[Transform](m, a)
	ca := ecs.Get[Collider](m, a)
	tb := ecs.Get[Transform](m, b)
	cb := ecs.Get[Collider](m, b)
	if ta == nil || ca == nil || tb == nil || cb == nil {
		return 0, 0
	}
	overlapX := min(ta.Position.X()+ca.Width, tb.Position.X()+cb.Width) -
		max(ta.Position.X(), tb.Position.X())
	overlapY := min(ta.Position.Y()+ca.Height, tb.Position.Y()+cb.Height) -
		max(ta.Position.Y(), tb.Position.Y())
	return overlapX, overlapY
}

// playCollisionSounds fires PlayOnCollision sources on both entities.
func (s *CollisionSystem) playCollisionSounds(m *ecs.Manager, a, b ecs.Entity) {
	if s.audio == nil {
		return
	}
	for _, e := range [2]ecs.Entity{a, b} {
		if src := ecs.Get[AudioSource](m, e); src != nil && src.PlayOnCollision {
			s.audio.PlayEntitySound(m, e)
		}
	}
}
