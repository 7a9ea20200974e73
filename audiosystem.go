package rowan

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanagergames/rowan/ecs"
)

// SoundPlayer is the playback capability the audio system needs.
// *AudioPlayer satisfies it; tests substitute a fake.
type SoundPlayer interface {
	Play(name string, volume float64, loops int) bool
}

// AudioSystem drives AudioSource components: it fires PlayOnCreate sounds
// exactly once per entity and computes distance-attenuated volumes for 3D
// sources relative to a listener position.
type AudioSystem struct {
	player    SoundPlayer
	listener  mgl64.Vec2
	triggered map[ecs.Entity]struct{}
}

// NewAudioSystem creates an audio system playing through player.
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{
		player:    player,
		triggered: make(map[ecs.Entity]struct{}),
	}
}

// SetListener positions the 2D audio listener, typically on the player
// character or camera.
func (s *AudioSystem) SetListener(pos mgl64.Vec2) {
	s.listener = pos
}

// Listener returns the current listener position.
func (s *AudioSystem) Listener() mgl64.Vec2 {
	return s.listener
}

// Update fires PlayOnCreate sounds for sources seen for the first time.
// The triggered set is keyed by the full generational handle, so a
// recycled entity id fires again for its new entity.
func (s *AudioSystem) Update(m *ecs.Manager, dt float64) {
	for _, e := range ecs.EntitiesWith1[AudioSource](m) {
		src := ecs.Get[AudioSource](m, e)
		if src == nil || !src.PlayOnCreate {
			continue
		}
		if _, done := s.triggered[e]; done {
			continue
		}
		s.triggered[e] = struct{}{}
		s.PlayEntitySound(m, e)
	}
	// Drop bookkeeping for entities that no longer exist.
	for e := range s.triggered {
		if !m.IsValid(e) {
			delete(s.triggered, e)
		}
	}
}

// PlayEntitySound plays the entity's configured sound at its computed
// volume. For 3D sources the volume falls off linearly with the distance
// between the entity's Transform and the listener, reaching zero at
// MaxDistance and never exceeding the base volume. Returns false when the
// entity has no AudioSource, the sound name is empty, or playback fails.
func (s *AudioSystem) PlayEntitySound(m *ecs.Manager, e ecs.Entity) bool {
	src := ecs.Get[AudioSource](m, e)
	if src == nil || src.Sound == "" || s.player == nil {
		return false
	}
	volume := src.Volume
	if src.Is3D {
		if t := ecs.Get[Transform](m, e); t != nil {
			dist := t.Position.Sub(s.listener).Len()
			volume = attenuate(src.Volume, dist, src.MaxDistance)
		}
	}
	loops := 0
	if src.Looping {
		loops = -1
	}
	return s.player.Play(src.Sound, volume, loops)
}

// attenuate scales base linearly to zero at maxDistance, clamped to
// [0, base]. A non-positive maxDistance disables attenuation.
func attenuate(base, distance, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return base
	}
	v := base * (1 - distance/maxDistance)
	if v < 0 {
		return 0
	}
	if v > base {
		return base
	}
	return v
}
