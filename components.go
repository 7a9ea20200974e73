package rowan

import "github.com/go-gl/mathgl/mgl64"

// The stock components. Components are plain data: no behavior, no
// references to other components. At most one component of each type
// exists per entity; re-adding overwrites.

// Transform is an entity's position in world space.
type Transform struct {
	Position mgl64.Vec2
}

// Velocity is an entity's linear velocity in units per second.
// The movement system integrates it into Transform each tick.
type Velocity struct {
	Linear mgl64.Vec2
}

// Sprite makes an entity renderable. When Texture is empty the entity is
// drawn as a solid rectangle of Color; otherwise the named texture from
// the renderer's cache is used.
type Sprite struct {
	Width, Height float64
	Color         Color
	Texture       string
	Visible       bool
}

// Collider gives an entity an axis-aligned bounding box, anchored at the
// Transform position (top-left corner), for the collision system.
type Collider struct {
	Width, Height float64
}

// AudioSource attaches a named sound to an entity.
//
// PlayOnCreate fires the sound once, the first tick the audio system sees
// the component. PlayOnCollision fires it whenever the collision system
// reports an overlap involving the entity. When Is3D is set the playback
// volume falls off linearly with distance from the audio listener,
// reaching zero at MaxDistance.
type AudioSource struct {
	Sound           string
	Volume          float64
	Looping         bool
	PlayOnCreate    bool
	PlayOnCollision bool
	Is3D            bool
	MaxDistance     float64
}
