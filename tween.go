package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tanagergames/rowan/ecs"
)

// TransformTween animates an entity's Transform position toward a target
// over a fixed duration with an easing function. If the entity is
// destroyed mid-flight the tween stops immediately.
type TransformTween struct {
	x, y   *gween.Tween
	entity ecs.Entity
	Done   bool
}

// TweenPosition creates a tween moving e's Transform to (toX, toY) over
// duration seconds. Returns nil when e has no Transform.
func TweenPosition(m *ecs.Manager, e ecs.Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TransformTween {
	t := ecs.Get[Transform](m, e)
	if t == nil {
		return nil
	}
	return &TransformTween{
		x:      gween.New(float32(t.Position.X()), float32(toX), duration, fn),
		y:      gween.New(float32(t.Position.Y()), float32(toY), duration, fn),
		entity: e,
	}
}

// Update advances the tween by dt seconds and writes the interpolated
// position to the entity's Transform.
func (g *TransformTween) Update(m *ecs.Manager, dt float64) {
	if g.Done {
		return
	}
	t := ecs.Get[Transform](m, g.entity)
	if t == nil || !m.IsValid(g.entity) {
		g.Done = true
		return
	}
	x, doneX := g.x.Update(float32(dt))
	y, doneY := g.y.Update(float32(dt))
	t.Position[0] = float64(x)
	t.Position[1] = float64(y)
	g.Done = doneX && doneY
}

// TweenSystem runs active TransformTweens each tick and drops finished
// ones. It is a convenience; callers holding a tween themselves can call
// its Update directly, exactly like any other per-frame animation.
type TweenSystem struct {
	active []*TransformTween
}

// NewTweenSystem creates an empty tween system.
func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

// Add starts tracking a tween. nil tweens are ignored.
func (s *TweenSystem) Add(t *TransformTween) {
	if t != nil {
		s.active = append(s.active, t)
	}
}

// Active returns the number of running tweens.
func (s *TweenSystem) Active() int {
	return len(s.active)
}

// Update advances every active tween and compacts out finished ones.
func (s *TweenSystem) Update(m *ecs.Manager, dt float64) {
	n := 0
	for _, t := range s.active {
		t.Update(m, dt)
		if !t.Done {
			s.active[n] = t
			n++
		}
	}
	for i := n; i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = s.active[:n]
}
