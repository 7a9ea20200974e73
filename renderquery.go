package rowan

import "github.com/tanagergames/rowan/ecs"

// Renderables returns the entities holding both Transform and Sprite.
// This is a read-only join, not a ticked system: the owning state calls it
// from its Render hook after the engine has cleared the frame.
func Renderables(m *ecs.Manager) []ecs.Entity {
	return ecs.EntitiesWith2[Transform, Sprite](m)
}

// DrawEntities draws every visible renderable entity: textured sprites via
// the renderer's texture cache, untextured ones as solid rectangles.
// States with custom draw ordering iterate Renderables themselves instead.
func DrawEntities(r *Renderer, m *ecs.Manager) {
	for _, e := range Renderables(m) {
		t := ecs.Get[Transform](m, e)
		sp := ecs.Get[Sprite](m, e)
		if t == nil || sp == nil || !sp.Visible {
			continue
		}
		if sp.Texture != "" {
			r.DrawTexture(sp.Texture, t.Position.X(), t.Position.Y())
			continue
		}
		r.FillRect(Rect{
			X:     t.Position.X(),
			Y:     t.Position.Y(),
			Width: sp.Width, Height: sp.Height,
		}, sp.Color)
	}
}
