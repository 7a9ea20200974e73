package rowan

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// Renderer is the engine's drawing facade: frame clear, rectangle
// primitives, and texture draws against a name-keyed texture cache.
//
// It draws into the frame the engine hands it each Draw call; states
// receive it in their Render hook and never touch ebiten directly.
// A draw against a missing texture is skipped and logged once per name;
// rendering failures are never fatal to the simulation.
type Renderer struct {
	screen   *ebiten.Image
	textures map[string]*ebiten.Image
	warned   map[string]bool
	log      *zap.Logger
}

// NewRenderer creates a renderer with an empty texture cache. A nil logger
// disables diagnostics.
func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		textures: make(map[string]*ebiten.Image),
		warned:   make(map[string]bool),
		log:      log,
	}
}

// begin points the renderer at this frame's target. Called by the engine
// at the start of every Draw.
func (r *Renderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the frame with c.
func (r *Renderer) Clear(c Color) {
	if r.screen == nil {
		return
	}
	r.screen.Fill(c.rgba())
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(rect Rect, c Color) {
	if r.screen == nil {
		return
	}
	vector.DrawFilledRect(r.screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		c.rgba(), false)
}

// StrokeRect draws a rectangle outline with the given line width.
func (r *Renderer) StrokeRect(rect Rect, c Color, lineWidth float64) {
	if r.screen == nil {
		return
	}
	vector.StrokeRect(r.screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		float32(lineWidth), c.rgba(), false)
}

// LoadTexture reads an image file into the cache under name. Reloading a
// name replaces the cached image.
func (r *Renderer) LoadTexture(name, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", name, err)
	}
	r.textures[name] = img
	delete(r.warned, name)
	return nil
}

// RegisterTexture stores an already-created image in the cache under name.
func (r *Renderer) RegisterTexture(name string, img *ebiten.Image) {
	r.textures[name] = img
	delete(r.warned, name)
}

// Texture returns the cached image for name, or nil when not loaded.
func (r *Renderer) Texture(name string) *ebiten.Image {
	return r.textures[name]
}

// DrawTexture draws the cached texture name with its top-left corner at
// (x, y). Missing textures are skipped with a one-time diagnostic.
func (r *Renderer) DrawTexture(name string, x, y float64) {
	img := r.lookup(name)
	if img == nil || r.screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(img, op)
}

// DrawTextureRegion draws the clip rectangle src out of the cached texture
// name with its top-left corner at (x, y).
func (r *Renderer) DrawTextureRegion(name string, src Rect, x, y float64) {
	img := r.lookup(name)
	if img == nil || r.screen == nil {
		return
	}
	sub := img.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(sub, op)
}

// lookup fetches a texture, logging the first miss per name.
func (r *Renderer) lookup(name string) *ebiten.Image {
	img, ok := r.textures[name]
	if !ok && !r.warned[name] {
		r.warned[name] = true
		r.log.Warn("draw of unloaded texture skipped", zap.String("texture", name))
	}
	return img
}
