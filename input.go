package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// QuitAction is the binding name the engine polls for quit requests.
const QuitAction = "quit"

// Input is the engine's keyboard facade. It answers per-key pressed,
// just-pressed, and just-released queries and maps named actions
// ("move_left", "jump", "quit") to keys through a binding table, so
// gameplay code and config files never mention scancodes.
//
// State is refreshed once per tick before the active state runs.
type Input struct {
	bindings map[string]ebiten.Key
	quit     bool
}

// NewInput creates an input facade with an empty binding table.
func NewInput() *Input {
	return &Input{bindings: make(map[string]ebiten.Key)}
}

// refresh latches per-tick input state. Called by the engine at the top of
// every tick, before systems run.
func (in *Input) refresh() {
	if key, ok := in.bindings[QuitAction]; ok && inpututil.IsKeyJustPressed(key) {
		in.quit = true
	}
}

// QuitRequested reports whether the quit action fired. The flag stays set
// once raised; the engine checks it once per loop iteration.
func (in *Input) QuitRequested() bool {
	return in.quit
}

// Pressed reports whether key is currently held.
func (in *Input) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// JustPressed reports whether key went down this tick.
func (in *Input) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// JustReleased reports whether key went up this tick.
func (in *Input) JustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

// Bind maps an action name to a key given by its textual name ("Left",
// "Space", "W"). Rebinding an action replaces the previous key.
func (in *Input) Bind(action, keyName string) error {
	key, err := KeyFromName(keyName)
	if err != nil {
		return fmt.Errorf("bind %q: %w", action, err)
	}
	in.bindings[action] = key
	return nil
}

// Binding returns the key bound to action and whether a binding exists.
func (in *Input) Binding(action string) (ebiten.Key, bool) {
	key, ok := in.bindings[action]
	return key, ok
}

// ActionPressed reports whether the key bound to action is held.
// Unbound actions are never pressed.
func (in *Input) ActionPressed(action string) bool {
	key, ok := in.bindings[action]
	return ok && ebiten.IsKeyPressed(key)
}

// ActionJustPressed reports whether the key bound to action went down this
// tick.
func (in *Input) ActionJustPressed(action string) bool {
	key, ok := in.bindings[action]
	return ok && inpututil.IsKeyJustPressed(key)
}

// KeyFromName parses a key's textual name (as produced by
// [ebiten.Key.String], e.g. "ArrowLeft", "Space", "A") into the key value.
func KeyFromName(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return key, nil
}
