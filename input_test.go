package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"Space", ebiten.KeySpace},
		{"Escape", ebiten.KeyEscape},
		{"ArrowLeft", ebiten.KeyArrowLeft},
		{"A", ebiten.KeyA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KeyFromName(tt.name)
			if err != nil {
				t.Fatalf("KeyFromName(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeyFromNameUnknown(t *testing.T) {
	if _, err := KeyFromName("NotAKey"); err == nil {
		t.Error("KeyFromName should reject an unknown name")
	}
}

func TestBindAndBinding(t *testing.T) {
	in := NewInput()
	if err := in.Bind("jump", "Space"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	key, ok := in.Binding("jump")
	if !ok || key != ebiten.KeySpace {
		t.Errorf("Binding = (%v, %v), want (KeySpace, true)", key, ok)
	}
}

func TestBindReplaces(t *testing.T) {
	in := NewInput()
	_ = in.Bind("jump", "Space")
	if err := in.Bind("jump", "W"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if key, _ := in.Binding("jump"); key != ebiten.KeyW {
		t.Errorf("rebinding should replace, got %v", key)
	}
}

func TestBindInvalidKeyName(t *testing.T) {
	in := NewInput()
	if err := in.Bind("jump", "Jetpack"); err == nil {
		t.Error("Bind should reject an unknown key name")
	}
	if _, ok := in.Binding("jump"); ok {
		t.Error("failed bind must not create a binding")
	}
}

func TestActionPressedUnbound(t *testing.T) {
	in := NewInput()
	if in.ActionPressed("nothing") {
		t.Error("unbound action should never be pressed")
	}
	if in.ActionJustPressed("nothing") {
		t.Error("unbound action should never be just-pressed")
	}
}

func TestQuitRequestedDefaultsFalse(t *testing.T) {
	in := NewInput()
	in.refresh()
	if in.QuitRequested() {
		t.Error("quit should not be requested with no quit binding")
	}
}
