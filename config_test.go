package rowan

import (
	"os"
	"path/filepath"
	"testing"
)

const testINI = `
[window]
title  = Bounce
width  = 640
height = 480
vsync  = true

[gameplay]
speed      = 120.5
box_count  = 12
background = 0.1, 0.2, 0.3
box_color  = 1, 0, 0, 0.5

[keys]
move_left  = ArrowLeft
move_right = ArrowRight
quit       = Escape
`

func writeTestConfig(t *testing.T) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.ini")
	if err := os.WriteFile(path, []byte(testINI), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestConfigGetters(t *testing.T) {
	cfg := writeTestConfig(t)

	if got := cfg.Str("window", "title", "?"); got != "Bounce" {
		t.Errorf("title = %q, want %q", got, "Bounce")
	}
	if got := cfg.Int("window", "width", 0); got != 640 {
		t.Errorf("width = %d, want 640", got)
	}
	if got := cfg.Float("gameplay", "speed", 0); got != 120.5 {
		t.Errorf("speed = %v, want 120.5", got)
	}
	if got := cfg.Bool("window", "vsync", false); !got {
		t.Error("vsync = false, want true")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := writeTestConfig(t)

	if got := cfg.Int("window", "missing", 7); got != 7 {
		t.Errorf("missing int = %d, want default 7", got)
	}
	if got := cfg.Str("nowhere", "nothing", "fallback"); got != "fallback" {
		t.Errorf("missing str = %q, want default", got)
	}
	if got := cfg.Float("gameplay", "box_count_wrong", 1.5); got != 1.5 {
		t.Errorf("missing float = %v, want default 1.5", got)
	}
}

func TestConfigColor(t *testing.T) {
	cfg := writeTestConfig(t)

	got := cfg.Color("gameplay", "background", ColorBlack)
	want := Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	if got != want {
		t.Errorf("background = %+v, want %+v", got, want)
	}

	got = cfg.Color("gameplay", "box_color", ColorBlack)
	want = Color{R: 1, G: 0, B: 0, A: 0.5}
	if got != want {
		t.Errorf("box_color = %+v, want %+v", got, want)
	}

	// Missing or malformed values fall back to the default.
	if got := cfg.Color("gameplay", "missing", ColorWhite); got != ColorWhite {
		t.Errorf("missing color = %+v, want default", got)
	}
}

func TestConfigColorMalformed(t *testing.T) {
	cfg, err := LoadConfigData([]byte("[c]\nbad1 = 1, 2\nbad2 = x, y, z\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Color("c", "bad1", ColorWhite); got != ColorWhite {
		t.Errorf("two-component color = %+v, want default", got)
	}
	if got := cfg.Color("c", "bad2", ColorWhite); got != ColorWhite {
		t.Errorf("non-numeric color = %+v, want default", got)
	}
}

func TestConfigBindKeys(t *testing.T) {
	cfg := writeTestConfig(t)
	in := NewInput()

	if err := cfg.BindKeys(in, "keys"); err != nil {
		t.Fatalf("BindKeys: %v", err)
	}
	for _, action := range []string{"move_left", "move_right", "quit"} {
		if _, ok := in.Binding(action); !ok {
			t.Errorf("action %q should be bound", action)
		}
	}
}

func TestConfigBindKeysInvalid(t *testing.T) {
	cfg, err := LoadConfigData([]byte("[keys]\njump = NotAKey\nfire = Space\n"))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInput()
	if err := cfg.BindKeys(in, "keys"); err == nil {
		t.Error("BindKeys should report the invalid binding")
	}
	// The valid binding still lands.
	if _, ok := in.Binding("fire"); !ok {
		t.Error("valid binding should apply despite a bad sibling")
	}
}

func TestConfigBindKeysMissingSection(t *testing.T) {
	cfg := writeTestConfig(t)
	if err := cfg.BindKeys(NewInput(), "absent"); err == nil {
		t.Error("BindKeys on a missing section should error")
	}
}

func TestHasSection(t *testing.T) {
	cfg := writeTestConfig(t)
	if !cfg.HasSection("gameplay") {
		t.Error("gameplay section should exist")
	}
	if cfg.HasSection("absent") {
		t.Error("absent section should not exist")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Error("LoadConfig on a missing file should error")
	}
}
