package rowan

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Config is a read-only view over an INI file, used to parametrize
// gameplay constants (speeds, counts, colors) and keybindings before
// entities are spawned. Every getter takes a default returned when the
// section or key is missing or malformed; configuration problems never
// stop the game.
type Config struct {
	file *ini.File
}

// LoadConfig parses the INI file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &Config{file: f}, nil
}

// LoadConfigData parses INI content from memory, e.g. an embedded asset.
func LoadConfigData(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load config data: %w", err)
	}
	return &Config{file: f}, nil
}

// Float returns the float value at [section] key, or def.
func (c *Config) Float(section, key string, def float64) float64 {
	return c.file.Section(section).Key(key).MustFloat64(def)
}

// Int returns the integer value at [section] key, or def.
func (c *Config) Int(section, key string, def int) int {
	return c.file.Section(section).Key(key).MustInt(def)
}

// Str returns the string value at [section] key, or def.
func (c *Config) Str(section, key, def string) string {
	v := c.file.Section(section).Key(key).String()
	if v == "" {
		return def
	}
	return v
}

// Bool returns the boolean value at [section] key, or def.
func (c *Config) Bool(section, key string, def bool) bool {
	return c.file.Section(section).Key(key).MustBool(def)
}

// Color returns the color at [section] key, written as up to four
// comma-separated components in [0, 1] ("r, g, b, a"; alpha defaults
// to 1). Malformed values yield def.
func (c *Config) Color(section, key string, def Color) Color {
	v := c.file.Section(section).Key(key).String()
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return def
	}
	out := Color{A: 1}
	fields := [4]*float64{&out.R, &out.G, &out.B, &out.A}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return def
		}
		*fields[i] = clamp01(f)
	}
	return out
}

// HasSection reports whether the file contains [section].
func (c *Config) HasSection(section string) bool {
	_, err := c.file.GetSection(section)
	return err == nil
}

// BindKeys feeds every key of [section] into the input binding table,
// treating key names as actions and values as key names:
//
//	[keys]
//	move_left = ArrowLeft
//	jump      = Space
//
// Unparseable bindings are collected into the returned error; valid ones
// are still applied.
func (c *Config) BindKeys(in *Input, section string) error {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return fmt.Errorf("bind keys: no section %q", section)
	}
	var bad []string
	for _, key := range sec.Keys() {
		if err := in.Bind(key.Name(), key.String()); err != nil {
			bad = append(bad, fmt.Sprintf("%s=%s", key.Name(), key.String()))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("bind keys: invalid bindings %s", strings.Join(bad, ", "))
	}
	return nil
}
