package prefs

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Colors is a body background/foreground pair.
type Colors struct {
	Background string `yaml:"background" json:"background,omitempty"`
	Foreground string `yaml:"foreground" json:"foreground,omitempty"`
}

// Palette defines root marker classes and body colors for both themes.
type Palette struct {
	LightClass string `yaml:"light_class" json:"light_class,omitempty" jsonschema:"pattern=^[a-zA-Z_][a-zA-Z0-9_-]*$"`
	DarkClass  string `yaml:"dark_class" json:"dark_class,omitempty" jsonschema:"pattern=^[a-zA-Z_][a-zA-Z0-9_-]*$"`
	Light      Colors `yaml:"light" json:"light,omitempty"`
	Dark       Colors `yaml:"dark" json:"dark,omitempty"`
}

var (
	colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,%\s]+\))$`)
	classRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{
		LightClass: "my-app-light",
		DarkClass:  "my-app-dark",
		Light:      Colors{Background: "#faf8f5", Foreground: "#2d3748"},
		Dark:       Colors{Background: "#0f172a", Foreground: "#f1f5f9"},
	}
}

// LoadPalette reads a YAML palette file. Fields missing in the file keep their default values.
// The file is checked against the palette schema before it is decoded.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette file: %w", err)
	}
	if err := VerifyPalette(data); err != nil {
		return Palette{}, err
	}

	p := DefaultPalette()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Palette{}, fmt.Errorf("invalid palette %s: %w", path, err)
	}
	return p, nil
}

// Validate checks class names and colors are safe to render into class and style attributes.
func (p Palette) Validate() error {
	if !classRe.MatchString(p.LightClass) || !classRe.MatchString(p.DarkClass) {
		return fmt.Errorf("bad marker class names %q, %q", p.LightClass, p.DarkClass)
	}
	if p.LightClass == p.DarkClass {
		return errors.New("light and dark marker classes must differ")
	}
	for _, c := range []string{p.Light.Background, p.Light.Foreground, p.Dark.Background, p.Dark.Foreground} {
		if !colorRe.MatchString(c) {
			return fmt.Errorf("bad color %q", c)
		}
	}
	return nil
}

func (p Palette) isZero() bool {
	return p == Palette{}
}
