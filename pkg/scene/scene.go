package scene

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Unit kinds.
const (
	KindFigure   = "figure"
	KindGroup    = "group"
	KindAnimator = "animator"
)

// Scene is a decoded scene document.
type Scene struct {
	Name  string     `mapstructure:"name"`
	Units []UnitSpec `mapstructure:"units"`
}

// UnitSpec describes one figure, group or animator.
// Group members are figures; animator steps are figures or groups.
type UnitSpec struct {
	Kind       string      `mapstructure:"kind"`
	ID         string      `mapstructure:"id"`
	Checkpoint bool        `mapstructure:"checkpoint"`
	Instant    bool        `mapstructure:"instant"`
	Effect     string      `mapstructure:"effect"`
	Shape      *ShapeSpec  `mapstructure:"shape"`
	Travel     *TravelSpec `mapstructure:"travel"`
	Members    []UnitSpec  `mapstructure:"members"`
	Steps      []UnitSpec  `mapstructure:"steps"`
}

// ShapeSpec describes a shape. Which fields apply depends on Kind.
type ShapeSpec struct {
	Kind  string  `mapstructure:"kind"`
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	X2    float64 `mapstructure:"x2"`
	Y2    float64 `mapstructure:"y2"`
	W     float64 `mapstructure:"w"`
	H     float64 `mapstructure:"h"`
	R     float64 `mapstructure:"r"`
	Fill  bool    `mapstructure:"fill"`
	Text  string  `mapstructure:"text"`
	Color string  `mapstructure:"color"`
	Glyph string  `mapstructure:"glyph"`
}

// TravelSpec describes a travel.
// move uses X/Y, grow uses From, fade uses Color, together uses Parts.
type TravelSpec struct {
	Kind   string       `mapstructure:"kind"`
	X      float64      `mapstructure:"x"`
	Y      float64      `mapstructure:"y"`
	From   float64      `mapstructure:"from"`
	Color  string       `mapstructure:"color"`
	Frames int          `mapstructure:"frames"`
	Easing string       `mapstructure:"easing"`
	Parts  []TravelSpec `mapstructure:"parts"`
}

// UnitKind returns the unit kind, defaulting to figure.
func (u UnitSpec) UnitKind() string {
	if u.Kind == "" {
		return KindFigure
	}
	return u.Kind
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene yaml: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("scene is empty")
	}

	var s Scene
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &s,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
