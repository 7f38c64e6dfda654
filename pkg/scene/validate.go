package scene

import (
	"errors"
	"fmt"

	"github.com/aretw0/stepline/pkg/shapes"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// Validate reports every structural problem in the scene at once.
func (s *Scene) Validate() error {
	v := &validator{seen: make(map[string]struct{})}
	if len(s.Units) == 0 {
		v.fail("scene has no units")
	}
	for i, u := range s.Units {
		path := fmt.Sprintf("units[%d]", i)
		switch u.UnitKind() {
		case KindFigure:
			v.figure(path, u)
		case KindGroup:
			v.group(path, u)
		case KindAnimator:
			v.animator(path, u)
		default:
			v.fail("%s: unknown kind %q", path, u.Kind)
		}
	}
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScene, errors.Join(v.errs...))
}

type validator struct {
	seen map[string]struct{}
	errs []error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) id(path, id string) {
	if id == "" {
		return
	}
	if _, ok := v.seen[id]; ok {
		v.fail("%s: duplicate id %q", path, id)
	}
	v.seen[id] = struct{}{}
}

func (v *validator) figure(path string, u UnitSpec) {
	v.id(path, u.ID)
	if len(u.Members) > 0 || len(u.Steps) > 0 {
		v.fail("%s: figure cannot have members or steps", path)
	}
	if u.Shape == nil {
		v.fail("%s: figure needs a shape", path)
		return
	}
	v.shape(path+".shape", *u.Shape)
	if u.Travel != nil {
		v.travel(path+".travel", *u.Travel, u.Shape.Kind)
	}
}

func (v *validator) group(path string, u UnitSpec) {
	v.id(path, u.ID)
	if u.Shape != nil || u.Travel != nil || len(u.Steps) > 0 {
		v.fail("%s: group only takes members", path)
	}
	if len(u.Members) == 0 {
		v.fail("%s: group has no members", path)
	}
	for i, m := range u.Members {
		mp := fmt.Sprintf("%s.members[%d]", path, i)
		v.nestedEffect(mp, m)
		if m.UnitKind() != KindFigure {
			v.fail("%s: group members must be figures, got %q", mp, m.Kind)
			continue
		}
		v.figure(mp, m)
	}
}

func (v *validator) animator(path string, u UnitSpec) {
	v.id(path, u.ID)
	if u.Shape != nil || u.Travel != nil || len(u.Members) > 0 {
		v.fail("%s: animator only takes steps", path)
	}
	if len(u.Steps) == 0 {
		v.fail("%s: animator has no steps", path)
	}
	for i, st := range u.Steps {
		sp := fmt.Sprintf("%s.steps[%d]", path, i)
		v.nestedEffect(sp, st)
		switch st.UnitKind() {
		case KindFigure:
			v.figure(sp, st)
		case KindGroup:
			v.group(sp, st)
		default:
			v.fail("%s: animator steps must be figures or groups, got %q", sp, st.Kind)
		}
	}
}

// nestedEffect rejects effects below the top level; only added units fire them.
func (v *validator) nestedEffect(path string, u UnitSpec) {
	if u.Effect != "" {
		v.fail("%s: effect %q is only allowed on top-level units", path, u.Effect)
	}
}

func (v *validator) shape(path string, s ShapeSpec) {
	switch s.Kind {
	case shapes.KindDot, shapes.KindLine, shapes.KindRect, shapes.KindCircle:
	case shapes.KindLabel:
		if s.Text == "" {
			v.fail("%s: label needs text", path)
		}
	default:
		v.fail("%s: unknown shape kind %q", path, s.Kind)
	}
	v.color(path, s.Color)
	if len([]rune(s.Glyph)) > 1 {
		v.fail("%s: glyph must be a single character", path)
	}
}

func (v *validator) travel(path string, t TravelSpec, shapeKind string) {
	if t.Frames < 0 {
		v.fail("%s: frames must not be negative", path)
	}
	if _, err := shapes.Easing(t.Easing); err != nil {
		v.fail("%s: %v", path, err)
	}
	switch t.Kind {
	case "move":
	case "grow":
		if shapeKind == shapes.KindDot || shapeKind == shapes.KindLabel {
			v.fail("%s: %s cannot grow", path, shapeKind)
		}
	case "fade":
		if t.Color == "" {
			v.fail("%s: fade needs a color", path)
		}
		v.color(path, t.Color)
	case "together":
		if len(t.Parts) == 0 {
			v.fail("%s: together has no parts", path)
		}
		for i, p := range t.Parts {
			v.travel(fmt.Sprintf("%s.parts[%d]", path, i), p, shapeKind)
		}
	default:
		v.fail("%s: unknown travel kind %q", path, t.Kind)
	}
}

func (v *validator) color(path, hex string) {
	if hex == "" {
		return
	}
	if _, err := colorful.Hex(hex); err != nil {
		v.fail("%s: bad color %q", path, hex)
	}
}
