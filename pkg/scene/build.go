package scene

import (
	"context"
	"fmt"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/registry"
	"github.com/aretw0/stepline/pkg/shapes"
	"github.com/lucasb-eyer/go-colorful"
)

// Builder receives the units of a scene. *stepline.Engine satisfies it.
type Builder interface {
	AddFigure(ctx context.Context, f *domain.Figure, opts domain.AddOptions) error
	AddGroup(ctx context.Context, g *domain.Group, opts domain.AddOptions) error
	AddAnimator(ctx context.Context, a *domain.Animator, opts domain.AddOptions) error
}

// ApplyOption configures Apply.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	effects *registry.Registry
}

// WithEffects resolves the units' effect names against r.
func WithEffects(r *registry.Registry) ApplyOption {
	return func(c *applyConfig) {
		c.effects = r
	}
}

// Apply builds fresh units from the scene and adds them in document order.
// A scene can be applied to several engines.
func (s *Scene) Apply(ctx context.Context, b Builder, opts ...ApplyOption) error {
	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, u := range s.Units {
		add := domain.AddOptions{Instant: u.Instant, Checkpoint: u.Checkpoint}
		effect, err := cfg.bind(u)
		if err != nil {
			return fmt.Errorf("units[%d] %s: %w", i, u.ID, err)
		}
		if effect != nil {
			add.RunSideEffect = true
		}

		switch u.UnitKind() {
		case KindFigure:
			var f *domain.Figure
			if f, err = buildFigure(u); err == nil {
				f.SideEffect = effect
				err = b.AddFigure(ctx, f, add)
			}
		case KindGroup:
			var g *domain.Group
			if g, err = buildGroup(u); err == nil {
				g.SideEffect = effect
				err = b.AddGroup(ctx, g, add)
			}
		case KindAnimator:
			var a *domain.Animator
			if a, err = buildAnimator(u); err == nil {
				a.SideEffect = effect
				err = b.AddAnimator(ctx, a, add)
			}
		default:
			err = fmt.Errorf("unknown kind %q", u.Kind)
		}
		if err != nil {
			return fmt.Errorf("units[%d] %s: %w", i, u.ID, err)
		}
	}
	return nil
}

func (c applyConfig) bind(u UnitSpec) (func(), error) {
	if u.Effect == "" {
		return nil, nil
	}
	if c.effects == nil {
		return nil, fmt.Errorf("effect %q: no effects registered", u.Effect)
	}
	return c.effects.Bind(u.Effect, u.ID)
}

func buildFigure(u UnitSpec) (*domain.Figure, error) {
	if u.Shape == nil {
		return nil, fmt.Errorf("figure needs a shape")
	}
	shape, err := buildShape(*u.Shape)
	if err != nil {
		return nil, err
	}
	f := domain.NewFigure(u.ID, shape)
	if u.Travel != nil {
		t, err := buildTravel(*u.Travel, shape)
		if err != nil {
			return nil, err
		}
		f.WithTravel(t)
	}
	return f, nil
}

// buildGroup honours member checkpoint flags; the group flag itself is
// applied by the engine to the first member.
func buildGroup(u UnitSpec) (*domain.Group, error) {
	members := make([]*domain.Figure, 0, len(u.Members))
	for _, m := range u.Members {
		f, err := buildFigure(m)
		if err != nil {
			return nil, err
		}
		f.Checkpoint = m.Checkpoint
		members = append(members, f)
	}
	return domain.NewGroup(u.ID, members...), nil
}

func buildAnimator(u UnitSpec) (*domain.Animator, error) {
	steps := make([]domain.Step, 0, len(u.Steps))
	for _, st := range u.Steps {
		switch st.UnitKind() {
		case KindGroup:
			g, err := buildGroup(st)
			if err != nil {
				return nil, err
			}
			if st.Checkpoint && g.Len() > 0 {
				g.Members[0].Checkpoint = true
			}
			steps = append(steps, g)
		default:
			f, err := buildFigure(st)
			if err != nil {
				return nil, err
			}
			f.Checkpoint = st.Checkpoint
			steps = append(steps, f)
		}
	}
	return domain.NewAnimator(u.ID, steps...), nil
}

func buildShape(s ShapeSpec) (domain.Shape, error) {
	style := shapes.Style{Color: colorful.Color{R: 1, G: 1, B: 1}}
	if s.Color != "" {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s.Color, err)
		}
		style.Color = c
	}
	if r := []rune(s.Glyph); len(r) > 0 {
		style.Glyph = r[0]
	}

	at := shapes.Point{X: s.X, Y: s.Y}
	switch s.Kind {
	case shapes.KindDot:
		return &shapes.Dot{Style: style, At: at}, nil
	case shapes.KindLine:
		return &shapes.Line{Style: style, From: at, To: shapes.Point{X: s.X2, Y: s.Y2}}, nil
	case shapes.KindRect:
		return &shapes.Rect{Style: style, Min: at, W: s.W, H: s.H, Fill: s.Fill}, nil
	case shapes.KindCircle:
		return &shapes.Circle{Style: style, Center: at, R: s.R, Fill: s.Fill}, nil
	case shapes.KindLabel:
		return &shapes.Label{Style: style, At: at, Text: s.Text}, nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
}

func buildTravel(t TravelSpec, shape domain.Shape) (domain.Travelable, error) {
	e, err := shapes.Easing(t.Easing)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case "move":
		m, ok := shape.(shapes.Movable)
		if !ok {
			return nil, fmt.Errorf("%s cannot move", shape.ShapeKind())
		}
		return shapes.Move(m, shapes.Point{X: t.X, Y: t.Y}, t.Frames, e), nil
	case "grow":
		s, ok := shape.(shapes.Sizable)
		if !ok {
			return nil, fmt.Errorf("%s cannot grow", shape.ShapeKind())
		}
		return shapes.Grow(s, t.From, t.Frames, e), nil
	case "fade":
		c, ok := shape.(shapes.Colored)
		if !ok {
			return nil, fmt.Errorf("%s cannot fade", shape.ShapeKind())
		}
		to, err := colorful.Hex(t.Color)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", t.Color, err)
		}
		return shapes.Fade(c, to, t.Frames, e), nil
	case "together":
		parts := make([]domain.Travelable, 0, len(t.Parts))
		for _, p := range t.Parts {
			pt, err := buildTravel(p, shape)
			if err != nil {
				return nil, err
			}
			parts = append(parts, pt)
		}
		return shapes.Together(parts...), nil
	}
	return nil, fmt.Errorf("unknown travel kind %q", t.Kind)
}
