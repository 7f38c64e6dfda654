package runtime

import (
	"slices"

	"github.com/aretw0/stepline/pkg/domain"
)

// tier is one level of the queue set. The three lanes stay synchronized:
// every group in the group lane has its members in the figure lane, and every
// animator in the animator lane has its remaining leaves there too.
type tier struct {
	figures   []*domain.Figure
	groups    []*domain.Group
	animators []*domain.Animator
}

func newTier() *tier {
	return &tier{}
}

func (t *tier) empty() bool { return len(t.figures) == 0 }

func (t *tier) head() *domain.Figure {
	if len(t.figures) == 0 {
		return nil
	}
	return t.figures[0]
}

func (t *tier) headGroup() *domain.Group {
	if len(t.groups) == 0 {
		return nil
	}
	return t.groups[0]
}

func (t *tier) headAnimator() *domain.Animator {
	if len(t.animators) == 0 {
		return nil
	}
	return t.animators[0]
}

func (t *tier) pushFigure(f *domain.Figure) {
	t.figures = append(t.figures, f)
}

func (t *tier) pushGroup(g *domain.Group) {
	t.figures = append(t.figures, g.Members...)
	t.groups = append(t.groups, g)
}

func (t *tier) pushAnimator(a *domain.Animator) {
	for _, s := range a.Steps {
		switch v := s.(type) {
		case *domain.Group:
			t.pushGroup(v)
		case *domain.Figure:
			t.pushFigure(v)
		}
	}
	t.animators = append(t.animators, a)
}

func (t *tier) unshiftFigures(fs ...*domain.Figure) {
	t.figures = slices.Insert(t.figures, 0, fs...)
}

func (t *tier) unshiftGroup(g *domain.Group) {
	t.groups = slices.Insert(t.groups, 0, g)
}

func (t *tier) unshiftAnimator(a *domain.Animator) {
	t.animators = slices.Insert(t.animators, 0, a)
}

// dropFigures removes n entries from the head of the figure lane.
func (t *tier) dropFigures(n int) {
	n = min(n, len(t.figures))
	t.figures = slices.Delete(t.figures, 0, n)
}

func (t *tier) popGroup() *domain.Group {
	g := t.headGroup()
	if g != nil {
		t.groups = slices.Delete(t.groups, 0, 1)
	}
	return g
}

func (t *tier) popAnimator() *domain.Animator {
	a := t.headAnimator()
	if a != nil {
		t.animators = slices.Delete(t.animators, 0, 1)
	}
	return a
}

// split moves the first n figures, together with the groups and animators
// they touch, into a new tier. Touched groups and animators always form a
// prefix of their lanes because the lanes share one ordering.
func (t *tier) split(n int) *tier {
	n = min(n, len(t.figures))
	out := newTier()
	out.figures = append(out.figures, t.figures[:n]...)
	t.figures = slices.Delete(t.figures, 0, n)

	groups := make(map[string]struct{})
	animators := make(map[string]struct{})
	for _, f := range out.figures {
		if f.GroupID != "" {
			groups[f.GroupID] = struct{}{}
		}
		if f.AnimatorID != "" {
			animators[f.AnimatorID] = struct{}{}
		}
	}
	for len(t.groups) > 0 {
		if _, ok := groups[t.groups[0].ID()]; !ok {
			break
		}
		out.groups = append(out.groups, t.popGroup())
	}
	for len(t.animators) > 0 {
		if _, ok := animators[t.animators[0].ID()]; !ok {
			break
		}
		out.animators = append(out.animators, t.popAnimator())
	}
	return out
}

// prepend puts every lane of other in front of t.
func (t *tier) prepend(other *tier) {
	t.figures = slices.Insert(t.figures, 0, other.figures...)
	t.groups = slices.Insert(t.groups, 0, other.groups...)
	t.animators = slices.Insert(t.animators, 0, other.animators...)
}

func (t *tier) clear() {
	t.figures = nil
	t.groups = nil
	t.animators = nil
}

func (t *tier) indexOf(id string) int {
	return slices.IndexFunc(t.figures, func(f *domain.Figure) bool { return f.ID() == id })
}

func (t *tier) findGroup(id string) *domain.Group {
	if i := slices.IndexFunc(t.groups, func(g *domain.Group) bool { return g.ID() == id }); i >= 0 {
		return t.groups[i]
	}
	return nil
}

func (t *tier) findAnimator(id string) *domain.Animator {
	if i := slices.IndexFunc(t.animators, func(a *domain.Animator) bool { return a.ID() == id }); i >= 0 {
		return t.animators[i]
	}
	return nil
}

func (t *tier) removeFigure(f *domain.Figure) bool {
	n := len(t.figures)
	t.figures = slices.DeleteFunc(t.figures, func(x *domain.Figure) bool { return x == f })
	return len(t.figures) != n
}

func (t *tier) removeGroup(g *domain.Group) bool {
	n := len(t.groups)
	t.groups = slices.DeleteFunc(t.groups, func(x *domain.Group) bool { return x == g })
	return len(t.groups) != n
}

func (t *tier) removeAnimator(a *domain.Animator) bool {
	n := len(t.animators)
	t.animators = slices.DeleteFunc(t.animators, func(x *domain.Animator) bool { return x == a })
	return len(t.animators) != n
}

func (t *tier) lanes() domain.Lanes {
	return lanesOf(t.figures, t.groups, t.animators)
}

func lanesOf(figures []*domain.Figure, groups []*domain.Group, animators []*domain.Animator) domain.Lanes {
	l := domain.Lanes{
		Figures:   make([]string, 0, len(figures)),
		Groups:    make([]string, 0, len(groups)),
		Animators: make([]string, 0, len(animators)),
	}
	for _, f := range figures {
		l.Figures = append(l.Figures, f.ID())
	}
	for _, g := range groups {
		l.Groups = append(l.Groups, g.ID())
	}
	for _, a := range animators {
		l.Animators = append(l.Animators, a.ID())
	}
	return l
}
