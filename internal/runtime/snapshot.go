package runtime

import (
	"slices"

	"github.com/aretw0/stepline/pkg/domain"
)

// snapshotLog is the ordered record of committed units and the checkpoints
// reached so far. Rewinding pops entries from its tail.
type snapshotLog struct {
	figures   []*domain.Figure
	groups    []*domain.Group
	animators []*domain.Animator

	// checkpoints keeps insertion order and holds no duplicates.
	checkpoints []string
}

func newSnapshotLog() *snapshotLog {
	return &snapshotLog{}
}

func (s *snapshotLog) lastFigure() *domain.Figure {
	if len(s.figures) == 0 {
		return nil
	}
	return s.figures[len(s.figures)-1]
}

func (s *snapshotLog) popFigure() *domain.Figure {
	f := s.lastFigure()
	if f != nil {
		s.figures = s.figures[:len(s.figures)-1]
	}
	return f
}

func (s *snapshotLog) lastGroup() *domain.Group {
	if len(s.groups) == 0 {
		return nil
	}
	return s.groups[len(s.groups)-1]
}

func (s *snapshotLog) popGroup() *domain.Group {
	g := s.lastGroup()
	if g != nil {
		s.groups = s.groups[:len(s.groups)-1]
	}
	return g
}

func (s *snapshotLog) lastAnimator() *domain.Animator {
	if len(s.animators) == 0 {
		return nil
	}
	return s.animators[len(s.animators)-1]
}

func (s *snapshotLog) popAnimator() *domain.Animator {
	a := s.lastAnimator()
	if a != nil {
		s.animators = s.animators[:len(s.animators)-1]
	}
	return a
}

func (s *snapshotLog) hasAnimator(id string) bool {
	return slices.ContainsFunc(s.animators, func(a *domain.Animator) bool { return a.ID() == id })
}

func (s *snapshotLog) findFigure(id string) *domain.Figure {
	if i := slices.IndexFunc(s.figures, func(f *domain.Figure) bool { return f.ID() == id }); i >= 0 {
		return s.figures[i]
	}
	return nil
}

func (s *snapshotLog) findGroup(id string) *domain.Group {
	if i := slices.IndexFunc(s.groups, func(g *domain.Group) bool { return g.ID() == id }); i >= 0 {
		return s.groups[i]
	}
	return nil
}

func (s *snapshotLog) findAnimator(id string) *domain.Animator {
	if i := slices.IndexFunc(s.animators, func(a *domain.Animator) bool { return a.ID() == id }); i >= 0 {
		return s.animators[i]
	}
	return nil
}

func (s *snapshotLog) addCheckpoint(id string) {
	if !slices.Contains(s.checkpoints, id) {
		s.checkpoints = append(s.checkpoints, id)
	}
}

func (s *snapshotLog) popCheckpoint() (string, bool) {
	if len(s.checkpoints) == 0 {
		return "", false
	}
	id := s.checkpoints[len(s.checkpoints)-1]
	s.checkpoints = s.checkpoints[:len(s.checkpoints)-1]
	return id, true
}

func (s *snapshotLog) removeCheckpoint(id string) {
	s.checkpoints = slices.DeleteFunc(s.checkpoints, func(c string) bool { return c == id })
}

func (s *snapshotLog) removeFigure(f *domain.Figure) bool {
	n := len(s.figures)
	s.figures = slices.DeleteFunc(s.figures, func(x *domain.Figure) bool { return x == f })
	return len(s.figures) != n
}

func (s *snapshotLog) removeGroup(g *domain.Group) bool {
	n := len(s.groups)
	s.groups = slices.DeleteFunc(s.groups, func(x *domain.Group) bool { return x == g })
	return len(s.groups) != n
}

func (s *snapshotLog) removeAnimator(a *domain.Animator) bool {
	n := len(s.animators)
	s.animators = slices.DeleteFunc(s.animators, func(x *domain.Animator) bool { return x == a })
	return len(s.animators) != n
}

func (s *snapshotLog) clear() {
	s.figures = nil
	s.groups = nil
	s.animators = nil
	s.checkpoints = nil
}

func (s *snapshotLog) lanes() domain.Lanes {
	return lanesOf(s.figures, s.groups, s.animators)
}
