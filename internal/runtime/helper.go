package runtime

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/stepline/pkg/domain"
)

// SetUsingHelperQueue switches playback to the helper tier. Switching it off
// rebuilds the authoritative timeline with resetAfterHelperQueue.
func (e *Engine) SetUsingHelperQueue(ctx context.Context, enabled bool) {
	if enabled {
		e.usingHelper = true
		return
	}
	e.resetAfterHelperQueue(ctx)
}

// UsingHelperQueue reports whether playback reads from the helper tier.
func (e *Engine) UsingHelperQueue() bool { return e.usingHelper }

// LoadCheckpointToHelper positions the timeline at the given checkpoint and
// moves the run up to the next checkpoint into the helper tier, leaving the
// rest of the steps tier untouched. Playback then reads from the helper.
func (e *Engine) LoadCheckpointToHelper(ctx context.Context, id string) error {
	for _, f := range e.completeTravel(true) {
		f.Rearm()
	}
	if e.usingHelper {
		e.steps.prepend(e.helper)
		e.helper.clear()
		e.usingHelper = false
	}

	if err := e.positionAt(ctx, id); err != nil {
		return err
	}

	n := runLength(e.steps.figures)
	e.helper = e.steps.split(n)
	e.usingHelper = true
	e.ReDrawAll()
	e.logger.DebugContext(ctx, "checkpoint loaded to helper", "checkpoint", id, "run", n)
	return nil
}

// positionAt rewinds or replays the steps tier until id is at its head.
func (e *Engine) positionAt(ctx context.Context, id string) error {
	if head := e.steps.head(); head != nil && head.ID() == id {
		return nil
	}

	if f := e.snapshot.findFigure(id); f != nil {
		if !f.Checkpoint {
			return fmt.Errorf("figure %s: %w", id, domain.ErrCheckpointNotFound)
		}
		for {
			got, ok := e.LoadPreviousCheckpoint(ctx)
			if !ok || got == id {
				break
			}
		}
		if head := e.steps.head(); head == nil || head.ID() != id {
			return fmt.Errorf("rewind to %s: %w", id, domain.ErrCheckpointNotFound)
		}
		return nil
	}

	i := e.steps.indexOf(id)
	if i < 0 || !e.steps.figures[i].Checkpoint {
		return fmt.Errorf("figure %s: %w", id, domain.ErrCheckpointNotFound)
	}
	for {
		head := e.steps.head()
		if head == nil {
			return fmt.Errorf("replay to %s: %w", id, domain.ErrCheckpointNotFound)
		}
		if head.ID() == id {
			return nil
		}
		e.runner(ctx, e.steps, pass{forced: true})
	}
}

// runLength counts the figures from the head up to the next checkpoint,
// extended so that no group or animator is split.
func runLength(figures []*domain.Figure) int {
	n := 1
	for n < len(figures) && !figures[n].Checkpoint {
		n++
	}
	for n > 0 && n < len(figures) && sameUnit(figures[n-1], figures[n]) {
		n++
	}
	return min(n, len(figures))
}

func sameUnit(a, b *domain.Figure) bool {
	return (a.GroupID != "" && a.GroupID == b.GroupID) ||
		(a.AnimatorID != "" && a.AnimatorID == b.AnimatorID)
}

// resetAfterHelperQueue rebuilds the timeline in authoring order. Every known
// unit is collected, de-duplicated, sorted by creation order and reset; the
// figures before the first checkpoint replay immediately, the rest resume at
// normal pace.
func (e *Engine) resetAfterHelperQueue(ctx context.Context) {
	e.completeTravel(true)

	var (
		figures   []*domain.Figure
		groups    []*domain.Group
		animators []*domain.Animator
		seen      = make(map[any]struct{})
	)
	collect := func(fs []*domain.Figure, gs []*domain.Group, as []*domain.Animator) {
		for _, f := range fs {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				figures = append(figures, f)
			}
		}
		for _, g := range gs {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				groups = append(groups, g)
			}
		}
		for _, a := range as {
			if _, ok := seen[a]; !ok {
				seen[a] = struct{}{}
				animators = append(animators, a)
			}
		}
	}
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		collect(t.figures, t.groups, t.animators)
	}
	collect(e.snapshot.figures, e.snapshot.groups, e.snapshot.animators)

	byOrder := func(a, b interface{ Order() uint64 }) int { return cmp.Compare(a.Order(), b.Order()) }
	slices.SortFunc(figures, func(a, b *domain.Figure) int { return byOrder(a, b) })
	slices.SortFunc(groups, func(a, b *domain.Group) int { return byOrder(a, b) })
	slices.SortFunc(animators, func(a, b *domain.Animator) int { return byOrder(a, b) })

	for _, f := range figures {
		f.ResetFlags()
	}
	for _, g := range groups {
		g.ResetFlags()
	}
	for _, a := range animators {
		a.ResetFlags()
	}

	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		t.clear()
	}
	e.snapshot.clear()
	e.usingHelper = false
	e.renderer.Clear()

	cut := partitionPoint(figures)
	prefix := make(map[*domain.Figure]struct{}, cut)
	for _, f := range figures[:cut] {
		prefix[f] = struct{}{}
	}
	e.instant.figures = append(e.instant.figures, figures[:cut]...)
	e.steps.figures = append(e.steps.figures, figures[cut:]...)
	for _, g := range groups {
		if _, ok := prefix[firstOrNil(g.Members)]; ok {
			e.instant.groups = append(e.instant.groups, g)
		} else {
			e.steps.groups = append(e.steps.groups, g)
		}
	}
	for _, a := range animators {
		if _, ok := prefix[firstOrNil(a.Figures())]; ok {
			e.instant.animators = append(e.instant.animators, a)
		} else {
			e.steps.animators = append(e.steps.animators, a)
		}
	}

	e.drainInstant(ctx)
	e.logger.DebugContext(ctx, "timeline rebuilt", "replayed", cut, "queued", len(figures)-cut)
}

// partitionPoint returns the index of the first checkpoint figure, moved back
// to the start of its group or animator. Without checkpoints it is 0 and the
// whole timeline restarts at pace.
func partitionPoint(figures []*domain.Figure) int {
	cut := slices.IndexFunc(figures, func(f *domain.Figure) bool { return f.Checkpoint })
	if cut < 0 {
		return 0
	}
	for cut > 0 && sameUnit(figures[cut-1], figures[cut]) {
		cut--
	}
	return cut
}

func firstOrNil(fs []*domain.Figure) *domain.Figure {
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}
