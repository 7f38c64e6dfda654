package runtime

import (
	"context"

	"github.com/aretw0/stepline/pkg/domain"
)

// StepNext pauses and commits exactly one unit from the active tier.
// When the upcoming unit belongs to a different animator than the last
// committed one, the surface is repainted with only the units sharing the
// upcoming animator id (or only non-animator units).
func (e *Engine) StepNext(ctx context.Context) {
	e.pause(ctx)
	e.completeTravel(false)

	t := e.activeTier()
	head := t.head()
	if head == nil {
		return
	}

	lastAnimator := ""
	if last := e.snapshot.lastFigure(); last != nil {
		lastAnimator = last.AnimatorID
	}
	if head.AnimatorID != lastAnimator {
		e.renderer.Clear()
		for _, f := range e.snapshot.figures {
			if f.AnimatorID == head.AnimatorID {
				e.renderer.Draw(f)
			}
		}
	}

	e.runner(ctx, t, pass{forced: true})
}

// StepBack pauses and returns the last committed step (a figure, or a whole
// group) to the front of the active tier, then repaints everything before it.
func (e *Engine) StepBack(ctx context.Context) {
	e.pause(ctx)
	for _, f := range e.completeTravel(true) {
		f.Rearm()
	}

	last := e.snapshot.lastFigure()
	if last == nil {
		return
	}
	t := e.activeTier()

	first := last
	if last.GroupID != "" {
		for f := e.snapshot.lastFigure(); f != nil && f.GroupID == last.GroupID; f = e.snapshot.lastFigure() {
			e.snapshot.popFigure()
			e.restoreFigure(f)
			t.unshiftFigures(f)
			first = f
		}
		if g := e.snapshot.lastGroup(); g != nil && g.ID() == last.GroupID {
			e.snapshot.popGroup()
			g.Committed = false
			t.unshiftGroup(g)
		}
	} else {
		e.snapshot.popFigure()
		e.restoreFigure(last)
		t.unshiftFigures(last)
	}

	if last.AnimatorID != "" {
		e.stepAnimatorBack(t, last.AnimatorID, first)
	}

	e.renderer.Clear()
	e.drawSnapshot()
}

// stepAnimatorBack moves the owning animator's cursor back onto the restored
// step. A finished animator is reopened and returned to the tier first.
func (e *Engine) stepAnimatorBack(t *tier, id string, first *domain.Figure) {
	if a := e.snapshot.lastAnimator(); a != nil && a.ID() == id {
		e.snapshot.popAnimator()
		a.Committed = false
		t.unshiftAnimator(a)
		a.SeekTo(a.IndexOf(first))
		return
	}
	if a := t.findAnimator(id); a != nil {
		a.Back()
	}
}
