package runtime

import (
	"context"

	"github.com/aretw0/stepline/pkg/domain"
)

// pass tunes one runner invocation.
type pass struct {
	// forced completes travel synchronously instead of handing it to a Traveller.
	forced bool
	// skip suppresses drawing; commits still happen.
	skip bool
}

// runner dequeues exactly one leaf step (a figure, a group, or one animator
// child) from the head of t.
func (e *Engine) runner(ctx context.Context, t *tier, p pass) {
	head := t.head()
	if head == nil {
		return
	}

	group := e.groupAtHead(t, head)
	if head.Travelling() || (group != nil && group.Travelling()) {
		if !p.forced {
			e.startTravel(t, head, group)
			return
		}
		settleTravel(head, group)
	}

	switch {
	case head.AnimatorID != "":
		e.processAnimator(ctx, t, head, group, p)
	case group != nil:
		e.processGroup(ctx, t, group, p)
	default:
		e.processFigure(ctx, t, head, p)
	}
}

// groupAtHead returns the group the head figure opens, if the group lane agrees.
// Mismatched authoring degrades to plain figure handling instead of stalling.
func (e *Engine) groupAtHead(t *tier, head *domain.Figure) *domain.Group {
	if head.GroupID == "" {
		return nil
	}
	g := t.headGroup()
	if g == nil || g.ID() != head.GroupID || g.Len() == 0 || g.Members[0] != head {
		e.logger.Warn("group lane out of sync", "figure", head.ID(), "group", head.GroupID)
		return nil
	}
	return g
}

func (e *Engine) processFigure(ctx context.Context, t *tier, f *domain.Figure, p pass) {
	t.dropFigures(1)
	if !p.skip {
		e.renderer.Draw(f)
	}
	e.commitFigure(ctx, f)
}

// processGroup draws every member in one tick and drops the len-1 extra
// figure entries along with the group lane head.
func (e *Engine) processGroup(ctx context.Context, t *tier, g *domain.Group, p pass) {
	if !p.skip {
		for _, m := range g.Members {
			e.renderer.Draw(m)
		}
	}
	t.dropFigures(g.Len())
	t.popGroup()

	if g.Committed {
		return
	}
	for _, m := range g.Members {
		e.commitFigure(ctx, m)
	}
	g.Committed = true
	e.snapshot.groups = append(e.snapshot.groups, g)
	g.FireSideEffect()
	e.publish(ctx, domain.NewEvent(domain.EventGroupDraw, g.ID()))
}

// processAnimator draws the animator's current child and advances its cursor.
func (e *Engine) processAnimator(ctx context.Context, t *tier, head *domain.Figure, group *domain.Group, p pass) {
	a := t.headAnimator()
	if a == nil || a.ID() != head.AnimatorID {
		e.logger.Warn("animator lane out of sync", "figure", head.ID(), "animator", head.AnimatorID)
		e.processDetached(ctx, t, head, group, p)
		return
	}
	step := a.Current()
	if step == nil || len(step.Figures()) == 0 || step.Figures()[0] != head {
		e.logger.Warn("animator cursor out of sync", "figure", head.ID(), "animator", a.ID(), "cursor", a.Cursor())
		e.processDetached(ctx, t, head, group, p)
		return
	}

	e.processDetached(ctx, t, head, group, p)
	if !a.Advance() {
		return
	}

	t.popAnimator()
	if !a.Committed {
		a.Committed = true
		e.snapshot.animators = append(e.snapshot.animators, a)
		a.FireSideEffect()
		e.publish(ctx, domain.NewEvent(domain.EventAnimatorDraw, a.ID()))
	}
	if !p.skip {
		e.ReDrawAll()
	}
}

func (e *Engine) processDetached(ctx context.Context, t *tier, head *domain.Figure, group *domain.Group, p pass) {
	if group != nil {
		e.processGroup(ctx, t, group, p)
		return
	}
	e.processFigure(ctx, t, head, p)
}

// commitFigure logs the figure once and records it as a checkpoint if flagged.
func (e *Engine) commitFigure(ctx context.Context, f *domain.Figure) {
	if f.Committed {
		return
	}
	f.Committed = true
	e.snapshot.figures = append(e.snapshot.figures, f)
	if f.Checkpoint {
		e.snapshot.addCheckpoint(f.ID())
	}
	f.FireSideEffect()
	if f.GroupID == "" {
		e.publish(ctx, domain.NewEvent(domain.EventFigureDraw, f.ID()))
	}
}

// restoreFigure undoes a commit so the figure can be queued again.
func (e *Engine) restoreFigure(f *domain.Figure) {
	f.Committed = false
	f.Rearm()
	e.snapshot.removeCheckpoint(f.ID())
}
