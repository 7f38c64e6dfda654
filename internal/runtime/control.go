package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/stepline/pkg/domain"
)

// AddFigure queues a plain figure.
func (e *Engine) AddFigure(ctx context.Context, f *domain.Figure, opts domain.AddOptions) error {
	if err := e.register(f.ID()); err != nil {
		return err
	}
	if opts.Checkpoint {
		f.Checkpoint = true
	}
	if opts.RunSideEffect {
		f.RunSideEffect = true
	}
	e.target(opts).pushFigure(f)
	e.logger.DebugContext(ctx, "figure added", "id", f.ID(), "instant", opts.Instant)
	return nil
}

// AddGroup queues a group. A checkpoint flag marks its first member.
func (e *Engine) AddGroup(ctx context.Context, g *domain.Group, opts domain.AddOptions) error {
	if g.Len() == 0 {
		return fmt.Errorf("group %s: %w", g.ID(), domain.ErrEmptyUnit)
	}
	ids := []string{g.ID()}
	for _, m := range g.Members {
		ids = append(ids, m.ID())
	}
	if err := e.register(ids...); err != nil {
		return err
	}
	if opts.Checkpoint {
		g.Members[0].Checkpoint = true
	}
	if opts.RunSideEffect {
		g.RunSideEffect = true
	}
	e.target(opts).pushGroup(g)
	e.logger.DebugContext(ctx, "group added", "id", g.ID(), "members", g.Len(), "instant", opts.Instant)
	return nil
}

// AddAnimator queues an animator. A checkpoint flag marks its first leaf.
func (e *Engine) AddAnimator(ctx context.Context, a *domain.Animator, opts domain.AddOptions) error {
	leaves := a.Figures()
	if len(leaves) == 0 {
		return fmt.Errorf("animator %s: %w", a.ID(), domain.ErrEmptyUnit)
	}
	for _, g := range a.Groups() {
		if g.Len() == 0 {
			return fmt.Errorf("animator %s, group %s: %w", a.ID(), g.ID(), domain.ErrEmptyUnit)
		}
	}
	ids := []string{a.ID()}
	for _, g := range a.Groups() {
		ids = append(ids, g.ID())
	}
	for _, f := range leaves {
		ids = append(ids, f.ID())
	}
	if err := e.register(ids...); err != nil {
		return err
	}
	if opts.Checkpoint {
		leaves[0].Checkpoint = true
	}
	if opts.RunSideEffect {
		a.RunSideEffect = true
	}
	e.target(opts).pushAnimator(a)
	e.logger.DebugContext(ctx, "animator added", "id", a.ID(), "steps", len(a.Steps), "instant", opts.Instant)
	return nil
}

// register claims a unit id together with every nested id. Nothing is
// claimed when any of them is taken.
func (e *Engine) register(ids ...string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := e.known[id]; ok {
			return fmt.Errorf("unit %s: %w", id, domain.ErrDuplicateUnit)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("unit %s: %w", id, domain.ErrDuplicateUnit)
		}
		seen[id] = struct{}{}
	}
	for id := range seen {
		e.known[id] = struct{}{}
	}
	return nil
}

func (e *Engine) target(opts domain.AddOptions) *tier {
	if opts.Instant {
		return e.instant
	}
	return e.steps
}

// Reset rebuilds the whole timeline from authoring order, replaying up to the
// first checkpoint.
func (e *Engine) Reset(ctx context.Context) {
	e.resetAfterHelperQueue(ctx)
}

// RemoveFigure removes a figure wherever it lives, detaching it from its
// group and animator. The rest of the timeline is left in place.
func (e *Engine) RemoveFigure(ctx context.Context, f *domain.Figure) error {
	e.releaseTravel(f)
	if !e.dropFigure(f) {
		return fmt.Errorf("remove figure %s: %w", f.ID(), domain.ErrUnitNotFound)
	}

	groupID, animatorID := f.GroupID, f.AnimatorID
	if groupID != "" {
		if g := e.lookupGroup(groupID); g != nil {
			g.RemoveMember(f.ID())
			if g.Len() == 0 {
				e.dropGroup(g)
				delete(e.known, g.ID())
				if a := e.lookupAnimator(animatorID); a != nil {
					a.RemoveStep(g.ID())
				}
			}
		}
	} else if animatorID != "" {
		if a := e.lookupAnimator(animatorID); a != nil {
			a.RemoveStep(f.ID())
		}
	}
	if animatorID != "" {
		e.settleAnimator(ctx, animatorID)
	}

	delete(e.known, f.ID())
	e.ReDrawAll()
	return nil
}

// RemoveGroup removes a group with all of its members.
func (e *Engine) RemoveGroup(ctx context.Context, g *domain.Group) error {
	for _, m := range g.Members {
		e.releaseTravel(m)
	}
	found := e.dropGroup(g)
	for _, m := range g.Members {
		found = e.dropFigure(m) || found
		delete(e.known, m.ID())
	}
	if !found {
		return fmt.Errorf("remove group %s: %w", g.ID(), domain.ErrUnitNotFound)
	}
	if g.AnimatorID != "" {
		if a := e.lookupAnimator(g.AnimatorID); a != nil {
			a.RemoveStep(g.ID())
		}
		e.settleAnimator(ctx, g.AnimatorID)
	}
	delete(e.known, g.ID())
	e.ReDrawAll()
	return nil
}

// RemoveAnimator removes an animator with every figure and group it holds.
func (e *Engine) RemoveAnimator(ctx context.Context, a *domain.Animator) error {
	for _, f := range a.Figures() {
		e.releaseTravel(f)
	}
	found := false
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		found = t.removeAnimator(a) || found
	}
	found = e.snapshot.removeAnimator(a) || found
	for _, g := range a.Groups() {
		found = e.dropGroup(g) || found
	}
	for _, f := range a.Figures() {
		found = e.dropFigure(f) || found
	}
	if !found {
		return fmt.Errorf("remove animator %s: %w", a.ID(), domain.ErrUnitNotFound)
	}
	for _, g := range a.Groups() {
		delete(e.known, g.ID())
	}
	for _, f := range a.Figures() {
		delete(e.known, f.ID())
	}
	delete(e.known, a.ID())
	e.logger.DebugContext(ctx, "animator removed", "id", a.ID())
	e.ReDrawAll()
	return nil
}

// releaseTravel finishes the in-flight travel if it involves f.
func (e *Engine) releaseTravel(f *domain.Figure) {
	if e.traveller == nil {
		return
	}
	for _, x := range e.traveller.figures() {
		if x == f {
			e.completeTravel(true)
			return
		}
	}
}

func (e *Engine) dropFigure(f *domain.Figure) bool {
	found := false
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		found = t.removeFigure(f) || found
	}
	found = e.snapshot.removeFigure(f) || found
	e.snapshot.removeCheckpoint(f.ID())
	return found
}

func (e *Engine) dropGroup(g *domain.Group) bool {
	found := false
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		found = t.removeGroup(g) || found
	}
	return e.snapshot.removeGroup(g) || found
}

func (e *Engine) lookupGroup(id string) *domain.Group {
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		if g := t.findGroup(id); g != nil {
			return g
		}
	}
	return e.snapshot.findGroup(id)
}

func (e *Engine) lookupAnimator(id string) *domain.Animator {
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		if a := t.findAnimator(id); a != nil {
			return a
		}
	}
	return e.snapshot.findAnimator(id)
}

// settleAnimator keeps the animator lanes consistent after a removal: an
// emptied animator disappears, and a queued animator with nothing left to
// draw is committed.
func (e *Engine) settleAnimator(ctx context.Context, id string) {
	a := e.lookupAnimator(id)
	if a == nil {
		return
	}
	if len(a.Steps) == 0 {
		for _, t := range []*tier{e.steps, e.instant, e.helper} {
			t.removeAnimator(a)
		}
		e.snapshot.removeAnimator(a)
		delete(e.known, a.ID())
		return
	}
	if a.State() != domain.AnimatorDone || a.Committed {
		return
	}
	for _, t := range []*tier{e.steps, e.instant, e.helper} {
		t.removeAnimator(a)
	}
	a.Committed = true
	e.snapshot.animators = append(e.snapshot.animators, a)
	a.FireSideEffect()
	e.publish(ctx, domain.NewEvent(domain.EventAnimatorDraw, a.ID()))
}
