package runtime

import (
	"context"

	"github.com/aretw0/stepline/pkg/domain"
)

// LoadNextCheckpoint skips forward, without drawing, until the head of the
// active tier is a checkpoint figure, then repaints once and resumes.
// It returns false when no checkpoint lies ahead; pending instant units are
// committed either way.
func (e *Engine) LoadNextCheckpoint(ctx context.Context) (string, bool) {
	t := e.activeTier()
	e.drainInstant(ctx)
	if !e.checkpointAhead(t) {
		return "", false
	}

	e.pause(ctx)
	e.completeTravel(true)

	for {
		e.runner(ctx, t, pass{forced: true, skip: true})
		head := t.head()
		if head == nil {
			break
		}
		if head.Checkpoint {
			e.ReDrawAll()
			e.resume(ctx)
			e.logger.DebugContext(ctx, "seeked forward", "checkpoint", head.ID())
			return head.ID(), true
		}
	}
	e.ReDrawAll()
	e.resume(ctx)
	return "", false
}

// checkpointAhead reports whether a checkpoint figure follows the next unit
// to be drawn. An in-flight travel counts as that next unit.
func (e *Engine) checkpointAhead(t *tier) bool {
	start := 1
	if e.traveller != nil {
		start = 0
	}
	for i := start; i < len(t.figures); i++ {
		if t.figures[i].Checkpoint {
			return true
		}
	}
	return false
}

// LoadPreviousCheckpoint rewinds the snapshot until the most recent usable
// checkpoint figure is back at the head of the active tier.
// It returns false when no checkpoint has been committed.
func (e *Engine) LoadPreviousCheckpoint(ctx context.Context) (string, bool) {
	for _, f := range e.completeTravel(true) {
		f.Rearm()
	}

	target := e.popCheckpointTarget()
	if target == nil {
		return "", false
	}
	e.pause(ctx)

	t := e.activeTier()
	e.rollbackPartialAnimator(t)
	e.rewindTo(t, target)

	e.ReDrawAll()
	e.resume(ctx)
	e.logger.DebugContext(ctx, "seeked backward", "checkpoint", target.ID(), "snapshot_len", len(e.snapshot.figures))
	return target.ID(), true
}

// popCheckpointTarget pops checkpoint ids until one is committed and not
// owned by an animator that is still running. Skipped ids are discarded:
// their figures go back to the queue with the partial animator run.
func (e *Engine) popCheckpointTarget() *domain.Figure {
	for {
		id, ok := e.snapshot.popCheckpoint()
		if !ok {
			return nil
		}
		f := e.snapshot.findFigure(id)
		if f == nil {
			continue
		}
		if f.AnimatorID != "" && !e.snapshot.hasAnimator(f.AnimatorID) {
			continue
		}
		return f
	}
}

// rollbackPartialAnimator returns the trailing run of an unfinished animator
// to the queue and rewinds its cursor. Only the animator whose id matches the
// trailing snapshot figure is touched.
func (e *Engine) rollbackPartialAnimator(t *tier) {
	tail := e.snapshot.lastFigure()
	if tail == nil || tail.AnimatorID == "" || e.snapshot.hasAnimator(tail.AnimatorID) {
		return
	}
	id := tail.AnimatorID
	a := t.findAnimator(id)
	if a == nil {
		a = e.steps.findAnimator(id)
	}

	for f := e.snapshot.lastFigure(); f != nil && f.AnimatorID == id; f = e.snapshot.lastFigure() {
		e.snapshot.popFigure()
		e.restoreFigure(f)
		t.unshiftFigures(f)
	}
	for g := e.snapshot.lastGroup(); g != nil && g.AnimatorID == id; g = e.snapshot.lastGroup() {
		e.snapshot.popGroup()
		g.Committed = false
		t.unshiftGroup(g)
	}
	if a != nil {
		a.Rewind()
	}
}

// rewindTo pops snapshot figures back onto t until target is restored. A
// target inside a group pulls the whole group back. Groups and animators
// touched on the way are popped afterwards; a restored animator, committed
// or still queued, resumes at the step holding its earliest restored figure.
func (e *Engine) rewindTo(t *tier, target *domain.Figure) {
	groups := make(map[string]struct{})
	earliest := make(map[string]*domain.Figure)

	restore := func(f *domain.Figure) {
		e.snapshot.popFigure()
		e.restoreFigure(f)
		t.unshiftFigures(f)
		if f.GroupID != "" {
			groups[f.GroupID] = struct{}{}
		}
		if f.AnimatorID != "" {
			earliest[f.AnimatorID] = f
		}
	}

	for f := e.snapshot.lastFigure(); f != nil; f = e.snapshot.lastFigure() {
		restore(f)
		if f == target {
			break
		}
	}
	if target.GroupID != "" {
		for f := e.snapshot.lastFigure(); f != nil && f.GroupID == target.GroupID; f = e.snapshot.lastFigure() {
			restore(f)
		}
	}

	for g := e.snapshot.lastGroup(); g != nil; g = e.snapshot.lastGroup() {
		if _, ok := groups[g.ID()]; !ok {
			break
		}
		e.snapshot.popGroup()
		g.Committed = false
		t.unshiftGroup(g)
	}
	for a := e.snapshot.lastAnimator(); a != nil; a = e.snapshot.lastAnimator() {
		first, ok := earliest[a.ID()]
		if !ok {
			break
		}
		e.snapshot.popAnimator()
		a.Committed = false
		a.SeekTo(a.IndexOf(first))
		t.unshiftAnimator(a)
	}
	// Unfinished animators never reached the snapshot; their cursor still
	// points past the figures just restored.
	for id, first := range earliest {
		if e.snapshot.hasAnimator(id) {
			continue
		}
		a := t.findAnimator(id)
		if a == nil {
			a = e.steps.findAnimator(id)
		}
		if a != nil {
			a.SeekTo(a.IndexOf(first))
		}
	}
}
