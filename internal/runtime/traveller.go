package runtime

import (
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/ports"
)

// traveller drives one in-flight interpolation: a single figure, or a group
// whose travelling members must all finish before the group is released.
type traveller struct {
	figure *domain.Figure
	group  *domain.Group
	done   map[*domain.Figure]bool
}

func newTraveller(f *domain.Figure, g *domain.Group) *traveller {
	return &traveller{figure: f, group: g, done: make(map[*domain.Figure]bool)}
}

func (tr *traveller) figures() []*domain.Figure {
	if tr.group != nil {
		return tr.group.Members
	}
	return []*domain.Figure{tr.figure}
}

// travelling reports whether any travelling member has yet to finish.
func (tr *traveller) travelling() bool {
	for _, f := range tr.figures() {
		if f.Travelling() && !tr.done[f] {
			return true
		}
	}
	return false
}

// draw steps every unfinished member and paints all members.
// Non-travelling members are drawn as they are and never gate completion.
func (tr *traveller) draw(speed float64, r ports.Renderer) bool {
	for _, f := range tr.figures() {
		if f.Travelling() && !tr.done[f] && f.Travel.Step(speed) {
			tr.done[f] = true
		}
	}
	for _, f := range tr.figures() {
		r.Draw(f)
	}
	return !tr.travelling()
}

// complete finishes every member synchronously.
func (tr *traveller) complete(skipDraw bool, r ports.Renderer) {
	for _, f := range tr.figures() {
		if f.Travelling() && !tr.done[f] {
			f.Travel.Complete()
			tr.done[f] = true
		}
	}
	if skipDraw {
		return
	}
	for _, f := range tr.figures() {
		r.Draw(f)
	}
}

// settleTravel finishes a unit in place, used by forced passes.
func settleTravel(head *domain.Figure, g *domain.Group) {
	fs := []*domain.Figure{head}
	if g != nil {
		fs = g.Members
	}
	for _, f := range fs {
		if f.Travelling() {
			f.Travel.Complete()
		}
		f.ShouldTravel = false
	}
}

// startTravel lifts the unit out of the queue and runs its first increment.
func (e *Engine) startTravel(t *tier, head *domain.Figure, g *domain.Group) {
	if g != nil {
		t.dropFigures(g.Len())
		t.popGroup()
	} else {
		t.dropFigures(1)
	}
	e.traveller = newTraveller(head, g)
	e.advanceTravel()
}

func (e *Engine) advanceTravel() {
	tr := e.traveller
	if tr == nil {
		return
	}
	e.renderer.Clear()
	e.drawSnapshot()
	if tr.draw(e.speed, e.renderer) {
		e.finishTravel()
	}
}

// finishTravel hands the unit back to the front of the active tier with
// travel disabled, so the ordinary runner commits it on the next step.
func (e *Engine) finishTravel() []*domain.Figure {
	tr := e.traveller
	if tr == nil {
		return nil
	}
	e.traveller = nil

	fs := tr.figures()
	for _, f := range fs {
		f.ShouldTravel = false
	}
	t := e.activeTier()
	if tr.group != nil {
		t.unshiftGroup(tr.group)
	}
	t.unshiftFigures(fs...)
	return fs
}

// completeTravel force-finishes the in-flight travel, bypassing frame pacing.
// It returns the figures that went back to the queue.
func (e *Engine) completeTravel(skipDraw bool) []*domain.Figure {
	if e.traveller == nil {
		return nil
	}
	e.traveller.complete(skipDraw, e.renderer)
	return e.finishTravel()
}
