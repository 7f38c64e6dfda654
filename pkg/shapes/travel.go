package shapes

import (
	"math"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// Tween is a frame-based travel. Each Step advances progress by speed/frames
// and applies the eased value to the shape.
type Tween struct {
	frames   float64
	ease     EaseFunc
	progress float64
	apply    func(t float64)
}

func newTween(frames int, e EaseFunc, apply func(t float64)) *Tween {
	if e == nil {
		e = ease.Linear
	}
	return &Tween{frames: float64(max(1, frames)), ease: e, apply: apply}
}

// Step implements domain.Travelable.
func (t *Tween) Step(speed float64) bool {
	t.progress = math.Min(1, t.progress+speed/t.frames)
	t.apply(t.ease(t.progress))
	return t.progress >= 1
}

// Reset implements domain.Travelable.
func (t *Tween) Reset() {
	t.progress = 0
	t.apply(0)
}

// Complete implements domain.Travelable.
func (t *Tween) Complete() {
	t.progress = 1
	t.apply(1)
}

// Progress returns the linear progress in [0, 1].
func (t *Tween) Progress() float64 { return t.progress }

// Move slides s from its current position to `to`.
func Move(s Movable, to Point, frames int, e EaseFunc) *Tween {
	from := s.Position()
	return newTween(frames, e, func(t float64) {
		s.MoveTo(from.Lerp(to, t))
	})
}

// Grow scales s from `from` to its current size. The shape is set to the
// starting size right away so that it is drawn that way until the travel runs.
func Grow(s Sizable, from float64, frames int, e EaseFunc) *Tween {
	to := s.Size()
	s.Resize(from)
	return newTween(frames, e, func(t float64) {
		s.Resize(from + (to-from)*t)
	})
}

// Fade blends the colour of s towards `to` in Lab space.
func Fade(s Colored, to colorful.Color, frames int, e EaseFunc) *Tween {
	from := s.Colour()
	return newTween(frames, e, func(t float64) {
		s.Recolor(from.BlendLab(to, t).Clamped())
	})
}

// Parallel runs several travels in lock step.
type Parallel struct {
	travels []domain.Travelable
	done    []bool
}

// Together combines travels; it finishes when every one of them has.
func Together(travels ...domain.Travelable) *Parallel {
	return &Parallel{travels: travels, done: make([]bool, len(travels))}
}

// Step implements domain.Travelable.
func (p *Parallel) Step(speed float64) bool {
	finished := true
	for i, t := range p.travels {
		if !p.done[i] {
			p.done[i] = t.Step(speed)
		}
		finished = finished && p.done[i]
	}
	return finished
}

// Reset implements domain.Travelable.
func (p *Parallel) Reset() {
	for i, t := range p.travels {
		t.Reset()
		p.done[i] = false
	}
}

// Complete implements domain.Travelable.
func (p *Parallel) Complete() {
	for i, t := range p.travels {
		t.Complete()
		p.done[i] = true
	}
}
