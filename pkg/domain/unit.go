package domain

// Kind identifies the composite level of a unit.
type Kind string

const (
	KindFigure   Kind = "figure"
	KindGroup    Kind = "group"
	KindAnimator Kind = "animator"
)

// Shape is the opaque payload a Renderer knows how to draw.
// The engine never looks inside it.
type Shape interface {
	ShapeKind() string
}

// Base holds the bookkeeping shared by every unit kind.
type Base struct {
	id    string
	order uint64

	// Committed is true once the unit has been rendered and logged.
	Committed bool

	// RunSideEffect enables SideEffect on the first commit.
	RunSideEffect bool
	SideEffect    func()
	fired         bool
}

func newBase(kind Kind, id string) Base {
	if id == "" {
		id = NewID(string(kind))
	}
	return Base{id: id, order: NextOrder()}
}

// ID returns the display id.
func (b *Base) ID() string { return b.id }

// Order returns the creation order.
func (b *Base) Order() uint64 { return b.order }

// FireSideEffect runs the side effect at most once until ResetFlags is called.
// It reports whether the callback actually ran.
func (b *Base) FireSideEffect() bool {
	if !b.RunSideEffect || b.SideEffect == nil || b.fired {
		return false
	}
	b.fired = true
	b.SideEffect()
	return true
}

// SideEffectFired reports whether the side effect already ran.
func (b *Base) SideEffectFired() bool { return b.fired }

func (b *Base) resetBase() {
	b.Committed = false
	b.fired = false
}

// Figure is a leaf drawable primitive.
type Figure struct {
	Base

	Shape Shape

	// GroupID and AnimatorID are back references to the enclosing units.
	GroupID    string
	AnimatorID string

	Checkpoint bool

	// ShouldTravel gates the Travel; it is cleared once the travel completes.
	ShouldTravel bool
	Travel       Travelable
}

// NewFigure creates a figure. An empty id is replaced by a generated one.
func NewFigure(id string, shape Shape) *Figure {
	return &Figure{Base: newBase(KindFigure, id), Shape: shape}
}

// WithTravel attaches and arms a travel.
func (f *Figure) WithTravel(t Travelable) *Figure {
	f.Travel = t
	f.ShouldTravel = t != nil
	return f
}

// Travelling reports whether the figure must travel before it can be committed.
func (f *Figure) Travelling() bool {
	return f.ShouldTravel && f.Travel != nil
}

// Rearm rewinds the travel and enables it again.
func (f *Figure) Rearm() {
	if f.Travel == nil {
		return
	}
	f.Travel.Reset()
	f.ShouldTravel = true
}

// ResetFlags clears commit, side-effect and travel progress.
func (f *Figure) ResetFlags() {
	f.resetBase()
	f.Rearm()
}

// Figures implements Step.
func (f *Figure) Figures() []*Figure { return []*Figure{f} }

// Group is an ordered bundle of figures drawn and committed atomically.
type Group struct {
	Base

	AnimatorID string
	Members    []*Figure
}

// NewGroup creates a group and propagates its id to every member.
func NewGroup(id string, members ...*Figure) *Group {
	g := &Group{Base: newBase(KindGroup, id), Members: members}
	for _, m := range members {
		m.GroupID = g.id
	}
	return g
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.Members) }

// Figures implements Step.
func (g *Group) Figures() []*Figure { return g.Members }

// Travelling reports whether any member still has to travel.
func (g *Group) Travelling() bool {
	for _, m := range g.Members {
		if m.Travelling() {
			return true
		}
	}
	return false
}

// ResetFlags resets the group and all of its members.
func (g *Group) ResetFlags() {
	g.resetBase()
	for _, m := range g.Members {
		m.ResetFlags()
	}
}

// RemoveMember detaches the member with the given id.
func (g *Group) RemoveMember(id string) bool {
	for i, m := range g.Members {
		if m.ID() == id {
			g.Members = append(g.Members[:i:i], g.Members[i+1:]...)
			m.GroupID = ""
			return true
		}
	}
	return false
}

// Step is one child of an Animator: a *Figure or a *Group.
type Step interface {
	ID() string
	Figures() []*Figure
}

// AnimatorState is the position of an Animator in its own sub-timeline.
type AnimatorState int

const (
	AnimatorPending AnimatorState = iota
	AnimatorRunning
	AnimatorDone
)

func (s AnimatorState) String() string {
	switch s {
	case AnimatorPending:
		return "pending"
	case AnimatorRunning:
		return "running"
	default:
		return "done"
	}
}

// Animator is an ordered sub-timeline of figures and groups.
// It advances one step per outer tick and ends in an explicit Done state.
type Animator struct {
	Base

	Steps  []Step
	cursor int
}

// NewAnimator creates an animator and propagates its id to every leaf and group.
func NewAnimator(id string, steps ...Step) *Animator {
	a := &Animator{Base: newBase(KindAnimator, id), Steps: steps}
	for _, s := range steps {
		if g, ok := s.(*Group); ok {
			g.AnimatorID = a.id
		}
		for _, f := range s.Figures() {
			f.AnimatorID = a.id
		}
	}
	return a
}

// State derives the state machine position from the cursor.
func (a *Animator) State() AnimatorState {
	switch {
	case a.cursor >= len(a.Steps):
		return AnimatorDone
	case a.cursor == 0:
		return AnimatorPending
	default:
		return AnimatorRunning
	}
}

// Cursor returns the index of the next step to draw.
func (a *Animator) Cursor() int { return a.cursor }

// Current returns the step under the cursor, or nil once done.
func (a *Animator) Current() Step {
	if a.cursor >= len(a.Steps) {
		return nil
	}
	return a.Steps[a.cursor]
}

// Advance moves past the current step and reports whether the animator is done.
func (a *Animator) Advance() bool {
	if a.cursor < len(a.Steps) {
		a.cursor++
	}
	return a.cursor >= len(a.Steps)
}

// Back moves the cursor one step back. It is a no-op when pending.
func (a *Animator) Back() {
	if a.cursor > 0 {
		a.cursor--
	}
}

// Rewind returns the animator to Pending.
func (a *Animator) Rewind() { a.cursor = 0 }

// SeekTo places the cursor on the given step index.
func (a *Animator) SeekTo(i int) {
	switch {
	case i < 0:
		i = 0
	case i > len(a.Steps):
		i = len(a.Steps)
	}
	a.cursor = i
}

// IndexOf returns the index of the step containing the figure, or -1.
func (a *Animator) IndexOf(f *Figure) int {
	for i, s := range a.Steps {
		for _, m := range s.Figures() {
			if m == f {
				return i
			}
		}
	}
	return -1
}

// Figures flattens every leaf in authoring order.
func (a *Animator) Figures() []*Figure {
	var out []*Figure
	for _, s := range a.Steps {
		out = append(out, s.Figures()...)
	}
	return out
}

// Groups returns the nested groups in authoring order.
func (a *Animator) Groups() []*Group {
	var out []*Group
	for _, s := range a.Steps {
		if g, ok := s.(*Group); ok {
			out = append(out, g)
		}
	}
	return out
}

// RemoveStep drops a step, keeping the cursor on the same logical position.
func (a *Animator) RemoveStep(id string) bool {
	for i, s := range a.Steps {
		if s.ID() != id {
			continue
		}
		a.Steps = append(a.Steps[:i:i], a.Steps[i+1:]...)
		if i < a.cursor {
			a.cursor--
		}
		return true
	}
	return false
}

// ResetFlags resets the animator, its cursor and every child.
func (a *Animator) ResetFlags() {
	a.resetBase()
	a.cursor = 0
	for _, s := range a.Steps {
		switch v := s.(type) {
		case *Figure:
			v.ResetFlags()
		case *Group:
			v.ResetFlags()
		}
	}
}

// AddOptions carries the flags accepted by the Add* control operations.
type AddOptions struct {
	// Instant routes the unit to the instant tier, drained on the next tick.
	Instant bool
	// Checkpoint flags the unit's first leaf as a checkpoint.
	Checkpoint bool
	// RunSideEffect enables the unit's side effect on first commit.
	RunSideEffect bool
}
