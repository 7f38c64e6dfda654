package shapes

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shape kinds reported by ShapeKind.
const (
	KindDot    = "dot"
	KindLine   = "line"
	KindRect   = "rect"
	KindCircle = "circle"
	KindLabel  = "label"
)

// Point is a position on the surface, in cells.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Style is shared by every shape.
type Style struct {
	Color colorful.Color
	Glyph rune
}

// Colour returns the current colour.
func (s *Style) Colour() colorful.Color { return s.Color }

// Recolor sets the colour.
func (s *Style) Recolor(c colorful.Color) { s.Color = c }

// Mark returns the glyph used to paint cells, defaulting to a full block.
func (s *Style) Mark() rune {
	if s.Glyph == 0 {
		return '█'
	}
	return s.Glyph
}

// Movable shapes have an anchor point.
type Movable interface {
	Position() Point
	MoveTo(Point)
}

// Sizable shapes have a single scalar size.
type Sizable interface {
	Size() float64
	Resize(float64)
}

// Colored shapes carry a colour.
type Colored interface {
	Colour() colorful.Color
	Recolor(colorful.Color)
}

// Dot is a single cell.
type Dot struct {
	Style
	At Point
}

func (d *Dot) ShapeKind() string { return KindDot }
func (d *Dot) Position() Point   { return d.At }
func (d *Dot) MoveTo(p Point)    { d.At = p }

// Line joins two points. Its size is its length; resizing keeps From and the direction.
type Line struct {
	Style
	From, To Point
}

func (l *Line) ShapeKind() string { return KindLine }
func (l *Line) Position() Point   { return l.From }

// MoveTo translates both ends.
func (l *Line) MoveTo(p Point) {
	dx, dy := p.X-l.From.X, p.Y-l.From.Y
	l.From = p
	l.To = Point{X: l.To.X + dx, Y: l.To.Y + dy}
}

func (l *Line) Size() float64 {
	return math.Hypot(l.To.X-l.From.X, l.To.Y-l.From.Y)
}

// Resize sets the length. A zero-length line has no direction and grows to the right.
func (l *Line) Resize(n float64) {
	cur := l.Size()
	if cur == 0 {
		l.To = Point{X: l.From.X + n, Y: l.From.Y}
		return
	}
	l.To = l.From.Lerp(l.To, n/cur)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Its size is its width; resizing keeps the aspect ratio.
type Rect struct {
	Style
	Min  Point
	W, H float64
	Fill bool
}

func (r *Rect) ShapeKind() string { return KindRect }
func (r *Rect) Position() Point   { return r.Min }
func (r *Rect) MoveTo(p Point)    { r.Min = p }
func (r *Rect) Size() float64     { return r.W }

func (r *Rect) Resize(w float64) {
	if r.W != 0 {
		r.H = r.H * w / r.W
	}
	r.W = w
}

// Circle is centred on Center.
type Circle struct {
	Style
	Center Point
	R      float64
	Fill   bool
}

func (c *Circle) ShapeKind() string { return KindCircle }
func (c *Circle) Position() Point   { return c.Center }
func (c *Circle) MoveTo(p Point)    { c.Center = p }
func (c *Circle) Size() float64     { return c.R }
func (c *Circle) Resize(r float64)  { c.R = r }

// Label is a line of text starting at At.
type Label struct {
	Style
	At   Point
	Text string
}

func (l *Label) ShapeKind() string { return KindLabel }
func (l *Label) Position() Point   { return l.At }
func (l *Label) MoveTo(p Point)    { l.At = p }
