package terminal

import (
	"io"
	"math"
	"strings"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/shapes"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

type cell struct {
	r     rune
	color colorful.Color
	set   bool
}

// Renderer implements ports.Renderer on a character-cell canvas.
// Shapes are rasterized into cells during the frame and the canvas is
// flushed with termenv on EndFrame when something changed.
type Renderer struct {
	out    *termenv.Output
	width  int
	height int
	cells  []cell

	frames int
	paused bool
	dirty  bool
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithOutput replaces the termenv output, e.g. to force a color profile.
func WithOutput(o *termenv.Output) Option {
	return func(r *Renderer) {
		r.out = o
	}
}

// New creates a renderer writing to w with the given surface size.
func New(w io.Writer, width, height int, opts ...Option) *Renderer {
	r := &Renderer{out: termenv.NewOutput(w)}
	for _, opt := range opts {
		opt(r)
	}
	r.Resize(width, height)
	return r
}

// Draw rasterizes the figure's shape. Unknown shapes are ignored.
func (r *Renderer) Draw(f *domain.Figure) {
	r.dirty = true
	switch s := f.Shape.(type) {
	case *shapes.Dot:
		r.plot(s.At.X, s.At.Y, s.Mark(), s.Color)
	case *shapes.Line:
		r.line(s.From, s.To, s.Mark(), s.Color)
	case *shapes.Rect:
		r.rect(s)
	case *shapes.Circle:
		r.circle(s)
	case *shapes.Label:
		x, y := int(math.Round(s.At.X)), int(math.Round(s.At.Y))
		for i, ch := range []rune(s.Text) {
			r.set(x+i, y, ch, s.Color)
		}
	}
}

// BeginFrame advances the frame counter.
func (r *Renderer) BeginFrame() { r.frames++ }

// EndFrame flushes the canvas when it changed.
func (r *Renderer) EndFrame() {
	if !r.dirty {
		return
	}
	r.dirty = false
	r.flush()
}

// FrameCount returns the number of frames begun.
func (r *Renderer) FrameCount() int { return r.frames }

func (r *Renderer) Pause()       { r.paused = true }
func (r *Renderer) Resume()      { r.paused = false }
func (r *Renderer) Paused() bool { return r.paused }

// Clear blanks the canvas.
func (r *Renderer) Clear() {
	clear(r.cells)
	r.dirty = true
}

// Resize reallocates the canvas; previous content is lost.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = max(1, width), max(1, height)
	r.cells = make([]cell, r.width*r.height)
	r.dirty = true
	r.out.ClearScreen()
}

// Size returns the canvas dimensions.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Lines returns the canvas as plain text, one string per row.
func (r *Renderer) Lines() []string {
	lines := make([]string, r.height)
	for y := range r.height {
		var sb strings.Builder
		for x := range r.width {
			c := r.cells[y*r.width+x]
			if c.set {
				sb.WriteRune(c.r)
			} else {
				sb.WriteByte(' ')
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

func (r *Renderer) flush() {
	r.out.MoveCursor(1, 1)
	for y := range r.height {
		var sb strings.Builder
		for x := range r.width {
			c := r.cells[y*r.width+x]
			if !c.set {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(r.out.String(string(c.r)).Foreground(r.out.Color(c.color.Clamped().Hex())).String())
		}
		if y < r.height-1 {
			sb.WriteString("\r\n")
		}
		io.WriteString(r.out, sb.String())
	}
}

func (r *Renderer) set(x, y int, ch rune, c colorful.Color) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.cells[y*r.width+x] = cell{r: ch, color: c, set: true}
}

func (r *Renderer) plot(x, y float64, ch rune, c colorful.Color) {
	r.set(int(math.Round(x)), int(math.Round(y)), ch, c)
}

func (r *Renderer) line(from, to shapes.Point, ch rune, c colorful.Color) {
	n := int(math.Ceil(math.Max(math.Abs(to.X-from.X), math.Abs(to.Y-from.Y))))
	if n == 0 {
		r.plot(from.X, from.Y, ch, c)
		return
	}
	for i := 0; i <= n; i++ {
		p := from.Lerp(to, float64(i)/float64(n))
		r.plot(p.X, p.Y, ch, c)
	}
}

func (r *Renderer) rect(s *shapes.Rect) {
	x0, y0 := int(math.Round(s.Min.X)), int(math.Round(s.Min.Y))
	w, h := int(math.Round(s.W)), int(math.Round(s.H))
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			edge := x == x0 || y == y0 || x == x0+w-1 || y == y0+h-1
			if s.Fill || edge {
				r.set(x, y, s.Mark(), s.Color)
			}
		}
	}
}

func (r *Renderer) circle(s *shapes.Circle) {
	if s.R <= 0 {
		r.plot(s.Center.X, s.Center.Y, s.Mark(), s.Color)
		return
	}
	for y := int(math.Floor(s.Center.Y - s.R)); y <= int(math.Ceil(s.Center.Y+s.R)); y++ {
		for x := int(math.Floor(s.Center.X - s.R)); x <= int(math.Ceil(s.Center.X+s.R)); x++ {
			d := math.Hypot(float64(x)-s.Center.X, float64(y)-s.Center.Y)
			if (s.Fill && d < s.R+0.5) || math.Abs(d-s.R) < 0.5 {
				r.set(x, y, s.Mark(), s.Color)
			}
		}
	}
}
