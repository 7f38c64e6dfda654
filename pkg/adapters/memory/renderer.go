package memory

import (
	"slices"

	"github.com/aretw0/stepline/pkg/domain"
)

// Renderer implements ports.Renderer by recording draw calls.
// It keeps the ids visible since the last Clear, in draw order.
type Renderer struct {
	frames int
	paused bool

	Width  int
	Height int

	visible []string
	draws   int
	clears  int
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw records the figure id.
func (r *Renderer) Draw(f *domain.Figure) {
	r.draws++
	r.visible = append(r.visible, f.ID())
}

// BeginFrame advances the frame counter.
func (r *Renderer) BeginFrame() { r.frames++ }

// EndFrame is a no-op.
func (r *Renderer) EndFrame() {}

// FrameCount returns the number of frames begun.
func (r *Renderer) FrameCount() int { return r.frames }

// Pause stops the loop.
func (r *Renderer) Pause() { r.paused = true }

// Resume re-arms the loop.
func (r *Renderer) Resume() { r.paused = false }

// Paused reports whether the loop is stopped.
func (r *Renderer) Paused() bool { return r.paused }

// Clear forgets every visible id.
func (r *Renderer) Clear() {
	r.clears++
	r.visible = r.visible[:0]
}

// Resize stores the new dimensions and clears the surface.
func (r *Renderer) Resize(width, height int) {
	r.Width, r.Height = width, height
	r.Clear()
}

// Visible returns the ids drawn since the last Clear, de-duplicated, in first-draw order.
func (r *Renderer) Visible() []string {
	out := make([]string, 0, len(r.visible))
	for _, id := range r.visible {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Draws returns the total number of Draw calls.
func (r *Renderer) Draws() int { return r.draws }

// Clears returns the total number of Clear calls.
func (r *Renderer) Clears() int { return r.clears }
