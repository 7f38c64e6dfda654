package ports

import (
	"testing"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type contractShape struct{}

func (contractShape) ShapeKind() string { return "contract" }

// RunRendererContract runs a suite of tests to verify that a Renderer implementation
// adheres to the defined interface contract.
func RunRendererContract(t *testing.T, r Renderer) {
	t.Run("Frame counter", func(t *testing.T) {
		start := r.FrameCount()
		r.BeginFrame()
		r.EndFrame()
		r.BeginFrame()
		r.EndFrame()
		assert.Equal(t, start+2, r.FrameCount(), "BeginFrame should advance the frame counter")
	})

	t.Run("Pause and Resume", func(t *testing.T) {
		r.Pause()
		assert.True(t, r.Paused())
		r.Pause()
		assert.True(t, r.Paused(), "Pause should be idempotent")
		r.Resume()
		assert.False(t, r.Paused())
	})

	t.Run("Draw, Clear and Resize", func(t *testing.T) {
		assert.NotPanics(t, func() {
			r.BeginFrame()
			r.Draw(domain.NewFigure("", contractShape{}))
			r.Draw(domain.NewFigure("", nil))
			r.Clear()
			r.Resize(8, 4)
			r.EndFrame()
		})
	})
}
