package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestMemoryRenderer_Contract(t *testing.T) {
	ports.RunRendererContract(t, memory.NewRenderer())
}

func TestMemoryRenderer_Visible(t *testing.T) {
	r := memory.NewRenderer()
	a := domain.NewFigure("a", nil)
	b := domain.NewFigure("b", nil)

	r.Draw(a)
	r.Draw(b)
	r.Draw(a)
	assert.Equal(t, []string{"a", "b"}, r.Visible())
	assert.Equal(t, 3, r.Draws())

	r.Clear()
	assert.Empty(t, r.Visible())
}

func TestMemoryBus_Fanout(t *testing.T) {
	b1 := memory.NewBus()
	b2 := memory.NewBus()
	var seen []string
	b2.Subscribe(func(e domain.Event) { seen = append(seen, e.UnitID) })

	bus := ports.Fanout(b1, nil, b2)
	err := bus.Publish(context.Background(), domain.NewEvent(domain.EventFigureDraw, "f1"))
	assert.NoError(t, err)

	assert.Equal(t, []string{"f1"}, b1.Of(domain.EventFigureDraw))
	assert.Len(t, b2.Events(), 1)
	assert.Equal(t, []string{"f1"}, seen)
}
