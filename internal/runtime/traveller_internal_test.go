package runtime

import (
	"testing"

	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type countdown struct{ left int }

func (c *countdown) Step(float64) bool { c.left--; return c.left <= 0 }
func (c *countdown) Reset()            {}
func (c *countdown) Complete()         { c.left = 0 }

func TestTraveller_Gate(t *testing.T) {
	r := memory.NewRenderer()
	a := domain.NewFigure("a", nil).WithTravel(&countdown{left: 1})
	b := domain.NewFigure("b", nil).WithTravel(&countdown{left: 2})
	tr := newTraveller(a, domain.NewGroup("g", a, b))

	assert.False(t, tr.draw(1, r), "one of two members finished")
	assert.True(t, tr.travelling())
	assert.True(t, tr.draw(1, r))
	assert.False(t, tr.travelling())
	assert.Equal(t, 4, r.Draws(), "every member is painted on every frame")
}

func TestTraveller_CompleteSkipsDraw(t *testing.T) {
	r := memory.NewRenderer()
	c := &countdown{left: 9}
	f := domain.NewFigure("f", nil).WithTravel(c)
	tr := newTraveller(f, nil)

	tr.complete(true, r)
	assert.Equal(t, 0, c.left)
	assert.False(t, tr.travelling())
	assert.Equal(t, 0, r.Draws())

	tr.complete(false, r)
	assert.Equal(t, 1, r.Draws())
}
