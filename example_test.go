package stepline_test

import (
	"context"
	"fmt"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/shapes"
)

// ExampleNew shows a timeline stepped by hand instead of by Run.
func ExampleNew() {
	ctx := context.Background()
	r := memory.NewRenderer()
	eng := stepline.New(r)

	title := domain.NewFigure("title", &shapes.Label{Text: "hello"})
	axis := domain.NewFigure("axis", &shapes.Line{To: shapes.Point{X: 10}})
	tick := domain.NewFigure("tick", &shapes.Dot{At: shapes.Point{X: 5}})

	_ = eng.AddFigure(ctx, title, domain.AddOptions{Checkpoint: true})
	_ = eng.AddGroup(ctx, domain.NewGroup("chart", axis, tick), domain.AddOptions{})

	_ = eng.StepNext(ctx)
	_ = eng.StepNext(ctx)
	fmt.Println(r.Visible())

	_ = eng.StepBack(ctx)
	fmt.Println(r.Visible())
	// Output:
	// [title axis tick]
	// [title]
}
