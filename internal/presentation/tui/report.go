package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepline/pkg/scene"
)

// SceneReport summarizes a scene as markdown: one table row per unit, with
// nested group and animator members indented under their parent.
func SceneReport(sc *scene.Scene) string {
	var sb strings.Builder
	title := sc.Name
	if title == "" {
		title = "(unnamed scene)"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	var figures, checkpoints int
	sb.WriteString("| Unit | Kind | Shape | Travel | Flags |\n")
	sb.WriteString("|------|------|-------|--------|-------|\n")

	var walk func(u scene.UnitSpec, depth int)
	walk = func(u scene.UnitSpec, depth int) {
		name := strings.Repeat("· ", depth) + "`" + u.ID + "`"
		shape, travel := "", ""
		if u.Shape != nil {
			shape = u.Shape.Kind
			figures++
		}
		if u.Travel != nil {
			travel = u.Travel.Kind
			if u.Travel.Frames > 0 {
				travel = fmt.Sprintf("%s (%d frames)", travel, u.Travel.Frames)
			}
		}
		var flags []string
		if u.Checkpoint {
			flags = append(flags, "checkpoint")
			checkpoints++
		}
		if u.Instant {
			flags = append(flags, "instant")
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", name, u.UnitKind(), shape, travel, strings.Join(flags, ", "))

		for _, m := range u.Members {
			walk(m, depth+1)
		}
		for _, st := range u.Steps {
			walk(st, depth+1)
		}
	}
	for _, u := range sc.Units {
		walk(u, 0)
	}

	fmt.Fprintf(&sb, "\n**%d** units, **%d** figures, **%d** checkpoints.\n", len(sc.Units), figures, checkpoints)
	return sb.String()
}
