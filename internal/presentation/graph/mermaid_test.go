package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/stepline/internal/presentation/graph"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		units    []scene.UnitSpec
		contains []string
		excludes []string
	}{
		{
			name: "Figure Shapes",
			units: []scene.UnitSpec{
				{ID: "cp", Checkpoint: true},
				{ID: "live", Instant: true},
				{ID: "plain"},
			},
			contains: []string{
				`cp(("cp"))`,
				`live[/"live"/]`,
				`plain["plain"]`,
				"cp --> plain",
			},
			excludes: []string{"--> live", "live -->"},
		},
		{
			name: "ID Sanitization",
			units: []scene.UnitSpec{
				{ID: "x.axis"},
				{ID: "hyphen-ated"},
			},
			contains: []string{
				`x_axis["x.axis"]`,
				`hyphen_ated["hyphen-ated"]`,
				"x_axis --> hyphen_ated",
			},
		},
		{
			name: "Travel Annotation",
			units: []scene.UnitSpec{
				{ID: "dot", Travel: &scene.TravelSpec{Kind: "move"}},
			},
			contains: []string{`dot["dot <br/> move"]`},
		},
		{
			name: "Group and Animator Subgraphs",
			units: []scene.UnitSpec{
				{Kind: scene.KindGroup, ID: "axes", Members: []scene.UnitSpec{{ID: "x"}, {ID: "y"}}},
				{Kind: scene.KindAnimator, ID: "pts", Steps: []scene.UnitSpec{
					{ID: "p1"},
					{Kind: scene.KindGroup, ID: "pair", Members: []scene.UnitSpec{{ID: "p2"}}},
				}},
			},
			contains: []string{
				`subgraph axes["group axes"]`,
				`        x["x"]`,
				`subgraph pts["animator pts"]`,
				`        subgraph pair["group pair"]`,
				"        p1 -.-> pair",
				"axes --> pts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(&scene.Scene{Units: tt.units}, nil)
			require.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	sc := &scene.Scene{Units: []scene.UnitSpec{{ID: "a"}, {ID: "b"}, {ID: "c-1"}}}
	overlay := graph.OverlayFrom(domain.Inspection{
		Snapshot:   domain.Lanes{Figures: []string{"a", "a", "b"}},
		Travelling: []string{"c-1"},
	})

	got := graph.GenerateMermaid(sc, overlay)
	assert.Contains(t, got, "classDef committed")
	assert.Equal(t, 1, strings.Count(got, "class a committed;"))
	assert.Contains(t, got, "class b committed;")
	assert.Contains(t, got, "class c_1 travelling;")
}
