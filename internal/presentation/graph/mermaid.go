package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/scene"
)

// GraphOverlay contains playback state to visualize on the graph.
type GraphOverlay struct {
	Committed  []string
	Travelling []string
}

// OverlayFrom builds an overlay from an engine inspection.
func OverlayFrom(in domain.Inspection) *GraphOverlay {
	return &GraphOverlay{
		Committed:  in.Snapshot.Figures,
		Travelling: in.Travelling,
	}
}

// GenerateMermaid produces a Mermaid flowchart of a scene's timeline.
// It applies semantic styling:
// - Checkpoint: ((Circle))
// - Instant: [/Parallelogram/]
// - Default: [Rectangle]
// Groups and animators become subgraphs. Paced units are chained in play
// order; animator steps are chained with dotted arrows.
// It also applies overlay styles (Committed/Travelling) if provided.
func GenerateMermaid(sc *scene.Scene, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	prev := ""
	for _, u := range sc.Units {
		writeUnit(&sb, u, "    ")
		if u.Instant {
			continue
		}
		id := sanitizeMermaidID(u.ID)
		if prev != "" {
			fmt.Fprintf(&sb, "    %s --> %s\n", prev, id)
		}
		prev = id
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef committed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef travelling fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Committed {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s committed;\n", safeID)
			}
		}
		for _, id := range overlay.Travelling {
			fmt.Fprintf(&sb, "    class %s travelling;\n", sanitizeMermaidID(id))
		}
	}

	return sb.String()
}

func writeUnit(sb *strings.Builder, u scene.UnitSpec, indent string) {
	safeID := sanitizeMermaidID(u.ID)
	switch u.UnitKind() {
	case scene.KindGroup:
		fmt.Fprintf(sb, "%ssubgraph %s[\"group %s\"]\n", indent, safeID, u.ID)
		for _, m := range u.Members {
			writeUnit(sb, m, indent+"    ")
		}
		fmt.Fprintf(sb, "%send\n", indent)
	case scene.KindAnimator:
		fmt.Fprintf(sb, "%ssubgraph %s[\"animator %s\"]\n", indent, safeID, u.ID)
		for i, st := range u.Steps {
			writeUnit(sb, st, indent+"    ")
			if i > 0 {
				fmt.Fprintf(sb, "%s    %s -.-> %s\n", indent, sanitizeMermaidID(u.Steps[i-1].ID), sanitizeMermaidID(st.ID))
			}
		}
		fmt.Fprintf(sb, "%send\n", indent)
	default:
		opener, closer := "[", "]"
		switch {
		case u.Checkpoint:
			opener, closer = "((", "))"
		case u.Instant:
			opener, closer = "[/", "/]"
		}
		label := u.ID
		if u.Travel != nil {
			label = fmt.Sprintf("%s <br/> %s", u.ID, u.Travel.Kind)
		}
		fmt.Fprintf(sb, "%s%s%s\"%s\"%s\n", indent, safeID, opener, label, closer)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
