package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	VisitedNodes []lattice.NodeID
	CurrentNode  lattice.NodeID
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a graph.
// It applies semantic styling by connectivity:
// - Pure producer (no input slots): ((Circle))
// - Pure consumer (no output slots): [[Subroutine]]
// - Default: [Rectangle]
// Edges are labeled with the slot names on both ends. Overlay styles
// (Visited/Current) are applied if provided.
func GenerateMermaid(g *lattice.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for id := lattice.NodeID(1); int(id) <= g.NodeCount(); id++ {
		// Node shape based on connectivity
		opener, closer := "[", "]"
		switch {
		case len(g.InputSlots(id)) == 0:
			opener, closer = "((", "))" // Circle
		case len(g.OutputSlots(id)) == 0:
			opener, closer = "[[", "]]" // Subroutine
		}

		label := fmt.Sprintf("%s #%d", lattice.NodeKind(g.Node(id)), uint32(id))
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(id), opener, label, closer))

		// Edges, drawn from the producing side. An output may still list an
		// input that has since been re-linked elsewhere; those stale claims
		// are rendered too, since they are part of the link state.
		for _, out := range g.OutputSlots(id) {
			from := g.Slot(out)
			for _, target := range from.Links() {
				to := g.Slot(target)
				sb.WriteString(fmt.Sprintf("    %s -- \"%s → %s\" --> %s\n",
					mermaidID(id), from.Name(), to.Name(), mermaidID(to.Node())))
			}
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[lattice.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			if !id.IsValid() || int(id) > g.NodeCount() || visitedSet[id] {
				continue
			}
			visitedSet[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(id)))
		}

		if overlay.CurrentNode.IsValid() && int(overlay.CurrentNode) <= g.NodeCount() {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func mermaidID(id lattice.NodeID) string {
	return fmt.Sprintf("n%d", uint32(id))
}
