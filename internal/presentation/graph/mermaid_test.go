package graph_test

import (
	"strings"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/expr"
	"github.com/aretw0/lattice/pkg/nodes"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*lattice.Graph, *graph.Overlay)
		contains []string
	}{
		{
			name: "Producer Shape",
			build: func() (*lattice.Graph, *graph.Overlay) {
				g := lattice.New()
				g.AddNode(nodes.NewAttribute(expr.Position)) // output only
				return g, nil
			},
			contains: []string{
				`n1(("AttributeNode #1"))`,
			},
		},
		{
			name: "Consumer and Default Shapes",
			build: func() (*lattice.Graph, *graph.Overlay) {
				g := lattice.New()
				g.AddNode(&sinkOnly{})     // inputs only
				g.AddNode(nodes.NewAdd())  // both directions
				return g, nil
			},
			contains: []string{
				`n1[["sinkOnly #1"]]`,
				`n2["AddNode #2"]`,
			},
		},
		{
			name: "Edge Labels",
			build: func() (*lattice.Graph, *graph.Overlay) {
				g := lattice.New()
				pos := g.AddNode(nodes.NewAttribute(expr.Position))
				sum := g.AddNode(nodes.NewAdd())
				out, _ := g.OutputSlot(pos, "position")
				in, _ := g.InputSlot(sum, "lhs")
				g.Link(out, in)
				return g, nil
			},
			contains: []string{
				`n1 -- "position → lhs" --> n2`,
			},
		},
		{
			name: "Overlay Styles",
			build: func() (*lattice.Graph, *graph.Overlay) {
				g := lattice.New()
				g.AddNode(nodes.NewTime())
				g.AddNode(nodes.NewNormalize())
				overlay := &graph.Overlay{
					VisitedNodes: []lattice.NodeID{1, 1, 99}, // dupes and unknowns dropped
					CurrentNode:  2,
				}
				return g, overlay
			},
			contains: []string{
				"classDef visited",
				"classDef current",
				"class n1 visited;",
				"class n2 current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, overlay := tt.build()
			got := graph.GenerateMermaid(g, overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaidOverlaySkipsUnknown(t *testing.T) {
	g := lattice.New()
	g.AddNode(nodes.NewTime())

	got := graph.GenerateMermaid(g, &graph.Overlay{VisitedNodes: []lattice.NodeID{99}})
	if strings.Contains(got, "class n99") {
		t.Errorf("GenerateMermaid() styled a node that is not in the graph:\n%v", got)
	}
}

// sinkOnly is a test node with only input slots.
type sinkOnly struct{}

func (*sinkOnly) Slots() []lattice.SlotDef {
	return []lattice.SlotDef{lattice.Input("in", cty.NilType)}
}

func (*sinkOnly) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	return nil, nil
}
