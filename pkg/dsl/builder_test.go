package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/expr"
	"github.com/aretw0/lattice/pkg/nodes"
)

func TestBuilder_KinematicsFlow(t *testing.T) {
	// 1. Declare the graph using the DSL
	b := New()

	b.Add("position", nodes.NewAttribute(expr.Position))
	b.Add("velocity", nodes.NewAttribute(expr.Velocity))
	b.Add("time", nodes.NewTime())

	b.Add("scaled", nodes.NewMul()).
		Feed("velocity.velocity", "lhs").
		Feed("time.delta_time", "rhs")

	b.Add("next", nodes.NewAdd()).
		Feed("position.position", "lhs").
		Feed("scaled.result", "rhs")

	// 2. Compile to a Graph
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if g.NodeCount() != 5 {
		t.Errorf("Expected 5 nodes, got %d", g.NodeCount())
	}

	// 3. Verify names resolved to IDs in registration order
	posID, ok := b.NodeID("position")
	if !ok {
		t.Fatal("NodeID('position') not assigned")
	}
	if posID != lattice.NodeID(1) {
		t.Errorf("Expected position to be node 1, got %s", posID)
	}

	// 4. Verify the wiring landed on the right slots
	nextID, _ := b.NodeID("next")
	scaledID, _ := b.NodeID("scaled")

	lhs, ok := g.InputSlot(nextID, "lhs")
	if !ok {
		t.Fatal("next has no 'lhs' input")
	}
	src, ok := g.Slot(lhs).Source()
	if !ok {
		t.Fatal("next.lhs is not linked")
	}
	posOut, _ := g.OutputSlot(posID, "position")
	if src != posOut {
		t.Errorf("Expected next.lhs fed by %s, got %s", posOut, src)
	}

	rhs, _ := g.InputSlot(nextID, "rhs")
	src, ok = g.Slot(rhs).Source()
	if !ok {
		t.Fatal("next.rhs is not linked")
	}
	scaledOut, _ := g.OutputSlot(scaledID, "result")
	if src != scaledOut {
		t.Errorf("Expected next.rhs fed by %s, got %s", scaledOut, src)
	}
}

func TestBuilder_ConnectForms(t *testing.T) {
	// Builder.Connect, NodeBuilder.Connect and NodeBuilder.Feed record the
	// same kind of edge.
	b := New()
	b.Add("position", nodes.NewAttribute(expr.Position)).
		Connect("position", "norm.in")
	b.Add("norm", nodes.NewNormalize())
	b.Connect("norm.out", "sum.lhs")
	b.Add("sum", nodes.NewAdd()).
		Feed("position.position", "rhs")

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	sumID, _ := b.NodeID("sum")
	for _, name := range []string{"lhs", "rhs"} {
		in, _ := g.InputSlot(sumID, name)
		if _, ok := g.Slot(in).Source(); !ok {
			t.Errorf("Expected sum.%s to be linked", name)
		}
	}

	// The position output fans out to both consumers.
	posID, _ := b.NodeID("position")
	posOut, _ := g.OutputSlot(posID, "position")
	if n := len(g.Slot(posOut).Links()); n != 2 {
		t.Errorf("Expected position output to feed 2 inputs, got %d", n)
	}
}

func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{
			name: "duplicate node name",
			build: func(b *Builder) {
				b.Add("x", nodes.NewAdd())
				b.Add("x", nodes.NewSub())
			},
			want: ErrDuplicateNode,
		},
		{
			name: "unknown node in connection",
			build: func(b *Builder) {
				b.Add("sum", nodes.NewAdd())
				b.Connect("ghost.value", "sum.lhs")
			},
			want: ErrUnknownNode,
		},
		{
			name: "unknown slot in connection",
			build: func(b *Builder) {
				b.Add("position", nodes.NewAttribute(expr.Position))
				b.Add("sum", nodes.NewAdd())
				b.Connect("position.position", "sum.carry")
			},
			want: ErrUnknownSlot,
		},
		{
			name: "wrong direction is an unknown slot",
			build: func(b *Builder) {
				b.Add("position", nodes.NewAttribute(expr.Position))
				b.Add("sum", nodes.NewAdd())
				b.Connect("sum.lhs", "position.position")
			},
			want: ErrUnknownSlot,
		},
		{
			name: "malformed reference",
			build: func(b *Builder) {
				b.Add("sum", nodes.NewAdd())
				b.Connect("sum", "sum.lhs")
			},
			want: ErrBadSlotRef,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			tc.build(b)

			g, err := b.Build()
			if err == nil {
				t.Fatal("Build() succeeded, want error")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
			if g != nil {
				t.Error("Expected nil graph on error")
			}
		})
	}
}

func TestBuilder_JoinsAllErrors(t *testing.T) {
	b := New()
	b.Add("sum", nodes.NewAdd())
	b.Connect("ghost.value", "sum.lhs")
	b.Connect("sum", "sum.rhs")

	_, err := b.Build()
	if err == nil {
		t.Fatal("Build() succeeded, want error")
	}
	if !errors.Is(err, ErrUnknownNode) || !errors.Is(err, ErrBadSlotRef) {
		t.Errorf("Expected both resolution errors reported, got %v", err)
	}
}

func TestBuilder_OptionsReachGraph(t *testing.T) {
	var added int
	b := New(
		lattice.WithLogger(logging.NewNop()),
		lattice.WithHooks(lattice.Hooks{
			OnNodeAdded: func(*lattice.NodeAddedEvent) { added++ },
		}),
	)
	b.Add("time", nodes.NewTime())

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if added != 1 {
		t.Errorf("Expected 1 node-added event, got %d", added)
	}
}
