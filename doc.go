/*
Package lattice is a small, strongly-typed node graph model: a mutable
collection of polymorphic nodes, each exposing named, directionally-typed
slots, connected by links that express data flow from an upstream output to
a downstream input.

The graph is the editable representation of a computation. It does not
execute anything itself: each node, when evaluated, lowers into a
handle-based expression form recorded through the expr.Builder boundary,
and a graph-walking evaluator outside this module threads the resulting
handles along links in dependency order.

# Concept

Nodes and slots live in two append-only arenas addressed by dense one-based
IDs whose zero value is reserved as invalid. Adding a node eagerly
materializes one live slot per declared definition; linking records each
edge redundantly on both endpoints so connectivity queries are local.
Output slots fan out to any number of inputs, while an input accepts a
single source; linking a new source to a connected input replaces the old
one in place.

# Key Features

  - Open node vocabulary: any type implementing Node participates; the
    shipped variants live in pkg/nodes.
  - Stable identity: IDs are never reused or renumbered, so they can be
    held across arbitrary graph mutations.
  - Strict contracts: wrong-direction or out-of-range operations panic;
    evaluation failures are ordinary error values wrapping expr.ErrEval.
  - Hooks and structured logging for observing mutations, disabled by
    default.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/lattice"
		"github.com/aretw0/lattice/pkg/expr"
		"github.com/aretw0/lattice/pkg/expr/memory"
		"github.com/aretw0/lattice/pkg/nodes"
	)

	func main() {
		g := lattice.New()

		pos := g.AddNode(nodes.NewAttribute(expr.Position))
		add := g.AddNode(nodes.NewAdd())

		out, _ := g.OutputSlot(pos, "position")
		lhs, _ := g.InputSlot(add, "lhs")
		g.Link(out, lhs)

		// Evaluate the attribute node and inspect the recorded expression.
		b := memory.New()
		handles, err := g.Node(pos).Eval(b, nil)
		if err != nil {
			panic(err)
		}
		fmt.Println(b.Describe(handles[0])) // attr(position)
	}
*/
package lattice
