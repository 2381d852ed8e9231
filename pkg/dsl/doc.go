/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing lattice graphs.

It allows developers to wire nodes by name using a fluent builder pattern instead of
juggling raw NodeIDs and SlotIDs. Names exist only inside the builder; the compiled
Graph knows nothing about them. This is particularly useful for tests, examples, and
any place a graph is declared in one piece rather than grown incrementally.

Example usage:

	package main

	import (
		"github.com/aretw0/lattice/pkg/dsl"
		"github.com/aretw0/lattice/pkg/expr"
		"github.com/aretw0/lattice/pkg/nodes"
	)

	func main() {
		b := dsl.New()

		b.Add("position", nodes.NewAttribute(expr.Position))
		b.Add("velocity", nodes.NewAttribute(expr.Velocity))
		b.Add("time", nodes.NewTime())

		b.Add("scaled", nodes.NewMul()).
			Feed("velocity.velocity", "lhs").
			Feed("time.delta_time", "rhs")

		b.Add("next", nodes.NewAdd()).
			Feed("position.position", "lhs").
			Feed("scaled.result", "rhs")

		graph, err := b.Build()
		if err != nil {
			// ...
		}
		_ = graph
	}
*/
package dsl
