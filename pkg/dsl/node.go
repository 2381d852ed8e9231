package dsl

import "github.com/aretw0/lattice"

// NodeBuilder provides a fluent API for wiring one registered node.
type NodeBuilder struct {
	name    string
	node    lattice.Node
	builder *Builder
}

// Connect routes one of this node's output slots to an input slot
// elsewhere, given as a "node.slot" reference.
func (n *NodeBuilder) Connect(output, to string) *NodeBuilder {
	n.builder.Connect(n.name+"."+output, to)
	return n
}

// Feed routes an output slot of another node, given as a "node.slot"
// reference, into one of this node's input slots. It is Connect from the
// consumer's point of view, which often reads better when a node gathers
// several sources.
func (n *NodeBuilder) Feed(from, input string) *NodeBuilder {
	n.builder.Connect(from, n.name+"."+input)
	return n
}

// Node returns the underlying node value.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Node() lattice.Node {
	return n.node
}
