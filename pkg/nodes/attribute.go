package nodes

import (
	"fmt"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/expr"
)

// AttributeNode reads a single attribute. It takes no inputs and exposes
// one output slot named after the attribute and typed by it.
type AttributeNode struct {
	attr expr.Attribute
}

var _ lattice.Node = (*AttributeNode)(nil)

// NewAttribute creates a node reading the given attribute.
func NewAttribute(attr expr.Attribute) *AttributeNode {
	return &AttributeNode{attr: attr}
}

// Attr returns the attribute this node reads.
func (n *AttributeNode) Attr() expr.Attribute {
	return n.attr
}

// SetAttr changes the attribute this node reads. Nodes already added to a
// graph keep the slots materialized at add time; SetAttr only affects
// evaluation and later AddNode calls.
func (n *AttributeNode) SetAttr(attr expr.Attribute) {
	n.attr = attr
}

// Slots declares the single output slot, named and typed by the attribute.
func (n *AttributeNode) Slots() []lattice.SlotDef {
	return []lattice.SlotDef{
		lattice.Output(n.attr.Name(), n.attr.ValueType()),
	}
}

// Eval records the attribute read.
func (n *AttributeNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	if len(inputs) != 0 {
		return nil, fmt.Errorf("%w: unexpected non-empty input to AttributeNode.Eval: got %d", expr.ErrEval, len(inputs))
	}
	h, err := b.Attr(n.attr)
	if err != nil {
		return nil, fmt.Errorf("%w: AttributeNode: %w", expr.ErrEval, err)
	}
	return []expr.Handle{h}, nil
}
