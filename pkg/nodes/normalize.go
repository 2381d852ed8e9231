package nodes

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/expr"
)

// NormalizeNode rescales a vector expression to unit length. One variant
// input, one variant output.
type NormalizeNode struct{}

var _ lattice.Node = (*NormalizeNode)(nil)

// NewNormalize creates a normalization node.
func NewNormalize() *NormalizeNode {
	return &NormalizeNode{}
}

// Slots declares the in and out slots.
func (*NormalizeNode) Slots() []lattice.SlotDef {
	return []lattice.SlotDef{
		lattice.Input("in", cty.NilType),
		lattice.Output("out", cty.NilType),
	}
}

// Eval records the normalization of the single input.
func (*NormalizeNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%w: unexpected input count to NormalizeNode.Eval: want 1, got %d", expr.ErrEval, len(inputs))
	}
	h, err := b.Normalize(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("%w: NormalizeNode: %w", expr.ErrEval, err)
	}
	return []expr.Handle{h}, nil
}
