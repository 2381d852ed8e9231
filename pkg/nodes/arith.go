package nodes

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/expr"
)

// binarySlots declares the slot layout shared by the arithmetic nodes: two
// variant inputs and one variant output, in that order.
func binarySlots() []lattice.SlotDef {
	return []lattice.SlotDef{
		lattice.Input("lhs", cty.NilType),
		lattice.Input("rhs", cty.NilType),
		lattice.Output("result", cty.NilType),
	}
}

// evalBinary checks the two-operand arity and records the operation.
func evalBinary(kind string, record func(lhs, rhs expr.Handle) (expr.Handle, error), inputs []expr.Handle) ([]expr.Handle, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("%w: unexpected input count to %s.Eval: want 2, got %d", expr.ErrEval, kind, len(inputs))
	}
	out, err := record(inputs[0], inputs[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", expr.ErrEval, kind, err)
	}
	return []expr.Handle{out}, nil
}

// AddNode sums its two inputs.
type AddNode struct{}

// NewAdd creates an addition node.
func NewAdd() *AddNode {
	return &AddNode{}
}

// Slots declares lhs, rhs and result.
func (*AddNode) Slots() []lattice.SlotDef {
	return binarySlots()
}

// Eval records lhs + rhs.
func (*AddNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	return evalBinary("AddNode", b.Add, inputs)
}

// SubNode subtracts its second input from its first.
type SubNode struct{}

// NewSub creates a subtraction node.
func NewSub() *SubNode {
	return &SubNode{}
}

// Slots declares lhs, rhs and result.
func (*SubNode) Slots() []lattice.SlotDef {
	return binarySlots()
}

// Eval records lhs - rhs.
func (*SubNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	return evalBinary("SubNode", b.Sub, inputs)
}

// MulNode multiplies its two inputs.
type MulNode struct{}

// NewMul creates a multiplication node.
func NewMul() *MulNode {
	return &MulNode{}
}

// Slots declares lhs, rhs and result.
func (*MulNode) Slots() []lattice.SlotDef {
	return binarySlots()
}

// Eval records lhs * rhs.
func (*MulNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	return evalBinary("MulNode", b.Mul, inputs)
}

// DivNode divides its first input by its second.
type DivNode struct{}

// NewDiv creates a division node.
func NewDiv() *DivNode {
	return &DivNode{}
}

// Slots declares lhs, rhs and result.
func (*DivNode) Slots() []lattice.SlotDef {
	return binarySlots()
}

// Eval records lhs / rhs.
func (*DivNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	return evalBinary("DivNode", b.Div, inputs)
}

var (
	_ lattice.Node = (*AddNode)(nil)
	_ lattice.Node = (*SubNode)(nil)
	_ lattice.Node = (*MulNode)(nil)
	_ lattice.Node = (*DivNode)(nil)
)
