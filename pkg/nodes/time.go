package nodes

import (
	"fmt"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/expr"
)

// timeBuiltins lists the clock values a TimeNode surfaces, in output-slot
// order.
var timeBuiltins = [...]expr.BuiltIn{expr.BuiltInTime, expr.BuiltInDeltaTime}

// TimeNode surfaces the simulation clock. It takes no inputs and exposes
// one output slot per built-in time value, named and typed by it.
type TimeNode struct{}

var _ lattice.Node = (*TimeNode)(nil)

// NewTime creates a time node.
func NewTime() *TimeNode {
	return &TimeNode{}
}

// Slots declares the time and delta_time output slots, in that order.
func (*TimeNode) Slots() []lattice.SlotDef {
	defs := make([]lattice.SlotDef, 0, len(timeBuiltins))
	for _, op := range timeBuiltins {
		defs = append(defs, lattice.Output(op.Name(), op.ValueType()))
	}
	return defs
}

// Eval records one built-in read per output slot, in slot order.
func (*TimeNode) Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error) {
	if len(inputs) != 0 {
		return nil, fmt.Errorf("%w: unexpected non-empty input to TimeNode.Eval: got %d", expr.ErrEval, len(inputs))
	}
	outputs := make([]expr.Handle, 0, len(timeBuiltins))
	for _, op := range timeBuiltins {
		h, err := b.Builtin(op)
		if err != nil {
			return nil, fmt.Errorf("%w: TimeNode: %w", expr.ErrEval, err)
		}
		outputs = append(outputs, h)
	}
	return outputs, nil
}
