package lattice

import "github.com/aretw0/lattice/pkg/expr"

// Node is the capability every graph node implements. Node kinds are
// open-ended: the Graph stores them behind this interface and never
// inspects them beyond it, so new kinds plug in without touching Graph
// code.
type Node interface {
	// Slots returns the node kind's fixed slot definitions. The list
	// contains both input and output slots; its order is the order in
	// which AddNode allocates SlotIDs for the node. Callers must not
	// assume any input/output ordering beyond what each kind documents.
	Slots() []SlotDef

	// Eval lowers the node into expression form. It consumes exactly the
	// handles for the node's declared input slots, in InputSlots order,
	// and returns one handle per declared output slot, in output-slot
	// order. The node records its shape through b; it never reduces
	// values.
	//
	// A wrong input count, a semantically invalid input, or a builder
	// failure yields an error satisfying errors.Is(err, expr.ErrEval).
	Eval(b expr.Builder, inputs []expr.Handle) ([]expr.Handle, error)
}
