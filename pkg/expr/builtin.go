package expr

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// BuiltIn identifies a value provided by the runtime rather than computed
// by the graph. Like Attribute it is slot metadata only.
type BuiltIn uint8

const (
	// BuiltInTime is the simulation time in seconds since start.
	BuiltInTime BuiltIn = iota + 1
	// BuiltInDeltaTime is the simulation time in seconds since the last step.
	BuiltInDeltaTime
)

// Name returns the built-in's name, which doubles as the name of the
// corresponding output slot on a TimeNode.
func (op BuiltIn) Name() string {
	switch op {
	case BuiltInTime:
		return "time"
	case BuiltInDeltaTime:
		return "delta_time"
	default:
		return fmt.Sprintf("builtin(%d)", uint8(op))
	}
}

// ValueType returns the built-in's value type.
func (op BuiltIn) ValueType() cty.Type {
	return cty.Number
}

func (op BuiltIn) String() string {
	return op.Name()
}
