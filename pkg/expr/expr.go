package expr

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ErrEval is the sentinel for recoverable evaluation failures: wrong input
// arity to a node, and any error bubbled up from a Builder. Graph
// construction and linking never produce it.
var ErrEval = errors.New("graph evaluation error")

// Handle is an opaque reference to an expression recorded by a Builder.
// Handles are one-based; the zero value is reserved as invalid so that
// optional-reference fields can stay unset without extra bookkeeping.
type Handle uint32

// NilHandle is the invalid, unset Handle.
const NilHandle Handle = 0

// IsValid reports whether the handle references a recorded expression.
func (h Handle) IsValid() bool {
	return h != NilHandle
}

func (h Handle) String() string {
	return fmt.Sprintf("expr#%d", uint32(h))
}

// Builder records primitive expression operations on behalf of a node.
//
// Implementations mint a fresh Handle per recorded operation and report
// backend failures as errors; they never reduce values (recording "3 + 2"
// does not produce "5"). Operand handles must have been minted by the same
// Builder.
type Builder interface {
	// Lit records a literal value.
	Lit(v cty.Value) (Handle, error)

	// Add records lhs + rhs.
	Add(lhs, rhs Handle) (Handle, error)

	// Sub records lhs - rhs.
	Sub(lhs, rhs Handle) (Handle, error)

	// Mul records lhs * rhs.
	Mul(lhs, rhs Handle) (Handle, error)

	// Div records lhs / rhs.
	Div(lhs, rhs Handle) (Handle, error)

	// Attr records a read of the given attribute.
	Attr(a Attribute) (Handle, error)

	// Builtin records a read of the given built-in value.
	Builtin(op BuiltIn) (Handle, error)

	// Normalize records the normalization of a vector expression.
	Normalize(arg Handle) (Handle, error)
}

// Tuple types standing in for fixed-size float vectors. A slot whose
// ValueType is one of these carries a vector of that arity; cty.NilType
// marks a variant slot whose type is only known after evaluation.
var (
	TypeVec2 = cty.Tuple([]cty.Type{cty.Number, cty.Number})
	TypeVec3 = cty.Tuple([]cty.Type{cty.Number, cty.Number, cty.Number})
	TypeVec4 = cty.Tuple([]cty.Type{cty.Number, cty.Number, cty.Number, cty.Number})
)

// Vec2 builds a TypeVec2 value.
func Vec2(x, y float64) cty.Value {
	return cty.TupleVal([]cty.Value{
		cty.NumberFloatVal(x),
		cty.NumberFloatVal(y),
	})
}

// Vec3 builds a TypeVec3 value.
func Vec3(x, y, z float64) cty.Value {
	return cty.TupleVal([]cty.Value{
		cty.NumberFloatVal(x),
		cty.NumberFloatVal(y),
		cty.NumberFloatVal(z),
	})
}

// Vec4 builds a TypeVec4 value.
func Vec4(x, y, z, w float64) cty.Value {
	return cty.TupleVal([]cty.Value{
		cty.NumberFloatVal(x),
		cty.NumberFloatVal(y),
		cty.NumberFloatVal(z),
		cty.NumberFloatVal(w),
	})
}
