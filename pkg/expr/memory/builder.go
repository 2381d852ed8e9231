// Package memory provides an in-memory expr.Builder that records operations
// without evaluating them. It is the reference implementation used by tests
// and examples; real backends live outside this module.
package memory

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/lattice/pkg/expr"
)

type opKind string

const (
	opLit       opKind = "lit"
	opAdd       opKind = "add"
	opSub       opKind = "sub"
	opMul       opKind = "mul"
	opDiv       opKind = "div"
	opAttr      opKind = "attr"
	opBuiltin   opKind = "builtin"
	opNormalize opKind = "normalize"
)

// op is one recorded operation. Exactly one of the payload fields is
// meaningful, selected by kind.
type op struct {
	kind    opKind
	args    []expr.Handle
	lit     cty.Value
	attr    expr.Attribute
	builtin expr.BuiltIn
}

// Builder records expression operations in memory and mints sequential
// handles. The zero value is not usable; call New.
type Builder struct {
	ops  []op
	fail error
}

var _ expr.Builder = (*Builder)(nil)

// New creates an empty recording builder.
func New() *Builder {
	return &Builder{}
}

// FailNext arms the builder so that the next recorded operation returns err
// instead of a handle. Used to exercise error propagation through node
// evaluation.
func (b *Builder) FailNext(err error) {
	b.fail = err
}

// Len returns the number of recorded operations.
func (b *Builder) Len() int {
	return len(b.ops)
}

// Lit records a literal value.
func (b *Builder) Lit(v cty.Value) (expr.Handle, error) {
	return b.record(op{kind: opLit, lit: v})
}

// Add records lhs + rhs.
func (b *Builder) Add(lhs, rhs expr.Handle) (expr.Handle, error) {
	return b.binary(opAdd, lhs, rhs)
}

// Sub records lhs - rhs.
func (b *Builder) Sub(lhs, rhs expr.Handle) (expr.Handle, error) {
	return b.binary(opSub, lhs, rhs)
}

// Mul records lhs * rhs.
func (b *Builder) Mul(lhs, rhs expr.Handle) (expr.Handle, error) {
	return b.binary(opMul, lhs, rhs)
}

// Div records lhs / rhs.
func (b *Builder) Div(lhs, rhs expr.Handle) (expr.Handle, error) {
	return b.binary(opDiv, lhs, rhs)
}

// Attr records an attribute read.
func (b *Builder) Attr(a expr.Attribute) (expr.Handle, error) {
	return b.record(op{kind: opAttr, attr: a})
}

// Builtin records a built-in value read.
func (b *Builder) Builtin(bi expr.BuiltIn) (expr.Handle, error) {
	return b.record(op{kind: opBuiltin, builtin: bi})
}

// Normalize records the normalization of arg.
func (b *Builder) Normalize(arg expr.Handle) (expr.Handle, error) {
	b.lookup(arg)
	return b.record(op{kind: opNormalize, args: []expr.Handle{arg}})
}

// Describe renders the expression tree rooted at h, e.g.
// "add(lit(3), lit(2))" or "normalize(attr(position))".
//
// Panics if h was not minted by this builder.
func (b *Builder) Describe(h expr.Handle) string {
	o := b.lookup(h)
	switch o.kind {
	case opLit:
		return fmt.Sprintf("lit(%s)", formatValue(o.lit))
	case opAttr:
		return fmt.Sprintf("attr(%s)", o.attr.Name())
	case opBuiltin:
		return fmt.Sprintf("builtin(%s)", o.builtin.Name())
	case opNormalize:
		return fmt.Sprintf("normalize(%s)", b.Describe(o.args[0]))
	default:
		return fmt.Sprintf("%s(%s, %s)", o.kind, b.Describe(o.args[0]), b.Describe(o.args[1]))
	}
}

func (b *Builder) binary(kind opKind, lhs, rhs expr.Handle) (expr.Handle, error) {
	b.lookup(lhs)
	b.lookup(rhs)
	return b.record(op{kind: kind, args: []expr.Handle{lhs, rhs}})
}

func (b *Builder) record(o op) (expr.Handle, error) {
	if err := b.fail; err != nil {
		b.fail = nil
		return expr.NilHandle, err
	}
	b.ops = append(b.ops, o)
	return expr.Handle(len(b.ops)), nil
}

// lookup resolves a handle to its recorded operation. Handles minted by a
// different builder are a caller contract violation, not a recoverable
// evaluation failure.
func (b *Builder) lookup(h expr.Handle) op {
	idx := int(h) - 1
	if !h.IsValid() || idx >= len(b.ops) {
		panic(fmt.Sprintf("memory: expression handle %d out of range [1, %d]", uint32(h), len(b.ops)))
	}
	return b.ops[idx]
}

func formatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	ty := v.Type()
	switch {
	case ty.Equals(cty.Number):
		return v.AsBigFloat().Text('g', -1)
	case ty.Equals(cty.String):
		return fmt.Sprintf("%q", v.AsString())
	case ty.Equals(cty.Bool):
		if v.True() {
			return "true"
		}
		return "false"
	case ty.IsTupleType() || ty.IsListType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			parts = append(parts, formatValue(ev))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.GoString()
	}
}
