package expr

import "github.com/zclconf/go-cty/cty"

// Attribute identifies a per-element quantity an AttributeNode can read.
// Attributes are pure slot metadata: the graph core never interprets them,
// it only forwards them to the Builder.
type Attribute struct {
	name string
	typ  cty.Type
}

// NewAttribute declares an attribute with the given name and value type.
func NewAttribute(name string, typ cty.Type) Attribute {
	return Attribute{name: name, typ: typ}
}

// Name returns the attribute name, which doubles as the name of the output
// slot on an AttributeNode reading it.
func (a Attribute) Name() string {
	return a.name
}

// ValueType returns the attribute's value type.
func (a Attribute) ValueType() cty.Type {
	return a.typ
}

func (a Attribute) String() string {
	return a.name
}

// The built-in attribute set.
var (
	Position = NewAttribute("position", TypeVec3)
	Velocity = NewAttribute("velocity", TypeVec3)
	Age      = NewAttribute("age", cty.Number)
	Lifetime = NewAttribute("lifetime", cty.Number)
	Size     = NewAttribute("size", TypeVec2)
	Color    = NewAttribute("color", TypeVec4)
)
