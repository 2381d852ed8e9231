package lattice

import (
	"fmt"
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// SlotDir is the direction of a slot, fixed when its definition is created.
type SlotDir string

const (
	// SlotDirInput marks a slot that consumes a value from one upstream
	// output.
	SlotDirInput SlotDir = "input"
	// SlotDirOutput marks a slot that produces a value consumed by any
	// number of downstream inputs.
	SlotDirOutput SlotDir = "output"
)

// SlotDef is the static description of a slot, owned by the node kind that
// declares it. A ValueType of cty.NilType denotes a variant slot whose
// concrete type is only known after evaluation. Treat a SlotDef as
// immutable once constructed.
type SlotDef struct {
	Name      string
	Dir       SlotDir
	ValueType cty.Type
}

// Input declares an input slot definition.
func Input(name string, typ cty.Type) SlotDef {
	return SlotDef{Name: name, Dir: SlotDirInput, ValueType: typ}
}

// Output declares an output slot definition.
func Output(name string, typ cty.Type) SlotDef {
	return SlotDef{Name: name, Dir: SlotDirOutput, ValueType: typ}
}

// IsInput reports whether the definition declares an input slot.
func (d SlotDef) IsInput() bool {
	return d.Dir == SlotDirInput
}

// IsOutput reports whether the definition declares an output slot.
func (d SlotDef) IsOutput() bool {
	return d.Dir == SlotDirOutput
}

// Slot is a live slot instance inside a Graph: identity, owning node,
// definition, and current link set. Slots are created by Graph.AddNode and
// owned by the Graph; all link mutation goes through Graph.Link,
// Graph.Unlink and Graph.UnlinkAll so the two ends of every edge stay in
// agreement.
//
// Link-state invariants by direction:
//   - output: zero or many distinct input SlotIDs (fan-out); re-linking an
//     already-linked pair is a no-op.
//   - input: at most one output SlotID; linking a new source silently
//     replaces the previous one.
type Slot struct {
	node  NodeID
	id    SlotID
	def   SlotDef
	links []SlotID
}

// ID returns the slot's identity.
func (s *Slot) ID() SlotID {
	return s.id
}

// Node returns the ID of the node owning this slot.
func (s *Slot) Node() NodeID {
	return s.node
}

// Def returns the slot's definition.
func (s *Slot) Def() SlotDef {
	return s.def
}

// Name returns the slot's name. Names are unique per node by convention
// only; duplicates make name-based lookup first-wins.
func (s *Slot) Name() string {
	return s.def.Name
}

// Dir returns the slot's direction.
func (s *Slot) Dir() SlotDir {
	return s.def.Dir
}

// IsInput reports whether this is an input slot.
func (s *Slot) IsInput() bool {
	return s.def.IsInput()
}

// IsOutput reports whether this is an output slot.
func (s *Slot) IsOutput() bool {
	return s.def.IsOutput()
}

// Links returns the slots linked to this one, in link order. The returned
// slice is a copy; link state can only change through the owning Graph.
func (s *Slot) Links() []SlotID {
	return slices.Clone(s.links)
}

// Source returns the single upstream output linked to this input slot, if
// any. On output slots it always reports false.
func (s *Slot) Source() (SlotID, bool) {
	if s.IsInput() && len(s.links) > 0 {
		return s.links[0], true
	}
	return NilSlotID, false
}

// linkTo appends target to this output slot's link set, if absent.
// Reports whether the set changed.
func (s *Slot) linkTo(target SlotID) bool {
	if !s.IsOutput() {
		panic(fmt.Sprintf("lattice: slot %q is not an output slot", s.def.Name))
	}
	if slices.Contains(s.links, target) {
		return false
	}
	s.links = append(s.links, target)
	return true
}

// unlinkFrom removes target from this output slot's link set, if present.
// Reports whether a removal occurred; the Graph uses this to decide whether
// the remote input's back-link must be cleared too.
func (s *Slot) unlinkFrom(target SlotID) bool {
	if !s.IsOutput() {
		panic(fmt.Sprintf("lattice: slot %q is not an output slot", s.def.Name))
	}
	i := slices.Index(s.links, target)
	if i < 0 {
		return false
	}
	s.links = slices.Delete(s.links, i, i+1)
	return true
}

// linkInput sets this input slot's single upstream link, overwriting any
// prior value. Returns the previous source, or NilSlotID. The overwrite is
// a deliberate silent-replace: an input only ever has one active source.
func (s *Slot) linkInput(source SlotID) SlotID {
	if !s.IsInput() {
		panic(fmt.Sprintf("lattice: slot %q is not an input slot", s.def.Name))
	}
	if len(s.links) == 0 {
		s.links = append(s.links, source)
		return NilSlotID
	}
	prev := s.links[0]
	s.links[0] = source
	return prev
}

// unlinkInput clears this input slot's single link unconditionally.
func (s *Slot) unlinkInput() {
	if !s.IsInput() {
		panic(fmt.Sprintf("lattice: slot %q is not an input slot", s.def.Name))
	}
	s.links = s.links[:0]
}
