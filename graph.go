package lattice

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
)

// Graph owns all nodes and slots of one computation graph. Nodes and slots
// live in two growable, append-only arenas indexed by NodeID and SlotID;
// nothing is ever deleted or relocated, so every ID handed out stays valid
// for the Graph's lifetime.
//
// A Graph is a plain mutable aggregate with no internal synchronization.
// Mutations (AddNode, Link, Unlink, UnlinkAll) require exclusive access;
// read-only queries may run concurrently with each other but not with a
// mutation. Every operation completes synchronously.
type Graph struct {
	nodes  []Node
	slots  []*Slot
	logger *slog.Logger
	hooks  Hooks
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets a structured logger for graph mutations. By default
// records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(g *Graph) {
		g.hooks = hooks
	}
}

// New creates an empty graph. An empty graph represents no computation;
// add nodes with AddNode and Link them together.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return g
}

// AddNode appends n to the node arena and eagerly materializes one slot per
// declared SlotDef, in declaration order, into the shared slot arena. It
// returns the new node's ID. AddNode never fails; the returned ID and the
// node's SlotIDs are valid for the Graph's lifetime.
func (g *Graph) AddNode(n Node) NodeID {
	id := NodeID(len(g.nodes) + 1)

	defs := n.Slots()
	slotIDs := make([]SlotID, 0, len(defs))
	for _, def := range defs {
		sid := SlotID(len(g.slots) + 1)
		g.slots = append(g.slots, &Slot{node: id, id: sid, def: def})
		slotIDs = append(slotIDs, sid)
	}

	g.nodes = append(g.nodes, n)

	kind := NodeKind(n)
	g.logger.Debug("node added", "node", id, "kind", kind, "slots", len(slotIDs))
	if g.hooks.OnNodeAdded != nil {
		g.hooks.OnNodeAdded(&NodeAddedEvent{Node: id, Kind: kind, Slots: slotIDs})
	}
	return id
}

// Link establishes the edge from an output slot to an input slot, recording
// it on both ends: appended to the output's link set (a no-op if already
// present), and set as the input's single source (silently replacing any
// previous source).
//
// Link never retracts the replaced source's own back-reference; the old
// output keeps listing the input until an explicit Unlink or UnlinkAll.
//
// Panics if output does not resolve to an output-direction slot or input to
// an input-direction slot.
func (g *Graph) Link(output, input SlotID) {
	out := g.slot(output)
	in := g.slot(input)

	added := out.linkTo(input)
	prev := in.linkInput(output)
	if !added && prev == output {
		return
	}

	g.logger.Debug("slots linked", "output", output, "input", input)
	if g.hooks.OnLink != nil {
		g.hooks.OnLink(&LinkEvent{Output: output, Input: input})
	}
}

// Unlink removes the edge from an output slot to an input slot, if it
// exists. When the output does not list the input the call is a no-op and
// the input side is left untouched. When it does, both sides clear
// symmetrically.
//
// Panics if output does not resolve to an output-direction slot, or if an
// edge was removed and input does not resolve to an input-direction slot.
func (g *Graph) Unlink(output, input SlotID) {
	out := g.slot(output)
	if !out.unlinkFrom(input) {
		return
	}
	g.slot(input).unlinkInput()

	g.logger.Debug("slots unlinked", "output", output, "input", input)
	if g.hooks.OnUnlink != nil {
		g.hooks.OnUnlink(&LinkEvent{Output: output, Input: input})
	}
}

// UnlinkAll removes every edge touching the given slot, whatever its
// direction. Each remote end is cleared according to its own direction:
// inputs drop their single link, outputs drop this slot specifically from
// their link set.
func (g *Graph) UnlinkAll(id SlotID) {
	s := g.slot(id)
	links := s.links
	s.links = nil
	if len(links) == 0 {
		return
	}

	for _, remote := range links {
		r := g.slot(remote)
		ev := &LinkEvent{Output: remote, Input: id}
		if r.IsInput() {
			r.unlinkInput()
			ev = &LinkEvent{Output: id, Input: remote}
		} else {
			r.unlinkFrom(id)
		}
		if g.hooks.OnUnlink != nil {
			g.hooks.OnUnlink(ev)
		}
	}

	g.logger.Debug("slot fully unlinked", "slot", id, "removed", len(links))
}

// Slots returns the IDs of every slot owned by the given node, in creation
// order.
func (g *Graph) Slots(node NodeID) []SlotID {
	var ids []SlotID
	for _, s := range g.slots {
		if s.node == node {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// InputSlots returns the IDs of the node's input slots, in creation order.
func (g *Graph) InputSlots(node NodeID) []SlotID {
	var ids []SlotID
	for _, s := range g.slots {
		if s.node == node && s.IsInput() {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// OutputSlots returns the IDs of the node's output slots, in creation
// order.
func (g *Graph) OutputSlots(node NodeID) []SlotID {
	var ids []SlotID
	for _, s := range g.slots {
		if s.node == node && s.IsOutput() {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// InputSlot finds an input slot of the node by name. First match wins.
func (g *Graph) InputSlot(node NodeID, name string) (SlotID, bool) {
	for _, s := range g.slots {
		if s.node == node && s.IsInput() && s.def.Name == name {
			return s.id, true
		}
	}
	return NilSlotID, false
}

// OutputSlot finds an output slot of the node by name. First match wins.
func (g *Graph) OutputSlot(node NodeID, name string) (SlotID, bool) {
	for _, s := range g.slots {
		if s.node == node && s.IsOutput() && s.def.Name == name {
			return s.id, true
		}
	}
	return NilSlotID, false
}

// FindSlot finds a slot by name alone, across all nodes. First match wins.
func (g *Graph) FindSlot(name string) (SlotID, bool) {
	for _, s := range g.slots {
		if s.def.Name == name {
			return s.id, true
		}
	}
	return NilSlotID, false
}

// Slot returns the slot with the given ID. IDs minted by this Graph are
// valid by construction; Slot panics on any other value.
func (g *Graph) Slot(id SlotID) *Slot {
	return g.slot(id)
}

// Node returns the node with the given ID. IDs minted by this Graph are
// valid by construction; Node panics on any other value.
func (g *Graph) Node(id NodeID) Node {
	i := id.Index()
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Sprintf("lattice: node id %d out of range [1, %d]", uint32(id), len(g.nodes)))
	}
	return g.nodes[i]
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// SlotCount returns the number of slots in the arena.
func (g *Graph) SlotCount() int {
	return len(g.slots)
}

func (g *Graph) slot(id SlotID) *Slot {
	i := id.Index()
	if i < 0 || i >= len(g.slots) {
		panic(fmt.Sprintf("lattice: slot id %d out of range [1, %d]", uint32(id), len(g.slots)))
	}
	return g.slots[i]
}

// NodeKind names a node's concrete type, for logs, events and rendered
// output. Pointer indirection is stripped so *nodes.AddNode reports
// "AddNode".
func NodeKind(n Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
