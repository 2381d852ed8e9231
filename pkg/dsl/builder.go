package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/lattice"
)

// conn is a pending edge between two slot references.
type conn struct {
	from string
	to   string
}

// Builder manages the graph construction.
type Builder struct {
	opts  []lattice.Option
	order []string
	nodes map[string]*NodeBuilder
	conns []conn
	ids   map[string]lattice.NodeID
	errs  []error
}

// New creates a new graph builder. Options are passed through to
// lattice.New when Build runs.
func New(opts ...lattice.Option) *Builder {
	return &Builder{
		opts:  opts,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add registers a node under a unique name and returns its builder for
// chaining connections. Registering the same name twice records
// ErrDuplicateNode and returns the original builder; the second node value
// is discarded.
func (b *Builder) Add(name string, n lattice.Node) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateNode, name))
		return nb
	}
	nb := &NodeBuilder{
		name:    name,
		node:    n,
		builder: b,
	}
	b.nodes[name] = nb
	b.order = append(b.order, name)
	return nb
}

// Connect records an edge between two slot references, each written as
// "node.slot". The from reference must name an output slot and the to
// reference an input slot; resolution happens in Build.
func (b *Builder) Connect(from, to string) *Builder {
	b.conns = append(b.conns, conn{from: from, to: to})
	return b
}

// Build compiles the registered nodes and connections into a Graph. Nodes
// are added in registration order, so a graph declared producers-first can
// be evaluated in one forward pass. All accumulated errors are reported
// together.
func (b *Builder) Build() (*lattice.Graph, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	g := lattice.New(b.opts...)
	b.ids = make(map[string]lattice.NodeID, len(b.order))
	for _, name := range b.order {
		b.ids[name] = g.AddNode(b.nodes[name].node)
	}

	var errs []error
	for _, c := range b.conns {
		out, err := b.resolve(g, c.from, lattice.SlotDirOutput)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		in, err := b.resolve(g, c.to, lattice.SlotDirInput)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.Link(out, in)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// NodeID reports the graph ID assigned to the named node. IDs are assigned
// by Build; before a successful Build it reports false for every name.
func (b *Builder) NodeID(name string) (lattice.NodeID, bool) {
	id, ok := b.ids[name]
	return id, ok
}

func (b *Builder) resolve(g *lattice.Graph, ref string, dir lattice.SlotDir) (lattice.SlotID, error) {
	nodeName, slotName, ok := strings.Cut(ref, ".")
	if !ok || nodeName == "" || slotName == "" {
		return lattice.NilSlotID, fmt.Errorf("%w: %q", ErrBadSlotRef, ref)
	}
	id, ok := b.ids[nodeName]
	if !ok {
		return lattice.NilSlotID, fmt.Errorf("%w: %q", ErrUnknownNode, nodeName)
	}

	var sid lattice.SlotID
	if dir == lattice.SlotDirOutput {
		sid, ok = g.OutputSlot(id, slotName)
	} else {
		sid, ok = g.InputSlot(id, slotName)
	}
	if !ok {
		return lattice.NilSlotID, fmt.Errorf("%w: node %q has no %s slot %q", ErrUnknownSlot, nodeName, dir, slotName)
	}
	return sid, nil
}
