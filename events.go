package lattice

// NodeAddedEvent describes a node appended to the graph.
type NodeAddedEvent struct {
	Node NodeID
	// Kind is the node's Go type name, e.g. "AddNode".
	Kind string
	// Slots holds the IDs of the slots materialized for the node, in
	// declaration order.
	Slots []SlotID
}

// LinkEvent describes one edge between an output slot and an input slot.
type LinkEvent struct {
	Output SlotID
	Input  SlotID
}

// Hooks defines optional callbacks observing graph mutations. Any field may
// be nil. Hooks observe; they cannot veto or alter the mutation, and they
// run synchronously on the mutating goroutine.
type Hooks struct {
	// OnNodeAdded fires after AddNode materialized the node and its slots.
	OnNodeAdded func(*NodeAddedEvent)
	// OnLink fires after Link changed at least one end of an edge.
	// Re-linking an existing pair does not fire.
	OnLink func(*LinkEvent)
	// OnUnlink fires once per edge actually removed by Unlink or
	// UnlinkAll. Unlinking a pair that is not an edge does not fire.
	OnUnlink func(*LinkEvent)
}
