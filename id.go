package lattice

import "fmt"

// NodeID identifies a node inside a Graph. IDs are dense and one-based:
// the first node added gets 1, the second 2, and so on. The zero value is
// reserved as invalid so optional-reference fields can stay unset without
// extra bookkeeping. IDs are minted by the Graph, never reused, and never
// renumbered.
type NodeID uint32

// SlotID identifies a slot inside a Graph. Slots from all nodes share one
// arena, so SlotIDs are globally unique within a Graph. Same one-based,
// zero-invalid scheme as NodeID.
type SlotID uint32

// NilNodeID is the invalid, unset NodeID.
const NilNodeID NodeID = 0

// NilSlotID is the invalid, unset SlotID.
const NilSlotID SlotID = 0

// IsValid reports whether the ID could have been minted by a Graph.
func (id NodeID) IsValid() bool {
	return id != NilNodeID
}

// Index converts the one-based ID to its zero-based arena offset.
func (id NodeID) Index() int {
	return int(id) - 1
}

func (id NodeID) String() string {
	return fmt.Sprintf("node#%d", uint32(id))
}

// IsValid reports whether the ID could have been minted by a Graph.
func (id SlotID) IsValid() bool {
	return id != NilSlotID
}

// Index converts the one-based ID to its zero-based arena offset.
func (id SlotID) Index() int {
	return int(id) - 1
}

func (id SlotID) String() string {
	return fmt.Sprintf("slot#%d", uint32(id))
}
