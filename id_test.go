package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDValidity(t *testing.T) {
	assert.False(t, NilNodeID.IsValid())
	assert.False(t, NilSlotID.IsValid())
	assert.True(t, NodeID(1).IsValid())
	assert.True(t, SlotID(1).IsValid())
}

func TestIDIndex(t *testing.T) {
	assert.Equal(t, 0, NodeID(1).Index())
	assert.Equal(t, 41, NodeID(42).Index())
	assert.Equal(t, 0, SlotID(1).Index())
	assert.Equal(t, 6, SlotID(7).Index())
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "node#3", NodeID(3).String())
	assert.Equal(t, "slot#12", SlotID(12).String())
}
