package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIDFromName_Deterministic(t *testing.T) {
	id1 := NodeIDFromName("domain.UserEntity")
	id2 := NodeIDFromName("domain.UserEntity")
	assert.Equal(t, id1, id2, "equal names must yield equal IDs")
}

func TestNodeIDFromName_DistinctNames(t *testing.T) {
	id1 := NodeIDFromName("domain.UserEntity")
	id2 := NodeIDFromName("ports.UserRepository")
	assert.NotEqual(t, id1, id2)
}

func TestNodeIDFromName_KnownValues(t *testing.T) {
	// DJB2 with wrapping uint64 arithmetic: hash = hash*33 + byte, seed 5381.
	assert.Equal(t, NodeID(5381), NodeIDFromName(""))
	assert.Equal(t, NodeID(5381*33+'a'), NodeIDFromName("a"))
	assert.Equal(t, NodeID((5381*33+'a')*33+'b'), NodeIDFromName("ab"))
}

func TestNodeID_Value(t *testing.T) {
	id := NodeIDFromName("test")
	assert.Equal(t, uint64(id), id.Value())
}

func TestNodeID_String(t *testing.T) {
	assert.Equal(t, "NodeID(5381)", NodeIDFromName("").String())
}
