package graph

import "fmt"

// NodeID uniquely identifies a component node in the architecture graph.
// IDs are derived deterministically from the component's fully qualified
// type name, so the same name always yields the same ID across runs and
// processes. There is no counter and no randomness involved.
type NodeID uint64

// NodeIDFromName derives a NodeID from a component name using a DJB2-style
// multiplicative hash (seed 5381, hash*33 + byte). Equal names always
// produce equal IDs; distinct names collide only with negligible
// probability at architecture scale.
func NodeIDFromName(name string) NodeID {
	var hash uint64 = 5381
	for i := 0; i < len(name); i++ {
		hash = hash*33 + uint64(name[i])
	}
	return NodeID(hash)
}

// Value returns the raw 64-bit value of the ID.
func (id NodeID) Value() uint64 {
	return uint64(id)
}

func (id NodeID) String() string {
	return fmt.Sprintf("NodeID(%d)", uint64(id))
}
