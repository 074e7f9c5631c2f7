package reservoir

import "math"

// NoOwner is the sentinel owner id for a slot that is unoccupied or not
// key-tracked. It is reserved: rows must never carry it as an external id.
const NoOwner int64 = math.MinInt64

// ObjectIndex is the bidirectional object-id/slot index used for
// deduplication. The forward map (id -> slot) and the owner vector
// (slot -> id) are only ever mutated together through Bind, so they
// cannot drift apart: for every tracked slot s, byID[owners[s]] == s.
type ObjectIndex struct {
	byID   map[int64]int
	owners []int64
}

// NewObjectIndex creates an index for capacity slots with every slot
// explicitly marked unowned.
func NewObjectIndex(capacity int) *ObjectIndex {
	owners := make([]int64, capacity)
	for i := range owners {
		owners[i] = NoOwner
	}
	return &ObjectIndex{
		byID:   make(map[int64]int, capacity),
		owners: owners,
	}
}

// Lookup returns the slot currently assigned to id.
func (x *ObjectIndex) Lookup(id int64) (int, bool) {
	slot, ok := x.byID[id]
	return slot, ok
}

// Bind assigns id to slot, evicting the slot's previous owner from the
// forward map first. Binding over an unowned slot erases nothing.
func (x *ObjectIndex) Bind(slot int, id int64) {
	if prev := x.owners[slot]; prev != NoOwner {
		delete(x.byID, prev)
	}
	x.owners[slot] = id
	x.byID[id] = slot
}

// Owner returns the id bound to slot, or NoOwner.
func (x *ObjectIndex) Owner(slot int) int64 {
	return x.owners[slot]
}

// Len returns the number of tracked slots.
func (x *ObjectIndex) Len() int {
	return len(x.byID)
}

// Capacity returns the number of slots the index covers.
func (x *ObjectIndex) Capacity() int {
	return len(x.owners)
}
