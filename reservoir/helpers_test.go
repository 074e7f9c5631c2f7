package reservoir

import (
	"encoding/binary"
	"math/rand"
)

const testRowWidth = 4

// rowPayload encodes n as a fixed-width little-endian row.
func rowPayload(n uint32) []byte {
	b := make([]byte, testRowWidth)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

func decodeRow(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// makeBatch packs rows of testRowWidth bytes into a Batch. ids may be nil.
func makeBatch(ids []int64, rows ...[]byte) Batch {
	data := make([]byte, 0, len(rows)*testRowWidth)
	for _, r := range rows {
		data = append(data, r...)
	}
	return Batch{
		Dims:     []int{len(rows), testRowWidth},
		ElemSize: 1,
		Data:     data,
		IDs:      ids,
	}
}

// scriptedSource is a rand.Source that plays back a fixed sequence of
// Int63 values, so the uniform draw per row is known in advance. Values
// must be small enough that Int63n never rejects them, which holds for
// anything below the draw domain.
type scriptedSource struct {
	vals []int64
	next int
}

func (s *scriptedSource) Int63() int64 {
	v := s.vals[s.next]
	s.next++
	return v
}

func (s *scriptedSource) Seed(int64) {}

// modelReservoir replays the sampling decisions with an independent
// seeded generator, mirroring one draw per non-duplicate row. It tracks
// which key owns each slot so dedup behaves exactly like the real index:
// a key skips only while it currently occupies a slot.
type modelReservoir struct {
	capacity int
	rng      *rand.Rand
	visit    int64
	slots    []int64 // key per slot, NoOwner when untracked
	payloads [][]byte
	byKey    map[int64]int
}

func newModelReservoir(capacity int, seed int64) *modelReservoir {
	slots := make([]int64, capacity)
	for i := range slots {
		slots[i] = NoOwner
	}
	return &modelReservoir{
		capacity: capacity,
		rng:      rand.New(rand.NewSource(seed)),
		slots:    slots,
		payloads: make([][]byte, capacity),
		byKey:    make(map[int64]int),
	}
}

func (m *modelReservoir) feed(key int64, payload []byte) {
	if _, ok := m.byKey[key]; ok {
		return
	}
	slot := int64(-1)
	if m.visit < int64(m.capacity) {
		slot = m.visit
	} else if r := m.rng.Int63n(m.visit + 1); r < int64(m.capacity) {
		slot = r
	}
	if slot >= 0 {
		if prev := m.slots[slot]; prev != NoOwner {
			delete(m.byKey, prev)
		}
		m.slots[slot] = key
		m.byKey[key] = int(slot)
		m.payloads[slot] = payload
	}
	m.visit++
}
