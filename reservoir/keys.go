package reservoir

import "github.com/cespare/xxhash/v2"

// HashKey derives a 64-bit object id from a row's payload bytes. It is a
// convenience for callers that want content-based deduplication but have
// no external key for their rows. The sign bit is cleared so the result
// can never collide with NoOwner.
func HashKey(block []byte) int64 {
	return int64(xxhash.Sum64(block) >> 1)
}
