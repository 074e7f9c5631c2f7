package reservoir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKeyProperties(t *testing.T) {
	a := HashKey([]byte("row-a"))
	b := HashKey([]byte("row-b"))

	assert.Equal(t, a, HashKey([]byte("row-a")), "HashKey must be deterministic")
	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, a, int64(0), "HashKey must never produce the reserved sentinel")
	assert.NotEqual(t, NoOwner, a)
}

func TestHashKeyDrivesContentDedup(t *testing.T) {
	cfg := Config{Capacity: 4, KeyTracking: true}
	p, err := NewSampler(cfg)
	require.NoError(t, err)
	st, err := NewState(cfg)
	require.NoError(t, err)

	rows := [][]byte{rowPayload(1), rowPayload(2), rowPayload(1)}
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = HashKey(r)
	}

	// The repeated payload hashes to a repeated key, which makes the
	// batch trip the repeated-new-key consistency check, exactly like an
	// explicit duplicate id would.
	err = p.Process(makeBatch(ids, rows...), st)
	assert.ErrorIs(t, err, ErrInternalConsistency)

	// Fed one row at a time, content dedup works cleanly.
	st2, err := NewState(cfg)
	require.NoError(t, err)
	p2, err := NewSampler(cfg)
	require.NoError(t, err)
	for i, r := range rows {
		err := p2.Process(makeBatch(ids[i:i+1], r), st2)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(2), st2.VisitCount, "Repeated payload must be skipped")
	assert.Equal(t, 2, st2.Reservoir.Occupied())
}
