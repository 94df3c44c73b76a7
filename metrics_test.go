package fixedcap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsTrackLifecycle(t *testing.T) {
	before := Stats()

	a := NewArray[int64](16)
	r := NewRing[int32](8, true)

	mid := Stats()
	assert.Equal(t, before.Live+2, mid.Live)
	assert.Equal(t, before.Allocs+2, mid.Allocs)
	assert.Greater(t, mid.BytesReserved, before.BytesReserved)
	assert.Greater(t, mid.BytesCumulative, before.BytesCumulative)

	a.Free()
	r.Free()

	after := Stats()
	assert.Equal(t, before.Live, after.Live)
	assert.Equal(t, mid.Allocs, after.Allocs)
	assert.Equal(t, before.Frees+2, after.Frees)
	assert.Equal(t, before.BytesReserved, after.BytesReserved)
	// Cumulative bytes only grow.
	assert.Equal(t, mid.BytesCumulative, after.BytesCumulative)
}
