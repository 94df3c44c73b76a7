package fixedcap

import "sync/atomic"

// Package-wide allocation counters, updated by NewArray/NewRing and Free.
var (
	liveContainers  atomic.Int64
	totalAllocs     atomic.Uint64
	totalFrees      atomic.Uint64
	reservedBytes   atomic.Int64
	cumulativeBytes atomic.Uint64
)

func statsAlloc(bytes uintptr) {
	liveContainers.Add(1)
	totalAllocs.Add(1)
	reservedBytes.Add(int64(bytes))
	cumulativeBytes.Add(uint64(bytes))
}

func statsFree(bytes uintptr) {
	liveContainers.Add(-1)
	totalFrees.Add(1)
	reservedBytes.Add(-int64(bytes))
}

// MemStats is a snapshot of the package's allocation counters. Byte figures
// are upper bounds: they count the padded header and the alignment slack
// each block over-allocates, not just the element storage.
type MemStats struct {
	Live            int64  // containers currently allocated
	Allocs          uint64 // containers allocated since process start
	Frees           uint64 // containers freed since process start
	BytesReserved   int64  // upper bound on bytes backing live containers
	BytesCumulative uint64 // upper bound on bytes reserved over the process lifetime
}

// Stats returns a snapshot of the allocation counters. The counters are
// updated atomically per field; a snapshot taken while other goroutines
// allocate is internally consistent per counter, not across counters.
func Stats() MemStats {
	return MemStats{
		Live:            liveContainers.Load(),
		Allocs:          totalAllocs.Load(),
		Frees:           totalFrees.Load(),
		BytesReserved:   reservedBytes.Load(),
		BytesCumulative: cumulativeBytes.Load(),
	}
}
