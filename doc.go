// Package fixedcap implements fixed-capacity typed containers backed by
// single raw memory allocations.
//
// # Overview
//
// The package provides two container primitives for performance-sensitive
// code where heap allocation must be explicit and memory layout predictable:
//
//   - Array: a fixed-length, bounds-checked vector of elements
//   - Ring: a fixed-capacity circular queue with a configurable full-buffer
//     policy (reject the push, or overwrite the oldest element)
//
// Both containers combine their control block and element storage into one
// contiguous allocation: element operations never allocate, and the element
// region starts immediately after the (alignment-padded) header. Containers
// are addressed through opaque handles (*Array, *Ring) and accessed through
// generic package-level functions that verify the element type on every call.
//
// Element types must be plain data: no pointers, maps, slices, strings,
// channels, funcs, or interfaces anywhere in the type. The backing block is
// not scanned by the garbage collector, so NewArray and NewRing reject
// pointer-bearing types at creation.
//
// # Basic Usage
//
//	a := fixedcap.NewArray[int64](128)
//	defer a.Free() // Always clean up
//
//	fixedcap.Set(a, 0, int64(42))
//	v := fixedcap.Get[int64](a, 0)
//
//	r := fixedcap.NewRing[int64](64, false) // reject pushes when full
//	defer r.Free()
//
//	ok := fixedcap.Push(r, v)
//	v, ok = fixedcap.Pop[int64](r)
//
// # Thread Safety
//
// Containers provide no locking and no atomicity. Concurrent access from
// multiple goroutines without external synchronization is a data race on the
// container's memory block. Callers needing shared access must wrap a handle
// in their own mutual exclusion.
//
// # Memory Layout
//
// One block holds the header followed by element storage. The block base is
// rounded up to the element type's alignment, the header size is padded to
// that same alignment, and the whole block is zeroed by the runtime, so the
// first element always starts at an aligned address and no uninitialized
// byte is ever observable through a typed accessor.
//
// # Lifecycle and Contract Violations
//
// A container is born fully initialized in one allocation and dies on a
// single Free call. There is no reference counting: exactly one owner is
// responsible for calling Free exactly once. Programming errors (nil
// handles, use after Free, element type mismatch, out-of-range indices,
// invalid creation sizes) panic immediately. Expected runtime conditions,
// such as pushing a full Ring under the reject policy or popping an empty
// Ring, are reported through boolean results and never mutate state.
//
// # Performance Characteristics
//
//   - Array Get/Set/GetPtr: O(1), no allocation
//   - Ring Push/Pop: O(1), no allocation
//   - Array Copy: O(count) memmove
//   - NewArray/NewRing: one allocation for header and storage combined
//
// # Metrics and Monitoring
//
// Package-wide allocation counters are available as a snapshot:
//
//	st := fixedcap.Stats()
//	fmt.Printf("Live containers: %d\n", st.Live)
//	fmt.Printf("Bytes reserved: %d\n", st.BytesReserved)
package fixedcap
