package fixedcap

import (
	"iter"
	"unsafe"
)

// strideBuffer addresses fixed-size slots inside a pre-existing memory
// region. It never allocates; the Ring embeds one over the payload region of
// its own block.
type strideBuffer struct {
	data   unsafe.Pointer
	stride uintptr
	slots  int
}

func (b *strideBuffer) init(data unsafe.Pointer, stride uintptr, slots int) {
	b.data = data
	b.stride = stride
	b.slots = slots
}

func (b *strideBuffer) slot(i int) unsafe.Pointer {
	debugAssert(uint(i) < uint(b.slots), "stride buffer slot out of range")
	return unsafe.Add(b.data, uintptr(i)*b.stride)
}

// Ring is the control block of a fixed-capacity circular queue. Like Array
// it lives at the start of the same allocation as its element storage and is
// only ever addressed through the *Ring handle.
//
// head is the next write slot, tail the oldest occupied slot, and count the
// number of occupied slots. Logical index i maps to physical slot
// (tail+i) % capacity. Carrying count alongside head and tail keeps the
// full and empty states distinguishable without sacrificing a slot.
type Ring struct {
	buf       strideBuffer
	head      int
	tail      int
	count     int
	overwrite bool
	bytes     uintptr
	tag       typeTag
}

// NewRing allocates an empty ring buffer holding up to capacity elements of
// type T. The overwrite flag is fixed for the ring's lifetime: when true, a
// push onto a full ring evicts the oldest element; when false it is rejected.
// Panics if capacity < 1 or if T contains pointers.
func NewRing[T any](capacity int, overwrite bool) *Ring {
	if capacity < 1 {
		panic("fixedcap: ring capacity must be >= 1")
	}
	checkElemType[T]()
	var zero T
	stride := unsafe.Sizeof(zero)
	checkBlockSize(unsafe.Sizeof(Ring{}), alignFor(stride), stride, capacity)
	payload := stride * uintptr(capacity)
	// Alignment comes from the stride here: a type's size is a multiple of
	// its alignment, so the largest power of two dividing the stride is at
	// least as strict as Alignof(T).
	base, data := allocBlock(unsafe.Sizeof(Ring{}), alignFor(stride), payload)
	r := (*Ring)(base)
	r.buf.init(data, stride, capacity)
	r.overwrite = overwrite
	r.bytes = blockBytes(unsafe.Sizeof(Ring{}), alignFor(stride), payload)
	r.tag = tagOf[T]()
	statsAlloc(r.bytes)
	return r
}

// Free releases the ring's storage and invalidates the handle. Any
// subsequent operation on the handle panics. Call exactly once.
func (r *Ring) Free() {
	if r == nil {
		panic("fixedcap: nil ring handle")
	}
	if r.buf.data == nil {
		panic("fixedcap: ring used after Free")
	}
	statsFree(r.bytes)
	r.buf = strideBuffer{}
	r.head, r.tail, r.count = 0, 0, 0
	r.tag = 0
}

// Cap returns the ring's fixed capacity.
func (r *Ring) Cap() int {
	r.checkLive()
	return r.buf.slots
}

// Len returns the number of occupied slots.
func (r *Ring) Len() int {
	r.checkLive()
	return r.count
}

// Stride returns the element size in bytes.
func (r *Ring) Stride() uintptr {
	r.checkLive()
	return r.buf.stride
}

// Full reports whether the ring holds capacity elements.
func (r *Ring) Full() bool {
	r.checkLive()
	return r.count == r.buf.slots
}

// Overwrites reports whether the ring evicts the oldest element when a push
// finds it full.
func (r *Ring) Overwrites() bool {
	r.checkLive()
	return r.overwrite
}

// Clear empties the ring. Capacity and storage contents are untouched; only
// head, tail and count are reset. Clearing an empty ring is a no-op.
func (r *Ring) Clear() {
	r.checkLive()
	r.head, r.tail, r.count = 0, 0, 0
}

func (r *Ring) checkLive() {
	if r == nil {
		panic("fixedcap: nil ring handle")
	}
	if r.buf.data == nil {
		panic("fixedcap: ring used after Free")
	}
}

func (r *Ring) checkTag(tag typeTag) {
	r.checkLive()
	if r.tag != tag {
		panic("fixedcap: ring element type mismatch")
	}
}

// next advances a slot index by one, wrapping at capacity.
func (r *Ring) next(i int) int {
	i++
	if i == r.buf.slots {
		return 0
	}
	return i
}

// phys maps a logical index in [0, count) to its physical slot.
func (r *Ring) phys(i int) int {
	p := r.tail + i
	if p >= r.buf.slots {
		p -= r.buf.slots
	}
	return p
}

// Push inserts v at the write position. On a full ring it evicts the oldest
// element first when the overwrite policy is set, and otherwise reports
// false without touching the ring.
func Push[T any](r *Ring, v T) bool {
	r.checkTag(tagOf[T]())
	if r.count == r.buf.slots {
		if !r.overwrite {
			return false
		}
		r.tail = r.next(r.tail)
		r.count--
	}
	*(*T)(r.buf.slot(r.head)) = v
	r.head = r.next(r.head)
	r.count++
	debugAssert(r.count <= r.buf.slots, "ring count exceeds capacity")
	return true
}

// Pop removes and returns the oldest element. On an empty ring it reports
// false and returns the zero value, which the caller must not interpret.
func Pop[T any](r *Ring) (T, bool) {
	r.checkTag(tagOf[T]())
	var v T
	if r.count == 0 {
		return v, false
	}
	v = *(*T)(r.buf.slot(r.tail))
	r.tail = r.next(r.tail)
	r.count--
	return v, true
}

// checkIndex validates a logical index against the occupied range and
// returns the element's address.
func (r *Ring) checkIndex(tag typeTag, i int) unsafe.Pointer {
	r.checkTag(tag)
	if uint(i) >= uint(r.count) {
		panic("fixedcap: ring index out of range")
	}
	return r.buf.slot(r.phys(i))
}

// At returns the element at logical index i, where 0 is the oldest occupied
// slot. Panics if i is outside [0, Len()).
func At[T any](r *Ring, i int) T {
	return *(*T)(r.checkIndex(tagOf[T](), i))
}

// AtPtr returns the address of the element at logical index i. The pointer
// is valid until the slot is popped, overwritten or freed.
func AtPtr[T any](r *Ring, i int) *T {
	return (*T)(r.checkIndex(tagOf[T](), i))
}

// SetAt overwrites the element at logical index i.
func SetAt[T any](r *Ring, i int, v T) {
	*(*T)(r.checkIndex(tagOf[T](), i)) = v
}

// Items returns a restartable sequence over the occupied elements from
// oldest to newest. The handle is re-validated each time the sequence is
// started.
func Items[T any](r *Ring) iter.Seq[T] {
	return func(yield func(T) bool) {
		r.checkTag(tagOf[T]())
		for i := 0; i < r.count; i++ {
			if !yield(*(*T)(r.buf.slot(r.phys(i)))) {
				return
			}
		}
	}
}
