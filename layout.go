package fixedcap

import "unsafe"

// maxElemAlign caps the alignment derived from an element stride. The Go
// heap never requires more than 16-byte alignment for plain data.
const maxElemAlign = 16

// headerAlign is the alignment the container headers themselves need.
const headerAlign = unsafe.Alignof(uintptr(0))

// alignFor returns the natural alignment for elements of the given stride:
// the largest power of two that divides the stride, capped at maxElemAlign.
// A Go type's size is always a multiple of its alignment, so this is never
// weaker than the element type's real requirement.
func alignFor(stride uintptr) uintptr {
	a := stride & -stride // lowest set bit
	if a > maxElemAlign {
		a = maxElemAlign
	}
	return a
}

// alignUp rounds n up to the next multiple of align. align must be a power
// of two.
func alignUp(n, align uintptr) uintptr {
	mask := align - 1
	return (n + mask) & ^mask
}

// allocBlock allocates one zeroed block holding a header of headerSize bytes
// followed immediately by payloadBytes of element storage. The returned base
// pointer is aligned for both the header and elemAlign, and the payload
// pointer (base + padded header size) satisfies elemAlign. The block is a
// pointerless heap object: the collector keeps it alive through the handle,
// which is an interior pointer at base.
func allocBlock(headerSize, elemAlign, payloadBytes uintptr) (base, payload unsafe.Pointer) {
	align := elemAlign
	if align < headerAlign {
		align = headerAlign
	}
	padded := alignUp(headerSize, align)

	// Over-allocate by align-1 so the base can be rounded up without
	// falling off the end, then round. make zeroes the whole block.
	buf := make([]byte, padded+payloadBytes+align-1)
	raw := unsafe.Pointer(unsafe.SliceData(buf))
	off := alignUp(uintptr(raw), align) - uintptr(raw)
	base = unsafe.Add(raw, off)
	return base, unsafe.Add(base, padded)
}

// blockBytes reports the size of the block allocBlock reserves for the given
// shape. The align-1 slack is the worst case for rounding the base, so this
// is an upper bound on the bytes actually in use.
func blockBytes(headerSize, elemAlign, payloadBytes uintptr) uintptr {
	align := elemAlign
	if align < headerAlign {
		align = headerAlign
	}
	return alignUp(headerSize, align) + payloadBytes + align - 1
}

// checkBlockSize panics when count elements of the given stride, together
// with the padded header and alignment slack, cannot be sized without
// wrapping the address space. Without this guard the payload multiplication
// could overflow and hand back a live handle over a truncated block.
func checkBlockSize(headerSize, elemAlign, stride uintptr, count int) {
	overhead := blockBytes(headerSize, elemAlign, 0)
	if uintptr(count) > (^uintptr(0)-overhead)/stride {
		panic("fixedcap: allocation size overflows")
	}
}

// blockCopy copies n bytes from src to dst. The regions may overlap.
func blockCopy(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
